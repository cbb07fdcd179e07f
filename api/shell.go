package api

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/net/html"

	"github.com/rpupo63/portfolio/app"
	"github.com/rpupo63/portfolio/config"
	"github.com/rpupo63/portfolio/view"
)

// newShell builds the document a session is mounted into. It carries the
// optional <base> element the session resolves its base path from.
func newShell(site config.Site) *html.Node {
	var base *html.Node
	if site.BaseHref != "" {
		base = view.El("base", view.Href(site.BaseHref))
	}
	head := view.El("head", view.Children(
		view.El("meta", view.Attr("charset", "utf-8")),
		view.El("meta", view.Attr("name", "viewport"), view.Attr("content", "width=device-width, initial-scale=1")),
		base,
		view.El("title", view.Text(site.Title)),
	))

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(view.El("html", view.Attr("lang", "en"), view.Children(head, view.El("body"))))
	return doc
}

// attachLive fills the shell body with the rendered app and the wiring the
// client script needs to reach the live channel.
func attachLive(shell *html.Node, base app.BasePath, sessionID, rendered string) {
	head := view.FindByTag(shell, "head")
	head.AppendChild(view.El("link", view.Attr("rel", "stylesheet"), view.Href(base.Path("styles/main.css"))))
	head.AppendChild(view.El("script", view.Attr("src", base.Path("static/live.js")), view.Attr("defer", "")))

	body := view.FindByTag(shell, "body")
	view.SetAttr(body, "data-session", sessionID)
	view.SetAttr(body, "data-live", base.Path("_live"))
	body.AppendChild(&html.Node{Type: html.RawNode, Data: rendered})
}

// pageDocument renders a finished shell.
func pageDocument(shell *html.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return html.Render(w, shell)
	})
}
