package app

import (
	"golang.org/x/net/html"

	"github.com/rpupo63/portfolio/models"
	"github.com/rpupo63/portfolio/view"
)

func detailSection(title string, body ...*html.Node) *html.Node {
	children := append([]*html.Node{view.El("h2", view.Text(title))}, body...)
	return view.El("div", view.Class("project-section"), view.Children(children...))
}

func detailHeader(tag, title, subtitle string) *html.Node {
	return view.El("div", view.Class("project-header"), view.Children(
		view.El("span", view.Class("tag"), view.Text(tag)),
		view.El("h1", view.Text(title)),
		view.El("p", view.Class("project-subtitle"), view.Text(subtitle)),
	))
}

func detailPage(sc *Scope, backTarget string, body ...*html.Node) *html.Node {
	children := append([]*html.Node{
		Link(sc, sc.Base().Path("/#"+backTarget), nil, view.Class("back-link"), view.Text("← Back to Portfolio")),
	}, body...)
	return page(sc, view.El("section", view.Class("project-detail"), view.Children(
		view.El("div", view.Class("container"), view.Children(children...)),
	)))
}

// ProjectDetail renders one project. Optional sections are left out
// entirely when the project has nothing for them.
func ProjectDetail(sc *Scope, p models.Project) *html.Node {
	content := view.El("div", view.Class("project-content"), view.Children(
		detailSection("Overview", view.El("p", view.Text(p.Overview))),
		detailSection("My Role", view.El("p", view.Text(p.Role))),
	))

	if len(p.Technologies) > 0 {
		tags := view.El("div", view.Class("tech-tags"))
		for _, tech := range p.Technologies {
			tags.AppendChild(view.El("span", view.Class("tech-tag"), view.Text(tech)))
		}
		content.AppendChild(detailSection("Technologies", tags))
	}

	if len(p.Posters) > 0 {
		posters := view.El("div", view.Class("posters-grid"))
		for _, poster := range p.Posters {
			posters.AppendChild(externalLink(poster.URL, "btn btn-secondary", poster.Name))
		}
		content.AppendChild(detailSection("Posters", posters))
	}

	if urls := p.PhotoURLs(); len(urls) > 0 {
		content.AppendChild(detailSection("Resources", SlideshowView(sc, "project-photos", urls)))
	}

	if links := projectLinks(p); links != nil {
		content.AppendChild(links)
	}

	return detailPage(sc, TargetProjects,
		detailHeader(p.Tag, p.Title, p.Subtitle),
		content,
	)
}

func projectLinks(p models.Project) *html.Node {
	var links []*html.Node
	if p.PaperLink != nil {
		links = append(links, externalLink(*p.PaperLink, "btn btn-primary", "Read Paper"))
	}
	if p.CodeLink != nil {
		links = append(links, externalLink(*p.CodeLink, "btn btn-secondary", "View Code"))
	}
	if p.LiveLink != nil {
		links = append(links, externalLink(*p.LiveLink, "btn btn-secondary", "Live Site"))
	}
	if len(links) == 0 {
		return nil
	}
	return view.El("div", view.Class("project-links"), view.Children(links...))
}

// BlogDetail renders one blog post, with its markdown body when present.
func BlogDetail(sc *Scope, b models.Blog) *html.Node {
	content := view.El("div", view.Class("project-content"), view.Children(
		detailSection("Overview", view.El("p", view.Text(b.Overview))),
	))
	if b.Body != nil && *b.Body != "" {
		content.AppendChild(view.El("article", view.Class("blog-body"), view.Children(markdownNodes(*b.Body)...)))
	}
	if b.LiveLink != nil {
		content.AppendChild(view.El("div", view.Class("project-links"), view.Children(
			externalLink(*b.LiveLink, "btn btn-primary", "Read Post"),
		)))
	}

	return detailPage(sc, TargetBlogs,
		detailHeader(b.Tag, b.Title, b.Subtitle),
		content,
	)
}
