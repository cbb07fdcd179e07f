package app

import (
	"net/http"

	"golang.org/x/net/html"

	"github.com/rpupo63/portfolio/view"
)

// notFoundCopy is the heading and message of a missing detail page.
type notFoundCopy struct {
	heading string
	message string
}

var (
	projectNotFound = notFoundCopy{"Project Not Found", "The project you are looking for does not exist."}
	blogNotFound    = notFoundCopy{"Blog Post Not Found", "The blog post you are looking for does not exist."}
)

// detailLoader resolves the :id parameter against find and renders either
// the detail view or the not-found page. It accepts every string.
func detailLoader[T any](find func(id string) (T, bool), detail func(*Scope, T) *html.Node, missing notFoundCopy) ViewFunc {
	return func(sc *Scope) *html.Node {
		item, ok := find(sc.Param("id"))
		if !ok {
			return NotFoundDetail(sc, missing)
		}
		return detail(sc, item)
	}
}

// ProjectLoader serves /project/:id.
func ProjectLoader(sc *Scope) *html.Node {
	return detailLoader(sc.Catalog().Project, ProjectDetail, projectNotFound)(sc)
}

// BlogLoader serves /blog/:id.
func BlogLoader(sc *Scope) *html.Node {
	return detailLoader(sc.Catalog().Blog, BlogDetail, blogNotFound)(sc)
}

// NotFoundDetail is the page shown for an unknown detail id.
func NotFoundDetail(sc *Scope, msg notFoundCopy) *html.Node {
	sc.SetStatus(http.StatusNotFound)
	return page(sc, view.El("div", view.Class("container", "not-found"), view.Children(
		view.El("h1", view.Text(msg.heading)),
		view.El("p", view.Text(msg.message)),
		Link(sc, sc.Base().Path("/"), nil, view.Class("btn", "btn-primary"), view.Text("Return Home")),
	)))
}
