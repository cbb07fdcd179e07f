package app

import (
	"golang.org/x/net/html"

	"github.com/rpupo63/portfolio/models"
	"github.com/rpupo63/portfolio/view"
)

// Card links to the detail page of one catalog entry.
func Card(sc *Scope, id, title, description, tag, kindBase string) *html.Node {
	return Link(sc, sc.Base().Path(kindBase+"/"+id), nil,
		view.Class("project-card"),
		view.Children(
			view.El("span", view.Class("tag"), view.Text(tag)),
			view.El("h3", view.Text(title)),
			view.El("p", view.Text(description)),
		),
	)
}

func entryCard(sc *Scope, e models.Entry) *html.Node {
	return Card(sc, e.ID, e.Title, e.Description, e.Tag, e.Kind.RouteBase())
}

// PhotoCard opens its photo in the lightbox when clicked.
func PhotoCard(sc *Scope, photo models.Photo) *html.Node {
	lightbox := sc.Lightbox()
	url := photo.URL
	return view.El("div",
		view.Class("photo-card"),
		sc.OnClick(func(*view.Event) { lightbox.Open(url) }),
		view.Children(
			view.El("img", view.Attr("src", photo.URL), view.Attr("alt", photo.Caption)),
			view.El("div", view.Class("photo-caption"), view.Text(photo.Caption)),
		),
	)
}

// LightboxView is mounted once at the root. It renders nothing until a photo
// is selected.
func LightboxView(sc *Scope) *html.Node {
	lightbox := sc.Lightbox()
	url, ok := lightbox.Selected()
	if !ok {
		return nil
	}
	closeLightbox := func(*view.Event) { lightbox.Close() }
	return view.El("div",
		view.Class("lightbox-overlay"),
		sc.OnClick(closeLightbox),
		view.Children(view.El("div",
			view.Class("lightbox-content"),
			// clicks on the image must not reach the overlay
			sc.OnClick(func(ev *view.Event) { ev.StopPropagation() }),
			view.Children(
				view.El("img", view.Attr("src", url), view.Attr("alt", "Full size photo")),
				view.El("button", view.Class("lightbox-close"), sc.OnClick(closeLightbox), view.Text("×")),
			),
		)),
	)
}

// grid renders entries as cards, keeping at most limit when limit > 0.
func grid(sc *Scope, entries []models.Entry, limit int) *html.Node {
	g := view.El("div", view.Class("projects-grid"))
	for _, e := range take(entries, limit) {
		g.AppendChild(entryCard(sc, e))
	}
	return g
}

func photoGrid(sc *Scope, photos []models.Photo, limit int) *html.Node {
	g := view.El("div", view.Class("photos-grid"))
	for _, p := range take(photos, limit) {
		g.AppendChild(PhotoCard(sc, p))
	}
	return g
}

// take returns the first n items, or all of them when n <= 0.
func take[T any](items []T, n int) []T {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[:n]
}
