package app

import (
	"golang.org/x/net/html"

	"github.com/rpupo63/portfolio/models"
	"github.com/rpupo63/portfolio/view"
)

// FeaturedCount is how many entries each home-page section shows.
const FeaturedCount = 3

// HomePage renders the landing page and keeps the fragment in view: on
// mount and on every hash change it scrolls the named anchor into view at
// the next frame.
func HomePage(sc *Scope) *html.Node {
	hash := sc.Location().Hash
	sc.Effect("home.hash", hash, func() {
		if hash != "" {
			sc.RequestScroll(hash[1:])
		}
	})

	cat := sc.Catalog()
	return view.El("div", view.Children(
		Navbar(sc),
		Hero(sc),
		featured(sc, TargetProjects, "Featured Projects", grid(sc, cat.List(models.KindProject), FeaturedCount), "/projects", "View All Projects"),
		featured(sc, TargetBlogs, "Featured Blogs", grid(sc, cat.List(models.KindBlog), FeaturedCount), "/blog", "View All Posts"),
		featured(sc, TargetPhotos, "Photos", photoGrid(sc, cat.Photos(), FeaturedCount), "/photos", "View All Photos"),
		Footer(),
	))
}

func featured(sc *Scope, target, title string, body *html.Node, allPath, allLabel string) *html.Node {
	class := "projects"
	if target == TargetPhotos {
		class = "photos"
	}
	return view.El("section", view.Class(class, "container"), view.ID(target), view.Children(
		view.El("h2", view.Class("section-title"), view.Text(title)),
		body,
		view.El("div", view.Class("view-all"), view.Children(
			Link(sc, sc.Base().Path(allPath), nil, view.Class("btn", "btn-secondary"), view.Text(allLabel)),
		)),
	))
}

func listing(sc *Scope, class, title string, body *html.Node) *html.Node {
	return page(sc, view.El("section", view.Class(class, "container", "listing"), view.Children(
		view.El("h1", view.Class("section-title"), view.Text(title)),
		body,
	)))
}

// ProjectsPage lists every project in catalog order.
func ProjectsPage(sc *Scope) *html.Node {
	return listing(sc, "projects", "All Projects", grid(sc, sc.Catalog().List(models.KindProject), 0))
}

// BlogPage lists every blog post in catalog order.
func BlogPage(sc *Scope) *html.Node {
	return listing(sc, "projects", "Blog", grid(sc, sc.Catalog().List(models.KindBlog), 0))
}

// PhotosPage shows the whole gallery.
func PhotosPage(sc *Scope) *html.Node {
	return listing(sc, "photos", "Photos", photoGrid(sc, sc.Catalog().Photos(), 0))
}
