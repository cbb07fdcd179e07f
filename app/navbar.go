package app

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/rpupo63/portfolio/view"
)

// Home-page section anchors.
const (
	TargetHome     = "home"
	TargetProjects = "projects"
	TargetBlogs    = "blogs"
	TargetPhotos   = "photos"
)

// Section ties a navbar entry to its home-page anchor and the routes that
// count as being "in" it. It is the only place that association lives.
type Section struct {
	Label    string
	Target   string
	Prefixes []string
}

// Fragment is the URL hash that points at the section anchor.
func (s Section) Fragment() string { return "#" + s.Target }

// Active reports whether the entry should be highlighted at loc.
func (s Section) Active(loc Location) bool {
	if s.Target == TargetHome {
		return loc.Path == "/"
	}
	for _, prefix := range s.Prefixes {
		if strings.HasPrefix(loc.Path, prefix) {
			return true
		}
	}
	return loc.Hash == s.Fragment()
}

// Sections is the navbar, in display order.
var Sections = []Section{
	{Label: "Home", Target: TargetHome},
	{Label: "Projects", Target: TargetProjects, Prefixes: []string{"/projects", "/project"}},
	{Label: "Blogs", Target: TargetBlogs, Prefixes: []string{"/blog"}},
	{Label: "Photos", Target: TargetPhotos, Prefixes: []string{"/photos"}},
}

const aboutPrefix = "/about"

// Navbar renders the site navigation. The mobile menu state is local to the
// mounted page.
func Navbar(sc *Scope) *html.Node {
	open := Local(sc, "navbar.open", func() bool { return false })
	closeMenu := func(*view.Event) { *open = false }
	loc := sc.Location()

	links := view.El("ul", view.Class("nav-links", view.ClassIf(*open, "open")))
	for _, section := range Sections {
		links.AppendChild(view.El("li", view.Children(sectionLink(sc, section, open))))
	}
	links.AppendChild(view.El("li", view.Children(
		Link(sc, sc.Base().Path(aboutPrefix), closeMenu,
			view.Class(view.ClassIf(strings.HasPrefix(loc.Path, aboutPrefix), "active")),
			view.Text("About")),
	)))

	return view.El("nav", view.Children(
		view.El("div", view.Class("logo"), view.Children(
			Link(sc, sc.Base().Path("/"), closeMenu, view.Text("Ryan Son")),
		)),
		view.El("button",
			view.Class("menu-toggle", view.ClassIf(*open, "open")),
			view.Attr("aria-label", "Toggle menu"),
			sc.OnClick(func(*view.Event) { *open = !*open }),
			view.Children(view.El("span"), view.El("span"), view.El("span")),
		),
		links,
	))
}

// sectionLink scrolls in place on the home page and routes home otherwise.
func sectionLink(sc *Scope, section Section, open *bool) *html.Node {
	href := sc.Base().Path("/" + section.Fragment())
	return view.El("a",
		view.Href(href),
		view.Class(view.ClassIf(section.Active(sc.Location()), "active")),
		sc.OnClick(func(ev *view.Event) {
			ev.PreventDefault()
			*open = false
			if sc.Location().Path == "/" {
				sc.RequestScroll(section.Target)
				return
			}
			sc.Navigate(href)
		}),
		view.Text(section.Label),
	)
}

// Link is an internal anchor that navigates through the router instead of
// reloading the page. before, when set, runs ahead of the navigation.
func Link(sc *Scope, href string, before view.Handler, opts ...view.Option) *html.Node {
	opts = append([]view.Option{
		view.Href(href),
		sc.OnClick(func(ev *view.Event) {
			if before != nil {
				before(ev)
			}
			ev.PreventDefault()
			sc.Navigate(href)
		}),
	}, opts...)
	return view.El("a", opts...)
}

// externalLink opens outside the application in a new browsing context.
func externalLink(href, class, label string) *html.Node {
	return view.El("a", view.Href(href), view.Class(class), view.External(), view.Text(label))
}
