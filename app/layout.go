package app

import (
	"golang.org/x/net/html"

	"github.com/rpupo63/portfolio/view"
)

const (
	githubURL   = "https://github.com/rawleo"
	linkedInURL = "https://www.linkedin.com/in/ryanson50"
	emailURL    = "mailto:sonryan50@gmail.com"
)

// page wraps routed content with the navbar and footer.
func page(sc *Scope, content ...*html.Node) *html.Node {
	children := append([]*html.Node{Navbar(sc)}, content...)
	children = append(children, Footer())
	return view.El("div", view.Children(children...))
}

func Footer() *html.Node {
	return view.El("footer", view.Children(
		view.El("div", view.Class("container"), view.Children(
			view.El("p", view.Text("© 2025 Portfolio. Built with Go.")),
			view.El("div", view.Class("footer-links"), view.Children(
				externalLink(githubURL, "", "GitHub"),
				externalLink(linkedInURL, "", "LinkedIn"),
				view.El("a", view.Href(emailURL), view.Text("Email")),
			)),
		)),
	))
}

func Hero(sc *Scope) *html.Node {
	return view.El("section", view.Class("hero"), view.ID(TargetHome), view.Children(
		view.El("div", view.Class("container", "hero-content"), view.Children(
			view.El("img", view.Attr("src", "images/headshot.jpg"), view.Attr("alt", "Profile"), view.Class("hero-image")),
			view.El("h1", view.Text("From frontend to backend—designed to scale")),
			view.El("p", view.Text("Full-stack developer crafting high-performance applications.")),
			view.El("div", view.Class("hero-links"), view.Children(
				Link(sc, sc.Base().Path("/#"+TargetProjects), nil,
					view.Class("btn", "btn-primary", "hero-project-btn"), view.Text("View My Work")),
				externalLink(githubURL, "btn btn-secondary", "GitHub"),
				externalLink(linkedInURL, "btn btn-secondary", "LinkedIn"),
				view.El("a", view.Href(emailURL), view.Class("btn", "btn-secondary"), view.Text("Email")),
			)),
		)),
	))
}

var aboutParagraphs = []string{
	"Hello! I'm Ryan Son, a junior full-stack developer and soon to be graduate of Carleton College. I'm crazy passionate about crafting scalable, fast, and efficient applications.",
	"My journey in software development is driven by a curiosity for how complex systems work and a desire to build tools that make a real impact. With a background in research and a keen interest in high-performance computing, I love finding ways to improve the performance of my applications.",
	"When I'm not coding, you can find me exploring new technologies, home-labbing, or capturing the world through my lens (as seen in my Photos section!).",
	"Thank you for stopping by!",
	"I'm currently looking for full-time opportunities, so feel free to reach out!",
}

func About() *html.Node {
	text := view.El("div", view.Class("about-text"))
	for _, p := range aboutParagraphs {
		text.AppendChild(view.El("p", view.Text(p)))
	}
	return view.El("section", view.Class("about", "section-container"), view.ID("about"), view.Children(
		view.El("div", view.Class("container"), view.Children(
			view.El("h2", view.Class("section-title"), view.Text("About Me")),
			view.El("div", view.Class("about-grid"), view.Children(
				view.El("div", view.Class("about-image-wrapper"), view.Children(
					view.El("img", view.Attr("src", "images/headshot.jpg"), view.Attr("alt", "Ryan Son"), view.Class("about-image")),
				)),
				text,
			)),
		)),
	))
}

// AboutPage is the dedicated about route.
func AboutPage(sc *Scope) *html.Node {
	return page(sc, About())
}
