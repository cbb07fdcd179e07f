package app

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/rpupo63/portfolio/view"
)

// homePrefix is the sub-path the site is served under on static hosts that
// cannot declare a <base> element.
const homePrefix = "/home"

// ResolveBase determines the deployment base once per session: an explicit
// <base href> in doc wins verbatim, then the known sub-path prefix of the
// location, then "/".
func ResolveBase(doc *html.Node, locationPath string) string {
	base := view.Find(doc, func(n *html.Node) bool {
		return n.Data == "base" && view.HasAttr(n, "href")
	})
	if base != nil {
		return view.AttrValue(base, "href")
	}
	if strings.HasPrefix(locationPath, homePrefix) {
		return homePrefix + "/"
	}
	return "/"
}

// BasePath builds every internal link.
type BasePath struct {
	prefix string
}

// NewBasePath turns a resolved base into the router mount prefix. Only the
// path of an absolute or relative href counts; the prefix is "" for "/",
// otherwise the path with a leading slash and no trailing ones.
func NewBasePath(resolved string) BasePath {
	p, _ := splitURL(resolved)
	p = strings.TrimRight(p, "/")
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return BasePath{prefix: p}
}

// Prefix is the router mount prefix.
func (b BasePath) Prefix() string { return b.prefix }

// Path joins rel to the base with exactly one slash.
func (b BasePath) Path(rel string) string {
	rel = strings.TrimLeft(rel, "/")
	return b.prefix + "/" + rel
}

// Lightbox holds the single globally selected image.
type Lightbox struct {
	url  string
	open bool
}

func (l *Lightbox) Open(url string) {
	l.url = url
	l.open = true
}

func (l *Lightbox) Close() {
	l.url = ""
	l.open = false
}

// Selected returns the open image, if any.
func (l *Lightbox) Selected() (string, bool) {
	return l.url, l.open
}

// Context is the state injected at the root of a session and shared by
// every view below it. It is never replaced after mount.
type Context struct {
	base     BasePath
	lightbox Lightbox
}

func NewContext(base BasePath) *Context {
	return &Context{base: base}
}

func (c *Context) Base() BasePath { return c.base }

func (c *Context) Lightbox() *Lightbox { return &c.lightbox }
