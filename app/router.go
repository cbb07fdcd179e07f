package app

import (
	"net/http"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/rpupo63/portfolio/view"
)

// ViewFunc renders a view for the current scope.
type ViewFunc func(*Scope) *html.Node

// Route pairs a path pattern with the view it selects. Pattern segments
// starting with ':' capture the path segment under that name.
type Route struct {
	Pattern string
	View    ViewFunc
}

// Match is the outcome of routing a path.
type Match struct {
	Pattern string
	Params  map[string]string
}

// Param returns the captured segment name, or "".
func (m Match) Param(name string) string {
	return m.Params[name]
}

// key identifies one mounted instance of a view. Local state lives as long
// as the key stays the same.
func (m Match) key() string {
	if len(m.Params) == 0 {
		return m.Pattern
	}
	names := make([]string, 0, len(m.Params))
	for name := range m.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(m.Pattern)
	for _, name := range names {
		b.WriteString("|" + name + "=" + m.Params[name])
	}
	return b.String()
}

// Router selects the first declared route whose pattern matches.
type Router struct {
	routes   []compiledRoute
	fallback ViewFunc
}

type compiledRoute struct {
	Route
	segments []string
}

func NewRouter(fallback ViewFunc, routes ...Route) *Router {
	r := &Router{fallback: fallback}
	for _, route := range routes {
		r.routes = append(r.routes, compiledRoute{Route: route, segments: splitPath(route.Pattern)})
	}
	return r
}

// Match routes an escaped path. Segments are compared and captured
// decoded, so an escaped "/" stays inside its segment. ok is false when
// only the fallback applies.
func (r *Router) Match(path string) (Match, ViewFunc, bool) {
	segments := splitPath(path)
	for _, route := range r.routes {
		if params, ok := matchSegments(route.segments, segments); ok {
			return Match{Pattern: route.Pattern, Params: params}, route.View, true
		}
	}
	return Match{}, r.fallback, false
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func matchSegments(pattern, path []string) (map[string]string, bool) {
	if len(pattern) != len(path) {
		return nil, false
	}
	var params map[string]string
	for i, seg := range pattern {
		value := unescapeSegment(path[i])
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			if params == nil {
				params = make(map[string]string)
			}
			params[name] = value
			continue
		}
		if seg != value {
			return nil, false
		}
	}
	return params, true
}

// Routes is the portfolio's route table.
func Routes() *Router {
	return NewRouter(PageNotFound,
		Route{Pattern: "/", View: HomePage},
		Route{Pattern: "/project/:id", View: ProjectLoader},
		Route{Pattern: "/blog/:id", View: BlogLoader},
		Route{Pattern: "/projects", View: ProjectsPage},
		Route{Pattern: "/blog", View: BlogPage},
		Route{Pattern: "/photos", View: PhotosPage},
		Route{Pattern: "/about", View: AboutPage},
	)
}

// PageNotFound is the router fallback.
func PageNotFound(sc *Scope) *html.Node {
	sc.SetStatus(http.StatusNotFound)
	return view.El("p", view.Class("not-found"), view.Text("Page not found."))
}
