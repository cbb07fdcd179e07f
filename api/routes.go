package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rpupo63/portfolio/app"
)

// mountPrefixes lists the path prefixes a page may be served under: the
// root, the known sub-path and the configured base, without duplicates.
func mountPrefixes(baseHref string) []string {
	prefixes := []string{"", "/home"}
	if baseHref != "" {
		prefixes = append(prefixes, app.NewBasePath(baseHref).Prefix())
	}

	seen := make(map[string]bool, len(prefixes))
	var out []string
	for _, p := range prefixes {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// setupRoutes registers the live channel and static assets under every
// mount prefix, then the page catch-all.
func setupRoutes(r chi.Router, handlers *routeHandlers, sessions sessionMiddleware, m *metrics, prefixes []string) {
	r.Get("/healthz", handlers.healthHandler.getHealth())
	r.Handle("/metrics", m.handler())

	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		for _, prefix := range prefixes {
			r.With(sessions.requireSession).Get(prefix+"/_live", handlers.liveHandler.serveLive())
			r.Handle(prefix+"/static/*", http.StripPrefix(prefix+"/static/", staticHandler()))
		}

		r.Get("/*", handlers.pageHandler.servePage())
	})
}
