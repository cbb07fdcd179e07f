package api

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio/app"
	"github.com/rpupo63/portfolio/catalog"
	"github.com/rpupo63/portfolio/config"
	"github.com/rpupo63/portfolio/errs"
)

type pageHandler struct {
	responder Responder
	logger    zerolog.Logger
	site      config.Site
	catalog   *catalog.Catalog
	sessions  *sessionStore
	metrics   *metrics
}

func newPageHandler(site config.Site, cat *catalog.Catalog, sessions *sessionStore, m *metrics) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		site:      site,
		catalog:   cat,
		sessions:  sessions,
		metrics:   m,
	}
}

// servePage mounts a new session at the request URL and returns the full
// document. Unknown routes and missing details answer 404 with their page.
func (h pageHandler) servePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := newSessionID()
		shell := newShell(h.site)
		session := app.NewSession(h.catalog, shell, r.URL.RequestURI(), h.logger.With().Str("sessionID", id).Logger())

		rendered, err := session.HTML()
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("render page", err))
			return
		}

		h.sessions.add(id, session)
		h.metrics.observeRender(session.Pattern(), session.Status())

		attachLive(shell, session.Base(), id, rendered)
		templ.Handler(pageDocument(shell), templ.WithStatus(session.Status())).ServeHTTP(w, r)
	}
}
