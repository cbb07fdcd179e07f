package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio/catalog"
	"github.com/rpupo63/portfolio/models"
)

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	catalog     *catalog.Catalog
	sessions    *sessionStore
	startupTime time.Time
}

func newHealthHandler(cat *catalog.Catalog, sessions *sessionStore, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		catalog:     cat,
		sessions:    sessions,
		startupTime: startupTime,
	}
}

func (h healthHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, HealthResponse{
			Status:         "ok",
			Uptime:         time.Since(h.startupTime).Round(time.Second).String(),
			StartupTime:    h.startupTime.UTC().Format(time.RFC3339),
			ActiveSessions: h.sessions.len(),
			Projects:       h.catalog.Len(models.KindProject),
			Blogs:          h.catalog.Len(models.KindBlog),
			Photos:         h.catalog.Len(models.KindPhoto),
		})
	}
}
