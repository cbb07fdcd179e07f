package api

import (
	"time"

	"github.com/rpupo63/portfolio/catalog"
	"github.com/rpupo63/portfolio/config"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(site config.Site, cat *catalog.Catalog, sessions *sessionStore, m *metrics, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		pageHandler:   newPageHandler(site, cat, sessions, m),
		liveHandler:   newLiveHandler(sessions, m, site.AcceptedOrigins),
		healthHandler: newHealthHandler(cat, sessions, startupTime),
	}
}
