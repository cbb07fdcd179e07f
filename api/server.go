package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio/catalog"
	"github.com/rpupo63/portfolio/config"
)

type Server struct {
	*http.Server
	startupTime time.Time
	sessions    *sessionStore
}

func NewServer(site config.Site, cat *catalog.Catalog) (Server, error) {
	if cat == nil {
		return Server{}, errors.New("api: catalog is required")
	}

	address := fmt.Sprintf("0.0.0.0:%s", site.Port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	router, sessions := newRouter(cat, withSite(site), withStartupTime(startupTime))

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  site.ReadTimeout,  // Timeout for reading the entire request
		WriteTimeout: site.WriteTimeout, // Timeout for writing the response
		IdleTimeout:  site.IdleTimeout,  // Timeout for idle connections
	}

	return Server{server, startupTime, sessions}, nil
}

type router struct {
	site        config.Site
	startupTime time.Time
}

func withSite(site config.Site) func(*router) {
	return func(r *router) {
		r.site = site
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(cat *catalog.Catalog, opts ...func(*router)) (*chi.Mux, *sessionStore) {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	m := newMetrics()
	sessions := newSessionStore(router.site.SessionTTL, m)
	handlers := initializeHandlers(router.site, cat, sessions, m, router.startupTime)

	acceptedOrigins := router.site.AcceptedOrigins
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	setupRoutes(chiRouter, handlers, newSessionMiddleware(sessions), m, mountPrefixes(router.site.BaseHref))

	return chiRouter, sessions
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

// SweepSessions drops idle sessions until ctx is done.
func (s Server) SweepSessions(ctx context.Context) {
	interval := time.Minute
	if ttl := s.sessions.ttl; ttl > 0 && ttl < interval {
		interval = ttl
	}
	s.sessions.run(ctx, interval)
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
