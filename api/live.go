package api

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio/app"
	"github.com/rpupo63/portfolio/errs"
)

type liveHandler struct {
	responder Responder
	logger    zerolog.Logger
	sessions  *sessionStore
	metrics   *metrics
	upgrader  websocket.Upgrader
}

func newLiveHandler(sessions *sessionStore, m *metrics, acceptedOrigins []string) liveHandler {
	logger := log.With().Str("handlerName", "liveHandler").Logger()

	return liveHandler{
		responder: NewResponder(logger),
		logger:    logger,
		sessions:  sessions,
		metrics:   m,
		upgrader: websocket.Upgrader{
			CheckOrigin: originAllowed(acceptedOrigins),
		},
	}
}

// originAllowed accepts same-host pages and the configured origins.
func originAllowed(acceptedOrigins []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if u, err := url.Parse(origin); err == nil && u.Host == r.Host {
			return true
		}
		for _, accepted := range acceptedOrigins {
			if accepted == "*" || accepted == origin {
				return true
			}
		}
		return false
	}
}

// serveLive drives the session from the browser until the socket closes,
// then drops it.
func (h liveHandler) serveLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := ctxGetSessionID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("live session lookup", err))
			return
		}
		ls, err := ctxGetSession(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("live session lookup", err))
			return
		}

		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn().Err(err).Str("sessionID", sessionID).Msg("websocket upgrade failed")
			return
		}
		defer conn.Close()
		defer h.sessions.remove(sessionID)

		logger := h.logger.With().Str("sessionID", sessionID).Logger()
		logger.Debug().Msg("live channel open")

		for {
			var msg clientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logger.Warn().Err(err).Msg("live channel read")
				}
				return
			}

			for _, reply := range h.apply(ls, msg) {
				if err := conn.WriteJSON(reply); err != nil {
					logger.Warn().Err(err).Msg("live channel write")
					return
				}
			}
		}
	}
}

// apply feeds one client event into the session and returns the render
// followed by any scrolls the next frame produced.
func (h liveHandler) apply(ls *liveSession, msg clientMessage) []serverMessage {
	var out []serverMessage
	ls.do(func(s *app.Session) {
		prevented := false
		switch msg.Type {
		case msgClick:
			ev, err := s.Click(msg.Ref)
			if err != nil {
				if errs.IsUnknownRef(err) {
					h.logger.Debug().Str("ref", msg.Ref).Msg("click on a ref from a stale render")
				}
				out = append(out, errorMessage(err))
				return
			}
			prevented = ev.DefaultPrevented()
		case msgNavigate:
			s.Navigate(msg.Href)
		case msgHash:
			s.SetHash(msg.Hash)
		default:
			h.metrics.events.WithLabelValues("unknown").Inc()
			out = append(out, errorMessage(errs.NewUnknownEventError(msg.Type)))
			return
		}
		h.metrics.events.WithLabelValues(msg.Type).Inc()

		rendered, err := s.HTML()
		if err != nil {
			out = append(out, errorMessage(errs.NewInternalErrorWithCause("render", err)))
			return
		}
		h.metrics.observeRender(s.Pattern(), s.Status())

		out = append(out, serverMessage{
			Type:           msgRender,
			HTML:           rendered,
			URL:            s.URL(),
			Status:         s.Status(),
			PreventDefault: prevented,
		})
		for _, id := range s.Frame() {
			out = append(out, serverMessage{Type: msgScroll, ID: id})
		}
	})
	return out
}

func errorMessage(err error) serverMessage {
	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) {
		return serverMessage{Type: msgError, Error: apiErr.Error(), Field: apiErr.Field, Status: apiErr.StatusCode}
	}
	return serverMessage{Type: msgError, Error: err.Error(), Status: http.StatusInternalServerError}
}
