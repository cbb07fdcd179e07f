package api

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio/app"
	"github.com/rpupo63/portfolio/errs"
)

// liveSession guards one mounted app.Session. The page request creates it
// and the live channel drives it afterwards.
type liveSession struct {
	mu       sync.Mutex
	session  *app.Session
	lastSeen time.Time
}

// do runs fn with exclusive access to the session.
func (l *liveSession) do(fn func(*app.Session)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastSeen = time.Now()
	fn(l.session)
}

func (l *liveSession) idleSince() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastSeen
}

// sessionStore keeps the sessions that were rendered but not yet dropped.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*liveSession
	ttl      time.Duration
	metrics  *metrics
	logger   zerolog.Logger
}

func newSessionStore(ttl time.Duration, m *metrics) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*liveSession),
		ttl:      ttl,
		metrics:  m,
		logger:   log.With().Str("component", "sessionStore").Logger(),
	}
}

// newSessionID returns an unguessable session id.
func newSessionID() string {
	return uuid.NewString()
}

// add registers s under id.
func (st *sessionStore) add(id string, s *app.Session) *liveSession {
	ls := &liveSession{session: s, lastSeen: time.Now()}

	st.mu.Lock()
	st.sessions[id] = ls
	n := len(st.sessions)
	st.mu.Unlock()

	st.metrics.sessions.Set(float64(n))
	return ls
}

func (st *sessionStore) get(id string) (*liveSession, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	ls, ok := st.sessions[id]
	if !ok {
		return nil, errs.NewSessionNotFoundError(id)
	}
	return ls, nil
}

// remove unmounts and forgets the session. Unknown ids are ignored.
func (st *sessionStore) remove(id string) {
	st.mu.Lock()
	ls, ok := st.sessions[id]
	delete(st.sessions, id)
	n := len(st.sessions)
	st.mu.Unlock()

	if ok {
		ls.do(func(s *app.Session) { s.Unmount() })
	}
	st.metrics.sessions.Set(float64(n))
}

func (st *sessionStore) len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// sweep drops sessions idle since before now minus the ttl and reports how
// many went.
func (st *sessionStore) sweep(now time.Time) int {
	cutoff := now.Add(-st.ttl)

	st.mu.Lock()
	var expired []string
	for id, ls := range st.sessions {
		if ls.idleSince().Before(cutoff) {
			expired = append(expired, id)
		}
	}
	st.mu.Unlock()

	for _, id := range expired {
		st.remove(id)
	}
	if len(expired) > 0 {
		st.logger.Debug().Int("expired", len(expired)).Msg("swept idle sessions")
	}
	return len(expired)
}

// run sweeps every interval until ctx is done.
func (st *sessionStore) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			st.sweep(now)
		}
	}
}
