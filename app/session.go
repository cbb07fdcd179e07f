package app

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"github.com/rpupo63/portfolio/catalog"
	"github.com/rpupo63/portfolio/view"
)

// Session is one mounted application instance. It is driven from a single
// goroutine: every event mutates state, then re-renders the whole tree.
type Session struct {
	logger  zerolog.Logger
	catalog *catalog.Catalog
	router  *Router
	ctx     *Context

	loc    Location
	within bool
	match  Match
	mount  *mount
	doc    *view.Document
	status int

	mounted bool
	frames  []func()
	scrolls []string
}

// mount is the local state of the currently routed view instance.
type mount struct {
	key     string
	local   map[string]any
	deps    map[string]string
	effects []effect
}

type effect struct {
	key string
	dep string
	fn  func()
}

func newMount(key string) *mount {
	return &mount{
		key:   key,
		local: make(map[string]any),
		deps:  make(map[string]string),
	}
}

// NewSession mounts the application for rawURL. The base path is resolved
// here from shell and never again.
func NewSession(cat *catalog.Catalog, shell *html.Node, rawURL string, logger zerolog.Logger) *Session {
	locationPath, _ := splitURL(rawURL)
	if locationPath == "" {
		locationPath = "/"
	}
	base := NewBasePath(ResolveBase(shell, locationPath))

	s := &Session{
		logger:  logger,
		catalog: cat,
		router:  Routes(),
		ctx:     NewContext(base),
		mounted: true,
	}
	s.loc, s.within = ParseLocation(rawURL, base.Prefix())
	s.logger.Debug().
		Str("basePrefix", base.Prefix()).
		Str("path", s.loc.Path).
		Msg("session mounted")
	s.commit()
	return s
}

// Navigate performs a routed navigation to href, a link built by BasePath.
func (s *Session) Navigate(href string) {
	s.navigate(href)
	s.commit()
}

// SetHash applies a fragment-only navigation.
func (s *Session) SetHash(hash string) {
	s.loc.Hash = normalizeHash(hash)
	s.logger.Debug().Str("hash", s.loc.Hash).Msg("hash changed")
	s.commit()
}

// Click dispatches a click at the element carrying ref.
func (s *Session) Click(ref string) (*view.Event, error) {
	ev, err := s.doc.DispatchRef(ref, view.Click)
	if err != nil {
		return nil, err
	}
	s.commit()
	return ev, nil
}

// ClickElement dispatches a click at n, which must belong to the current
// document.
func (s *Session) ClickElement(n *html.Node) *view.Event {
	ev := s.doc.Dispatch(n, view.Click)
	s.commit()
	return ev
}

// Frame runs the work deferred to the next rendering opportunity and
// returns the element ids that were scrolled into view.
func (s *Session) Frame() []string {
	tasks := s.frames
	s.frames = nil
	for _, task := range tasks {
		task()
	}
	scrolled := s.scrolls
	s.scrolls = nil
	return scrolled
}

// PendingFrames reports how many deferred tasks are queued.
func (s *Session) PendingFrames() int { return len(s.frames) }

// Unmount detaches the session; deferred tasks still queued become no-ops.
func (s *Session) Unmount() {
	s.mounted = false
	s.logger.Debug().Msg("session unmounted")
}

func (s *Session) Mounted() bool             { return s.mounted }
func (s *Session) Document() *view.Document  { return s.doc }
func (s *Session) Root() *html.Node          { return s.doc.Root }
func (s *Session) Status() int               { return s.status }
func (s *Session) Location() Location        { return s.loc }
func (s *Session) Base() BasePath            { return s.ctx.base }
func (s *Session) Lightbox() *Lightbox       { return s.ctx.Lightbox() }
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// Pattern is the matched route pattern, "" when the fallback rendered.
func (s *Session) Pattern() string { return s.match.Pattern }

// URL is the current location as a link under the base path.
func (s *Session) URL() string { return s.loc.Href(s.ctx.base) }

// HTML renders the current tree.
func (s *Session) HTML() (string, error) {
	return view.RenderString(s.doc.Root)
}

func (s *Session) navigate(href string) {
	s.loc, s.within = ParseLocation(href, s.ctx.base.Prefix())
	s.logger.Debug().Str("path", s.loc.Path).Str("hash", s.loc.Hash).Msg("navigate")
}

func (s *Session) requestScroll(id string) {
	s.frames = append(s.frames, func() {
		if !s.mounted {
			return
		}
		if s.doc.ElementByID(id) == nil {
			s.logger.Debug().Str("target", id).Msg("scroll target missing")
			return
		}
		s.scrolls = append(s.scrolls, id)
	})
}

// commit re-renders from the current state and runs effects whose
// dependency changed.
func (s *Session) commit() {
	match, render, ok := s.router.Match(s.loc.Path)
	if !s.within {
		match, render, ok = Match{}, s.router.fallback, false
	}
	key := ""
	if ok {
		key = match.key()
	}
	if s.mount == nil || s.mount.key != key {
		s.mount = newMount(key)
	}
	s.mount.effects = nil
	s.match = match
	s.status = http.StatusOK

	handlers := view.NewHandlers()
	sc := &Scope{session: s, handlers: handlers, match: match}
	root := view.El("div", view.ID("app"), view.Children(
		view.El("main", view.Children(render(sc))),
		LightboxView(sc),
	))
	s.doc = view.NewDocument(root, handlers)

	for _, e := range s.mount.effects {
		if prev, seen := s.mount.deps[e.key]; seen && prev == e.dep {
			continue
		}
		s.mount.deps[e.key] = e.dep
		e.fn()
	}
}

func normalizeHash(hash string) string {
	hash = strings.TrimPrefix(hash, "#")
	if hash == "" {
		return ""
	}
	return "#" + hash
}

// Scope is what a view sees while rendering.
type Scope struct {
	session  *Session
	handlers *view.Handlers
	match    Match
}

func (sc *Scope) Base() BasePath            { return sc.session.ctx.base }
func (sc *Scope) Lightbox() *Lightbox       { return sc.session.ctx.Lightbox() }
func (sc *Scope) Location() Location        { return sc.session.loc }
func (sc *Scope) Catalog() *catalog.Catalog { return sc.session.catalog }
func (sc *Scope) Param(name string) string  { return sc.match.Param(name) }

// OnClick attaches a click handler to the element being built.
func (sc *Scope) OnClick(fn view.Handler) view.Option {
	return sc.handlers.OnClick(fn)
}

// SetStatus records the status the transport should report for this render.
func (sc *Scope) SetStatus(code int) {
	sc.session.status = code
}

// Navigate changes the location from inside a handler; the session
// re-renders once the event finishes.
func (sc *Scope) Navigate(href string) {
	sc.session.navigate(href)
}

// RequestScroll defers scrolling element id into view to the next frame.
func (sc *Scope) RequestScroll(id string) {
	sc.session.requestScroll(id)
}

// Effect runs fn after this render commits if dep differs from the value
// seen by the previous run in the same mounted view.
func (sc *Scope) Effect(key, dep string, fn func()) {
	m := sc.session.mount
	m.effects = append(m.effects, effect{key: key, dep: dep, fn: fn})
}

// Local returns state owned by the mounted view. It survives re-renders and
// is dropped when the route match changes.
func Local[T any](sc *Scope, key string, init func() T) *T {
	m := sc.session.mount
	if v, ok := m.local[key]; ok {
		if p, ok := v.(*T); ok {
			return p
		}
	}
	p := new(T)
	*p = init()
	m.local[key] = p
	return p
}
