package app

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestRouterMatch(t *testing.T) {
	r := Routes()

	tests := []struct {
		path    string
		pattern string
		id      string
		ok      bool
	}{
		{"/", "/", "", true},
		{"/project/genezippers", "/project/:id", "genezippers", true},
		{"/blog/010526", "/blog/:id", "010526", true},
		{"/projects", "/projects", "", true},
		{"/projects/", "/projects", "", true},
		{"/blog", "/blog", "", true},
		{"/photos", "/photos", "", true},
		{"/about", "/about", "", true},
		{"/project", "", "", false},
		{"/project/a/b", "", "", false},
		{"/nowhere", "", "", false},
		{"/project/a%2Fb", "/project/:id", "a/b", true},
		{"/project/%zz", "/project/:id", "%zz", true},
		{"/pro%6Aects", "/projects", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m, view, ok := r.Match(tt.path)
			require.NotNil(t, view)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.pattern, m.Pattern)
			assert.Equal(t, tt.id, m.Param("id"))
		})
	}
}

func TestRouterFirstMatchWins(t *testing.T) {
	var hit string
	mark := func(name string) ViewFunc {
		return func(*Scope) *html.Node {
			hit = name
			return nil
		}
	}
	r := NewRouter(mark("fallback"),
		Route{Pattern: "/x/:id", View: mark("param")},
		Route{Pattern: "/x/new", View: mark("literal")},
	)

	m, v, ok := r.Match("/x/new")
	require.True(t, ok)
	v(nil)
	assert.Equal(t, "param", hit)
	assert.Equal(t, "new", m.Param("id"))
}

func TestMatchKey(t *testing.T) {
	a := Match{Pattern: "/project/:id", Params: map[string]string{"id": "a"}}
	b := Match{Pattern: "/project/:id", Params: map[string]string{"id": "b"}}
	assert.NotEqual(t, a.key(), b.key())
	assert.Equal(t, "/photos", Match{Pattern: "/photos"}.key())
}

func TestFallbackPage(t *testing.T) {
	s := mountAt(t, "/does/not/exist", "")

	assert.Equal(t, http.StatusNotFound, s.Status())
	assert.Equal(t, "", s.Pattern())
	assert.Equal(t, "Page not found.", query(s).Find("p.not-found").Text())
}

func TestOutsideBaseFallsBack(t *testing.T) {
	s := mountAt(t, "/elsewhere/projects", "/portfolio/")

	assert.Equal(t, http.StatusNotFound, s.Status())
	assert.Equal(t, 1, query(s).Find("p.not-found").Length())
}
