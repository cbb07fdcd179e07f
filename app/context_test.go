package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasePathJoin(t *testing.T) {
	tests := []struct {
		resolved string
		rel      string
		want     string
	}{
		{"/", "projects", "/projects"},
		{"/", "/projects", "/projects"},
		{"/", "", "/"},
		{"/", "/", "/"},
		{"/", "/#blogs", "/#blogs"},
		{"/home/", "project/genezippers", "/home/project/genezippers"},
		{"/home/", "///project/x", "/home/project/x"},
		{"/home/", "/", "/home/"},
		{"/portfolio//", "/#photos", "/portfolio/#photos"},
	}

	for _, tt := range tests {
		t.Run(tt.resolved+"|"+tt.rel, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBasePath(tt.resolved).Path(tt.rel))
		})
	}
}

func TestNewBasePathPrefix(t *testing.T) {
	assert.Equal(t, "", NewBasePath("/").Prefix())
	assert.Equal(t, "/home", NewBasePath("/home/").Prefix())
	assert.Equal(t, "/a/b", NewBasePath("/a/b//").Prefix())
	assert.Equal(t, "/site", NewBasePath("https://example.com/site/").Prefix())
	assert.Equal(t, "", NewBasePath("https://example.com").Prefix())
	assert.Equal(t, "/site", NewBasePath("site/").Prefix())
	assert.Equal(t, "/site", NewBasePath("/site/?v=2#top").Prefix())
}

func TestResolveBase(t *testing.T) {
	t.Run("explicit base element wins verbatim", func(t *testing.T) {
		assert.Equal(t, "/portfolio/", ResolveBase(testShell(t, "/portfolio/"), "/home/project/x"))
	})

	t.Run("home prefix", func(t *testing.T) {
		assert.Equal(t, "/home/", ResolveBase(testShell(t, ""), "/home/project/x"))
		assert.Equal(t, "/home/", ResolveBase(testShell(t, ""), "/home"))
	})

	t.Run("prefix test is a plain starts-with", func(t *testing.T) {
		assert.Equal(t, "/home/", ResolveBase(nil, "/homeland"))
	})

	t.Run("root otherwise", func(t *testing.T) {
		assert.Equal(t, "/", ResolveBase(testShell(t, ""), "/photos"))
		assert.Equal(t, "/", ResolveBase(nil, "/"))
	})
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		prefix     string
		want       Location
		wantWithin bool
	}{
		{"root", "http://localhost/", "", Location{Path: "/"}, true},
		{"hash", "/#projects", "", Location{Path: "/", Hash: "#projects"}, true},
		{"trailing slash", "/projects/", "", Location{Path: "/projects"}, true},
		{"under prefix", "http://h/home/blog/010526#top", "/home", Location{Path: "/blog/010526", Hash: "#top"}, true},
		{"prefix itself", "/home", "/home", Location{Path: "/"}, true},
		{"prefix with slash", "/home/", "/home", Location{Path: "/"}, true},
		{"outside prefix", "/homeland", "/home", Location{Path: "/homeland"}, false},
		{"escaped slash kept", "/project/a%2Fb", "", Location{Path: "/project/a%2Fb"}, true},
		{"bad escape", "/project/%zz", "", Location{Path: "/project/%zz"}, true},
		{"bad escape with query and hash", "http://h/home/blog/%?x=1#top", "/home", Location{Path: "/blog/%", Hash: "#top"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, within := ParseLocation(tt.raw, tt.prefix)
			assert.Equal(t, tt.want, loc)
			assert.Equal(t, tt.wantWithin, within)
		})
	}
}

func TestLocationHref(t *testing.T) {
	loc := Location{Path: "/project/x", Hash: "#top"}
	assert.Equal(t, "/home/project/x#top", loc.Href(NewBasePath("/home/")))
	assert.Equal(t, "/", Location{Path: "/"}.Href(NewBasePath("/")))
}

func TestLightbox(t *testing.T) {
	var lb Lightbox
	_, open := lb.Selected()
	assert.False(t, open)

	lb.Open("a.jpg")
	url, open := lb.Selected()
	assert.True(t, open)
	assert.Equal(t, "a.jpg", url)

	lb.Open("b.jpg")
	url, _ = lb.Selected()
	assert.Equal(t, "b.jpg", url)

	lb.Close()
	_, open = lb.Selected()
	assert.False(t, open)
}
