package app

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio/errs"
)

func TestRootDeploymentLinks(t *testing.T) {
	s := mountAt(t, "http://localhost/photos", "")

	assert.Equal(t, "", s.Base().Prefix())
	assert.Equal(t, "/projects", s.Base().Path("projects"))
	assert.Equal(t, "/photos", s.Pattern())
	assert.Equal(t, "Photos", query(s).Find("h1.section-title").Text())
	assert.Equal(t, []string{"/#home", "/#projects", "/#blogs", "/#photos", "/about"},
		hrefs(query(s).Find("ul.nav-links a")))
}

func TestHomeSubpathDeployment(t *testing.T) {
	s := mountAt(t, "http://localhost/home/project/genezippers", "")

	assert.Equal(t, "/home", s.Base().Prefix())
	assert.Equal(t, "/project/genezippers", s.Location().Path)
	assert.Equal(t, "GeneZippers: DNA Compression", query(s).Find(".project-header h1").Text())

	back, _ := query(s).Find("a.back-link").Attr("href")
	assert.Equal(t, "/home/#projects", back)
	for _, href := range hrefs(query(s).Find("ul.nav-links a")) {
		assert.Regexp(t, `^/home/`, href)
	}
	assert.Equal(t, "/home/project/genezippers", s.URL())
}

func TestBaseElementDeployment(t *testing.T) {
	s := mountAt(t, "http://localhost/portfolio/blog", "/portfolio/")

	assert.Equal(t, "/portfolio", s.Base().Prefix())
	assert.Equal(t, "/blog", s.Pattern())

	click(t, s, `a.project-card`)
	assert.Equal(t, "/blog/010526", s.Location().Path)
	assert.Equal(t, "/portfolio/blog/010526", s.URL())
}

func TestBaseElementHrefForms(t *testing.T) {
	for _, href := range []string{"https://example.com/site/", "site/", "/site"} {
		t.Run(href, func(t *testing.T) {
			s := mountAt(t, "http://example.com/site/projects", href)

			assert.Equal(t, "/site", s.Base().Prefix())
			assert.Equal(t, "/projects", s.Pattern())
			assert.Equal(t, "/site/projects", s.URL())
			assert.Equal(t, "/site/project/genezippers",
				query(s).Find(`a.project-card`).First().AttrOr("href", ""))
		})
	}
}

func TestLinkNavigation(t *testing.T) {
	s := mountAt(t, "/projects", "")

	ev := click(t, s, `a.project-card[href="/project/spotwelder"]`)
	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, "/project/:id", s.Pattern())
	assert.Equal(t, "DIY Spotwelder", query(s).Find(".project-header h1").Text())

	s.Navigate("/about")
	assert.Equal(t, "About Me", query(s).Find("h2.section-title").Text())
	assert.Equal(t, http.StatusOK, s.Status())
}

func TestClickUnknownRef(t *testing.T) {
	s := mountAt(t, "/", "")

	_, err := s.Click("e99999")
	require.Error(t, err)
	assert.True(t, errs.IsUnknownRef(err))
}

func TestRendersAreDeterministic(t *testing.T) {
	a := mountAt(t, "/project/genezippers", "")
	b := mountAt(t, "/project/genezippers", "")

	ha, err := a.HTML()
	require.NoError(t, err)
	hb, err := b.HTML()
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
}

func TestNavbarActive(t *testing.T) {
	tests := []struct {
		url    string
		active []string
	}{
		{"/", []string{"Home"}},
		{"/#blogs", []string{"Home", "Blogs"}},
		{"/projects", []string{"Projects"}},
		{"/project/genezippers", []string{"Projects"}},
		{"/blog/010526", []string{"Blogs"}},
		{"/photos", []string{"Photos"}},
		{"/about", []string{"About"}},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			s := mountAt(t, tt.url, "")
			var got []string
			for _, n := range query(s).Find("ul.nav-links a.active").Nodes {
				got = append(got, n.FirstChild.Data)
			}
			assert.Equal(t, tt.active, got)
		})
	}
}

func TestNavbarMenuToggle(t *testing.T) {
	s := mountAt(t, "/projects", "")
	assert.False(t, query(s).Find("ul.nav-links").HasClass("open"))

	click(t, s, "button.menu-toggle")
	assert.True(t, query(s).Find("ul.nav-links").HasClass("open"))
	assert.True(t, query(s).Find("button.menu-toggle").HasClass("open"))

	click(t, s, "button.menu-toggle")
	assert.False(t, query(s).Find("ul.nav-links").HasClass("open"))
}

func TestLocalStateResetsOnRouteChange(t *testing.T) {
	s := mountAt(t, "/projects", "")
	click(t, s, "button.menu-toggle")
	require.True(t, query(s).Find("ul.nav-links").HasClass("open"))

	// unrelated re-render keeps it
	s.SetHash("#top")
	assert.True(t, query(s).Find("ul.nav-links").HasClass("open"))

	s.Navigate("/blog")
	assert.False(t, query(s).Find("ul.nav-links").HasClass("open"))
}

func TestNavLinkClosesMenu(t *testing.T) {
	s := mountAt(t, "/", "")
	click(t, s, "button.menu-toggle")
	click(t, s, `ul.nav-links a[href="/#blogs"]`)

	assert.False(t, query(s).Find("ul.nav-links").HasClass("open"))
}

func TestLightbox_OpenAndClose(t *testing.T) {
	s := mountAt(t, "/photos", "")
	assert.Equal(t, 0, query(s).Find(".lightbox-overlay").Length())

	first, _ := query(s).Find(".photo-card img").First().Attr("src")
	click(t, s, ".photo-card")

	src, _ := query(s).Find(".lightbox-content img").Attr("src")
	assert.Equal(t, first, src)

	t.Run("image click stays open", func(t *testing.T) {
		img := query(s).Find(".lightbox-content img").Get(0)
		ev := s.ClickElement(img)
		assert.True(t, ev.Stopped())
		assert.Equal(t, 1, query(s).Find(".lightbox-overlay").Length())
	})

	t.Run("backdrop closes", func(t *testing.T) {
		click(t, s, ".lightbox-overlay")
		assert.Equal(t, 0, query(s).Find(".lightbox-overlay").Length())
	})

	t.Run("close button closes", func(t *testing.T) {
		click(t, s, ".photo-card")
		require.Equal(t, 1, query(s).Find(".lightbox-overlay").Length())
		click(t, s, "button.lightbox-close")
		assert.Equal(t, 0, query(s).Find(".lightbox-overlay").Length())
	})
}

func TestLightboxSurvivesNavigation(t *testing.T) {
	s := mountAt(t, "/", "")
	click(t, s, "#photos .photo-card")
	s.Navigate("/about")

	_, open := s.Lightbox().Selected()
	assert.True(t, open)
	assert.Equal(t, 1, query(s).Find(".lightbox-overlay").Length())
}
