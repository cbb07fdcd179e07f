package app

import (
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio/models"
	"github.com/rpupo63/portfolio/view"
)

func TestFeaturedSectionsPrefixListings(t *testing.T) {
	home := mountAt(t, "/", "")

	tests := []struct {
		section  string
		listURL  string
		selector string
	}{
		{"#projects", "/projects", "a.project-card"},
		{"#blogs", "/blog", "a.project-card"},
		{"#photos", "/photos", ".photo-card img"},
	}

	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			list := mountAt(t, tt.listURL, "")
			all := hrefsOrSrcs(query(list).Find(tt.selector))
			featured := hrefsOrSrcs(query(home).Find(tt.section + " " + tt.selector))

			require.NotEmpty(t, all)
			assert.Len(t, featured, min(FeaturedCount, len(all)))
			assert.Equal(t, all[:len(featured)], featured)
		})
	}
}

func hrefsOrSrcs(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if v, ok := s.Attr("href"); ok {
			out = append(out, v)
			return
		}
		v, _ := s.Attr("src")
		out = append(out, v)
	})
	return out
}

func TestHomeViewAllLinks(t *testing.T) {
	s := mountAt(t, "/", "")

	assert.Equal(t, []string{"/projects", "/blog", "/photos"}, hrefs(query(s).Find(".view-all a")))
	assert.Equal(t, "/#projects", query(s).Find("a.hero-project-btn").AttrOr("href", ""))
}

func TestListingsShowEverything(t *testing.T) {
	s := mountAt(t, "/projects", "")
	assert.Equal(t, 5, query(s).Find("a.project-card").Length())
	assert.Equal(t, "All Projects", query(s).Find("h1.section-title").Text())

	s.Navigate("/photos")
	assert.Equal(t, s.Catalog().Len(models.KindPhoto), query(s).Find(".photo-card").Length())
}

func TestProjectDetail(t *testing.T) {
	s := mountAt(t, "/project/genezippers", "")
	doc := query(s)

	assert.Equal(t, http.StatusOK, s.Status())
	assert.Equal(t, "Research", doc.Find(".project-header .tag").Text())
	assert.Equal(t, 4, doc.Find(".tech-tag").Length())
	assert.Equal(t, 3, doc.Find(".posters-grid a").Length())
	assert.Equal(t, 0, doc.Find(".slideshow").Length())

	links := doc.Find(".project-links a")
	require.Equal(t, 3, links.Length())
	assert.Equal(t, "Read Paper", links.Eq(0).Text())
	assert.True(t, links.Eq(0).HasClass("btn-primary"))
	assert.Equal(t, "View Code", links.Eq(1).Text())
	assert.Equal(t, "Live Site", links.Eq(2).Text())
	links.Each(func(_ int, a *goquery.Selection) {
		assert.Equal(t, "_blank", a.AttrOr("target", ""))
		assert.Equal(t, "noopener noreferrer", a.AttrOr("rel", ""))
	})

	var headings []string
	doc.Find(".project-section h2").Each(func(_ int, h *goquery.Selection) {
		headings = append(headings, h.Text())
	})
	assert.Equal(t, []string{"Overview", "My Role", "Technologies", "Posters"}, headings)
}

func TestProjectDetailOmitsEmptySections(t *testing.T) {
	s := mountAt(t, "/project/spotwelder", "")
	doc := query(s)

	assert.Equal(t, 0, doc.Find(".project-links").Length())
	assert.Equal(t, 0, doc.Find(".posters-grid").Length())
	assert.Equal(t, 1, doc.Find(".slideshow").Length())
}

func TestProjectSlideshow(t *testing.T) {
	s := mountAt(t, "/project/spotwelder", "")
	current := func() string {
		return query(s).Find(".slideshow img").AttrOr("src", "")
	}

	assert.Equal(t, "images/SpotWelderBare.jpg", current())
	click(t, s, ".slide-btn.next")
	assert.Equal(t, "images/SpotWelderTop.jpg", current())
	click(t, s, ".slide-btn.prev")
	click(t, s, ".slide-btn.prev")
	assert.Equal(t, "images/CoilRemoval.jpg", current())

	// a different project is a fresh mount
	s.Navigate("/project/genezippers")
	s.Navigate("/project/spotwelder")
	assert.Equal(t, "images/SpotWelderBare.jpg", current())
}

func TestProjectNotFound(t *testing.T) {
	s := mountAt(t, "/project/does-not-exist", "")
	doc := query(s)

	assert.Equal(t, http.StatusNotFound, s.Status())
	assert.Equal(t, "Project Not Found", doc.Find(".not-found h1").Text())
	assert.Equal(t, "The project you are looking for does not exist.", doc.Find(".not-found p").Text())

	home := doc.Find(".not-found a.btn-primary")
	assert.Equal(t, "Return Home", home.Text())
	assert.Equal(t, "/", home.AttrOr("href", ""))

	click(t, s, ".not-found a.btn-primary")
	assert.Equal(t, "/", s.Pattern())
	assert.Equal(t, http.StatusOK, s.Status())
}

func TestDetailPathsWithEscapes(t *testing.T) {
	tests := []struct {
		url    string
		status int
		title  string
		notice string
	}{
		{"/project/%zz", http.StatusNotFound, "", "Project Not Found"},
		{"/blog/%", http.StatusNotFound, "", "Blog Post Not Found"},
		{"/project/a%2Fb", http.StatusNotFound, "", "Project Not Found"},
		{"/project/genezippers/", http.StatusOK, "GeneZippers: DNA Compression", ""},
		{"/project/gene%7Aippers", http.StatusOK, "GeneZippers: DNA Compression", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			s := mountAt(t, tt.url, "")
			doc := query(s)

			assert.Equal(t, tt.status, s.Status())
			assert.Equal(t, tt.notice, doc.Find(".not-found h1").Text())
			if tt.title != "" {
				assert.Equal(t, tt.title, doc.Find(".project-header h1").Text())
			}
			assert.Zero(t, doc.Find(".hero").Length())
		})
	}
}

func TestBlogDetail(t *testing.T) {
	s := mountAt(t, "/blog/010526", "")
	doc := query(s)

	assert.Equal(t, "Sample", doc.Find(".project-header h1").Text())
	assert.Equal(t, "/#blogs", doc.Find("a.back-link").AttrOr("href", ""))
	assert.Equal(t, 0, doc.Find(".blog-body").Length())

	s.Navigate("/blog/missing")
	assert.Equal(t, http.StatusNotFound, s.Status())
	assert.Equal(t, "Blog Post Not Found", query(s).Find(".not-found h1").Text())
}

func TestBlogDetailBody(t *testing.T) {
	s := mountAt(t, "/", "")
	body := "## Intro\n\nSome *emphasis*."
	live := "https://example.com/post"
	sc := &Scope{session: s, handlers: view.NewHandlers()}

	out, err := view.RenderString(BlogDetail(sc, models.Blog{ID: "x", Title: "X", Body: &body, LiveLink: &live}))
	require.NoError(t, err)
	assert.Contains(t, out, `<h2 id="intro">Intro</h2>`)
	assert.Contains(t, out, `<em>emphasis</em>`)
	assert.Contains(t, out, `>Read Post</a>`)
}

func TestLoadersAreTotal(t *testing.T) {
	s := mountAt(t, "/", "")

	for _, id := range []string{"", "a/b", "../etc", strings.Repeat("x", 512)} {
		sc := &Scope{session: s, handlers: view.NewHandlers(), match: Match{
			Pattern: "/project/:id",
			Params:  map[string]string{"id": id},
		}}
		require.NotNil(t, ProjectLoader(sc), id)
		assert.Equal(t, http.StatusNotFound, s.Status(), id)
		s.status = http.StatusOK
		require.NotNil(t, BlogLoader(sc), id)
		assert.Equal(t, http.StatusNotFound, s.Status(), id)
	}
}

func TestMarkdownNodes(t *testing.T) {
	var b strings.Builder
	for _, n := range markdownNodes("# Title\n\n<script>alert(1)</script>\n\ntext") {
		out, err := view.RenderString(n)
		require.NoError(t, err)
		b.WriteString(out)
	}
	assert.Contains(t, b.String(), `<h1 id="title">Title</h1>`)
	assert.NotContains(t, b.String(), "<script>")
	assert.Contains(t, b.String(), "<p>text</p>")
}
