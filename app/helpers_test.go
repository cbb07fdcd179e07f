package app

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/rpupo63/portfolio/catalog"
	"github.com/rpupo63/portfolio/view"
)

func testShell(t *testing.T, baseHref string) *html.Node {
	t.Helper()
	head := ""
	if baseHref != "" {
		head = `<base href="` + baseHref + `">`
	}
	doc, err := html.Parse(strings.NewReader("<html><head>" + head + "</head><body></body></html>"))
	require.NoError(t, err)
	return doc
}

func mountAt(t *testing.T, rawURL, baseHref string) *Session {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewSession(cat, testShell(t, baseHref), rawURL, zerolog.Nop())
}

func query(s *Session) *goquery.Document {
	return goquery.NewDocumentFromNode(s.Root())
}

// click dispatches a click on the first element matching selector in the
// current render.
func click(t *testing.T, s *Session, selector string) *view.Event {
	t.Helper()
	sel := query(s).Find(selector).First()
	require.Equal(t, 1, sel.Length(), "no element matches %q", selector)
	ref, ok := sel.Attr(view.RefAttr)
	require.True(t, ok, "%q has no handlers", selector)
	ev, err := s.Click(ref)
	require.NoError(t, err)
	return ev
}

func hrefs(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		out = append(out, href)
	})
	return out
}
