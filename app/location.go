package app

import (
	"net/url"
	"strings"
)

// Location is the navigation state: where the session currently is.
type Location struct {
	Path string // escaped, always starts with "/"
	Hash string // "" or "#fragment"
}

// splitURL returns the escaped path and the fragment of raw. Strings that
// url.Parse rejects keep their path as written.
func splitURL(raw string) (path, fragment string) {
	if u, err := url.Parse(raw); err == nil {
		return u.EscapedPath(), u.Fragment
	}
	rest, fragment, _ := strings.Cut(raw, "#")
	rest, _, _ = strings.Cut(rest, "?")
	if _, afterScheme, ok := strings.Cut(rest, "://"); ok {
		rest = ""
		if i := strings.IndexByte(afterScheme, '/'); i >= 0 {
			rest = afterScheme[i:]
		}
	}
	return rest, fragment
}

// ParseLocation splits raw into a Location relative to the router mount
// prefix. within is false when the path lies outside the prefix.
func ParseLocation(raw, prefix string) (loc Location, within bool) {
	p, fragment := splitURL(raw)

	within = true
	if prefix != "" {
		switch {
		case p == prefix:
			p = "/"
		case strings.HasPrefix(p, prefix+"/"):
			p = strings.TrimPrefix(p, prefix)
		default:
			within = false
		}
	}

	loc.Path = NormalizePath(p)
	if fragment != "" {
		loc.Hash = "#" + fragment
	}
	return loc, within
}

// NormalizePath ensures a leading slash and strips trailing ones.
func NormalizePath(p string) string {
	p = strings.TrimRight(p, "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// unescapeSegment decodes one path segment, keeping it as written when it
// is not a valid escape sequence.
func unescapeSegment(seg string) string {
	if decoded, err := url.PathUnescape(seg); err == nil {
		return decoded
	}
	return seg
}

// Href renders loc back into a link under base.
func (l Location) Href(base BasePath) string {
	return base.Path(l.Path) + l.Hash
}
