// Package view builds render trees on top of golang.org/x/net/html nodes
// and dispatches UI events through them.
package view

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Option configures an element under construction.
type Option interface {
	apply(*html.Node)
}

type optionFunc func(*html.Node)

func (f optionFunc) apply(n *html.Node) { f(n) }

// El creates an element node. Nil options are ignored.
func El(tag string, opts ...Option) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(n)
		}
	}
	return n
}

// TextNode creates a detached text node.
func TextNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Attr sets an attribute, replacing any previous value.
func Attr(key, val string) Option {
	return optionFunc(func(n *html.Node) {
		SetAttr(n, key, val)
	})
}

func ID(id string) Option     { return Attr("id", id) }
func Href(href string) Option { return Attr("href", href) }

// Class sets the class attribute from the non-empty names.
func Class(names ...string) Option {
	var kept []string
	for _, name := range names {
		if name != "" {
			kept = append(kept, name)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return Attr("class", strings.Join(kept, " "))
}

// ClassIf returns name when cond holds, for use inside Class.
func ClassIf(cond bool, name string) string {
	if cond {
		return name
	}
	return ""
}

// Text appends a text child.
func Text(s string) Option {
	return optionFunc(func(n *html.Node) {
		n.AppendChild(TextNode(s))
	})
}

// Children appends the non-nil nodes in order.
func Children(nodes ...*html.Node) Option {
	return optionFunc(func(n *html.Node) {
		for _, c := range nodes {
			if c != nil {
				n.AppendChild(c)
			}
		}
	})
}

// External marks an anchor as opening in a new browsing context.
func External() Option {
	return optionFunc(func(n *html.Node) {
		SetAttr(n, "target", "_blank")
		SetAttr(n, "rel", "noopener noreferrer")
	})
}

// SetAttr sets key on n.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// AttrValue returns the value of key on n, or "".
func AttrValue(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether n carries key.
func HasAttr(n *html.Node, key string) bool {
	if n == nil {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// Find returns the first element in document order satisfying match.
func Find(root *html.Node, match func(*html.Node) bool) *html.Node {
	if root == nil {
		return nil
	}
	if root.Type == html.ElementNode && match(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := Find(c, match); found != nil {
			return found
		}
	}
	return nil
}

// FindByTag returns the first element named tag.
func FindByTag(root *html.Node, tag string) *html.Node {
	return Find(root, func(n *html.Node) bool { return n.Data == tag })
}

// Render writes n as HTML.
func Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

// RenderString renders n, returning "" on a nil node.
func RenderString(n *html.Node) (string, error) {
	if n == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
