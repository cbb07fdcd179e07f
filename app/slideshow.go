package app

import (
	"golang.org/x/net/html"

	"github.com/rpupo63/portfolio/view"
)

// Slideshow is a cursor over a fixed, ordered sequence of images. Prev and
// Next wrap around; there is no other way to move it.
type Slideshow struct {
	images []string
	index  int
}

func NewSlideshow(images []string) *Slideshow {
	return &Slideshow{images: append([]string(nil), images...)}
}

func (s *Slideshow) Len() int   { return len(s.images) }
func (s *Slideshow) Index() int { return s.index }

// Current returns the image under the cursor; false for an empty show.
func (s *Slideshow) Current() (string, bool) {
	if len(s.images) == 0 {
		return "", false
	}
	return s.images[s.index], true
}

func (s *Slideshow) Next() {
	if len(s.images) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.images)
}

func (s *Slideshow) Prev() {
	if len(s.images) == 0 {
		return
	}
	if s.index == 0 {
		s.index = len(s.images) - 1
		return
	}
	s.index--
}

// SlideshowView renders the carousel for images, keyed so that its cursor
// persists while the surrounding view stays mounted.
func SlideshowView(sc *Scope, key string, images []string) *html.Node {
	if len(images) == 0 {
		return nil
	}
	show := *Local(sc, "slideshow:"+key, func() *Slideshow { return NewSlideshow(images) })
	src, _ := show.Current()

	return view.El("div", view.Class("slideshow"), view.Children(
		view.El("button", view.Class("slide-btn", "prev"), view.Attr("aria-label", "Previous image"),
			sc.OnClick(func(*view.Event) { show.Prev() }), view.Text("‹")),
		view.El("img", view.Class("project-image"), view.Attr("src", src)),
		view.El("button", view.Class("slide-btn", "next"), view.Attr("aria-label", "Next image"),
			sc.OnClick(func(*view.Event) { show.Next() }), view.Text("›")),
	))
}
