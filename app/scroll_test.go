package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHomeHashScrollsAfterFrame(t *testing.T) {
	s := mountAt(t, "/#photos", "")

	assert.Equal(t, 1, s.PendingFrames())
	assert.Equal(t, []string{"photos"}, s.Frame())
	assert.Empty(t, s.Frame())
}

func TestHomeWithoutHashDoesNotScroll(t *testing.T) {
	s := mountAt(t, "/", "")
	assert.Zero(t, s.PendingFrames())
}

func TestHashChangeScrolls(t *testing.T) {
	s := mountAt(t, "/", "")

	s.SetHash("#blogs")
	assert.Equal(t, []string{"blogs"}, s.Frame())

	// same hash again is not a change
	s.SetHash("blogs")
	assert.Empty(t, s.Frame())
}

func TestSectionLinkOnHomeScrollsInPlace(t *testing.T) {
	s := mountAt(t, "/", "")

	ev := click(t, s, `ul.nav-links a[href="/#projects"]`)
	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, Location{Path: "/"}, s.Location())
	assert.Equal(t, []string{"projects"}, s.Frame())
}

func TestSectionLinkElsewhereRoutesHome(t *testing.T) {
	s := mountAt(t, "/photos", "")

	click(t, s, `ul.nav-links a[href="/#projects"]`)
	assert.Equal(t, Location{Path: "/", Hash: "#projects"}, s.Location())
	assert.Equal(t, "/", s.Pattern())
	assert.Equal(t, []string{"projects"}, s.Frame())
}

func TestScrollAfterUnmountIsNoop(t *testing.T) {
	s := mountAt(t, "/#blogs", "")
	s.Unmount()

	assert.False(t, s.Mounted())
	assert.Empty(t, s.Frame())
}

func TestScrollToMissingTarget(t *testing.T) {
	s := mountAt(t, "/#nowhere", "")

	assert.Equal(t, 1, s.PendingFrames())
	assert.Empty(t, s.Frame())
}
