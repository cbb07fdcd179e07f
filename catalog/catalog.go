// Package catalog holds the read-only content the portfolio renders.
package catalog

import (
	"github.com/rpupo63/portfolio/models"
)

// Catalog is the static content collection. It is built once at process
// start and never mutated; every accessor hands out copies.
type Catalog struct {
	projects []models.Project
	blogs    []models.Blog
	photos   []models.Photo
}

// New builds a catalog from entries in declaration order.
func New(projects []models.Project, blogs []models.Blog, photos []models.Photo) *Catalog {
	c := &Catalog{
		projects: make([]models.Project, 0, len(projects)),
		blogs:    make([]models.Blog, 0, len(blogs)),
		photos:   make([]models.Photo, 0, len(photos)),
	}
	for _, p := range projects {
		c.projects = append(c.projects, p.Clone())
	}
	for _, b := range blogs {
		c.blogs = append(c.blogs, b.Clone())
	}
	c.photos = append(c.photos, photos...)
	return c
}

// Projects returns every project in catalog order.
func (c *Catalog) Projects() []models.Project {
	out := make([]models.Project, 0, len(c.projects))
	for _, p := range c.projects {
		out = append(out, p.Clone())
	}
	return out
}

// Blogs returns every blog post in catalog order.
func (c *Catalog) Blogs() []models.Blog {
	out := make([]models.Blog, 0, len(c.blogs))
	for _, b := range c.blogs {
		out = append(out, b.Clone())
	}
	return out
}

// Photos returns every gallery photo in catalog order.
func (c *Catalog) Photos() []models.Photo {
	return append([]models.Photo(nil), c.photos...)
}

// Project looks up a project by id. The first declaration wins on duplicates.
func (c *Catalog) Project(id string) (models.Project, bool) {
	for _, p := range c.projects {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.Project{}, false
}

// Blog looks up a blog post by id.
func (c *Catalog) Blog(id string) (models.Blog, bool) {
	for _, b := range c.blogs {
		if b.ID == id {
			return b.Clone(), true
		}
	}
	return models.Blog{}, false
}

// List returns card summaries for kind. Photos have no card summary and
// yield nil.
func (c *Catalog) List(kind models.Kind) []models.Entry {
	var entries []models.Entry
	switch kind {
	case models.KindProject:
		for _, p := range c.projects {
			entries = append(entries, p.Entry())
		}
	case models.KindBlog:
		for _, b := range c.blogs {
			entries = append(entries, b.Entry())
		}
	}
	return entries
}

// Len reports the number of entries of kind.
func (c *Catalog) Len(kind models.Kind) int {
	switch kind {
	case models.KindProject:
		return len(c.projects)
	case models.KindBlog:
		return len(c.blogs)
	case models.KindPhoto:
		return len(c.photos)
	default:
		return 0
	}
}
