package models

// Kind identifies one of the catalog's entity collections
type Kind string

const (
	KindProject Kind = "project"
	KindBlog    Kind = "blog"
	KindPhoto   Kind = "photo"
)

// RouteBase is the path segment detail links for the kind are built under.
func (k Kind) RouteBase() string {
	switch k {
	case KindProject:
		return "project"
	case KindBlog:
		return "blog"
	default:
		return ""
	}
}

// Entry is the kind-independent summary shown on cards.
type Entry struct {
	Kind        Kind
	ID          string
	Title       string
	Description string
	Tag         string
}

func (p Project) Entry() Entry {
	return Entry{Kind: KindProject, ID: p.ID, Title: p.Title, Description: p.Description, Tag: p.Tag}
}

func (b Blog) Entry() Entry {
	return Entry{Kind: KindBlog, ID: b.ID, Title: b.Title, Description: b.Description, Tag: b.Tag}
}
