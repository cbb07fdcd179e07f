package models

// Blog represents a blog post. Body holds optional markdown.
type Blog struct {
	ID          string  `json:"id" yaml:"id" gorm:"type:text;primaryKey;not null"`
	Title       string  `json:"title" yaml:"title" gorm:"type:text;not null"`
	Subtitle    string  `json:"subtitle" yaml:"subtitle" gorm:"type:text;not null"`
	Tag         string  `json:"tag" yaml:"tag" gorm:"type:text;not null"`
	Description string  `json:"description" yaml:"description" gorm:"type:text;not null"`
	Overview    string  `json:"overview" yaml:"overview" gorm:"type:text;not null"`
	LiveLink    *string `json:"live_link,omitempty" yaml:"live_link,omitempty" gorm:"type:text"`
	Body        *string `json:"body,omitempty" yaml:"body,omitempty" gorm:"type:text"`
	Position    int     `json:"-" yaml:"-" gorm:"type:integer;not null;default:0;index"`
}

// Clone returns a copy that shares no pointers with b.
func (b Blog) Clone() Blog {
	b.LiveLink = clonePtr(b.LiveLink)
	b.Body = clonePtr(b.Body)
	return b
}
