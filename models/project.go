package models

import "gorm.io/datatypes"

// Project represents a portfolio project with its optional resources
type Project struct {
	ID           string                      `json:"id" yaml:"id" gorm:"type:text;primaryKey;not null"`
	Title        string                      `json:"title" yaml:"title" gorm:"type:text;not null"`
	Subtitle     string                      `json:"subtitle" yaml:"subtitle" gorm:"type:text;not null"`
	Tag          string                      `json:"tag" yaml:"tag" gorm:"type:text;not null"`
	Description  string                      `json:"description" yaml:"description" gorm:"type:text;not null"`
	Overview     string                      `json:"overview" yaml:"overview" gorm:"type:text;not null"`
	Role         string                      `json:"role" yaml:"role" gorm:"type:text;not null"`
	Technologies datatypes.JSONSlice[string] `json:"technologies,omitempty" yaml:"technologies,omitempty" gorm:"type:jsonb"`
	LiveLink     *string                     `json:"live_link,omitempty" yaml:"live_link,omitempty" gorm:"type:text"`
	CodeLink     *string                     `json:"code_link,omitempty" yaml:"code_link,omitempty" gorm:"type:text"`
	PaperLink    *string                     `json:"paper_link,omitempty" yaml:"paper_link,omitempty" gorm:"type:text"`
	Posters      datatypes.JSONSlice[Poster] `json:"posters,omitempty" yaml:"posters,omitempty" gorm:"type:jsonb"`
	Photos       datatypes.JSONSlice[Photo]  `json:"photos,omitempty" yaml:"photos,omitempty" gorm:"type:jsonb"`
	Position     int                         `json:"-" yaml:"-" gorm:"type:integer;not null;default:0;index"`
}

// Poster is a named link to a research poster
type Poster struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// PhotoURLs returns the project's photo URLs in declaration order.
func (p Project) PhotoURLs() []string {
	if len(p.Photos) == 0 {
		return nil
	}
	urls := make([]string, 0, len(p.Photos))
	for _, photo := range p.Photos {
		urls = append(urls, photo.URL)
	}
	return urls
}

// Clone returns a copy that shares no slices or link pointers with p.
func (p Project) Clone() Project {
	p.LiveLink = clonePtr(p.LiveLink)
	p.CodeLink = clonePtr(p.CodeLink)
	p.PaperLink = clonePtr(p.PaperLink)
	p.Technologies = cloneSlice(p.Technologies)
	p.Posters = cloneSlice(p.Posters)
	p.Photos = cloneSlice(p.Photos)
	return p
}

func cloneSlice[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}
	out := make(S, len(s))
	copy(out, s)
	return out
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
