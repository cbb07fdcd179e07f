package models

// Photo is a gallery image
type Photo struct {
	URL      string `json:"url" yaml:"url" gorm:"type:text;primaryKey;not null"`
	Caption  string `json:"caption,omitempty" yaml:"caption,omitempty" gorm:"type:text;not null;default:''"`
	Position int    `json:"-" yaml:"-" gorm:"type:integer;not null;default:0;index"`
}
