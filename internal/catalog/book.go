package catalog

import (
	"time"
)

// Book is one catalog record. Records are created once at load time and never
// mutated afterwards.
type Book struct {
	ID          string    `yaml:"id" validate:"required,entry_id"`
	Title       string    `yaml:"title" validate:"required,min=1,max=300"`
	Author      string    `yaml:"author" validate:"required,entry_id"`
	Image       string    `yaml:"image,omitempty" validate:"omitempty,url"`
	Description string    `yaml:"description,omitempty"`
	Published   time.Time `yaml:"published" validate:"required"`
	Genres      []string  `yaml:"genres" validate:"required,min=1,dive,entry_id"`
}

// Year returns the publication year for display.
func (b Book) Year() int {
	return b.Published.Year()
}

// HasGenre reports whether the book carries the given genre key.
func (b Book) HasGenre(id string) bool {
	for _, g := range b.Genres {
		if g == id {
			return true
		}
	}
	return false
}

// Author is a display-name entry referenced by books.
type Author struct {
	ID   string `yaml:"id" validate:"required,entry_id"`
	Name string `yaml:"name" validate:"required,min=1,max=200"`
}

// Genre is a display-name entry referenced by books.
type Genre struct {
	ID   string `yaml:"id" validate:"required,entry_id"`
	Name string `yaml:"name" validate:"required,min=1,max=100"`
}
