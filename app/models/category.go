package models

import (
	"time"

	"github.com/gosimple/slug"
)

// Validate checks if the category meets all validation requirements
func (c *Category) Validate() error {
	return validate.Struct(c)
}

// BeforeCreate sets up any necessary fields before creation. A missing
// slug is derived from the title so every category stays addressable.
func (c *Category) BeforeCreate() {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if c.Slug == "" {
		c.Slug = slug.Make(c.Title)
	}
}
