package models

import (
	"errors"
	"time"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.PubDate.IsZero() {
		p.PubDate = p.CreatedAt
	}
}

// HasCategory reports whether the post is attached to a category.
func (p *Post) HasCategory() bool {
	return p.CategoryID > 0
}

// HasLocation reports whether the post is attached to a location.
func (p *Post) HasLocation() bool {
	return p.LocationID > 0
}
