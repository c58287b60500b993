package models

import "time"

// Validate checks if the location meets all validation requirements
func (l *Location) Validate() error {
	return validate.Struct(l)
}

// BeforeCreate sets up any necessary fields before creation
func (l *Location) BeforeCreate() {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
}
