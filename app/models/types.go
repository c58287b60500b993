package models

import "time"

// Post represents a blog entry written by a user, optionally attached to a
// category and a location. A zero CategoryID or LocationID means "none".
type Post struct {
	ID          int       `validate:"gte=0"`
	Title       string    `validate:"required,min=1,max=256"`
	Text        string    `validate:"required"`
	PubDate     time.Time `validate:"required"`
	AuthorID    int       `validate:"required,gt=0"`
	CategoryID  int       `validate:"gte=0"`
	LocationID  int       `validate:"gte=0"`
	IsPublished bool
	ImagePath   string
	CreatedAt   time.Time
}

// Category groups posts under a unique URL-safe slug. An unpublished
// category hides every post in it from public listings.
type Category struct {
	ID          int    `validate:"gte=0"`
	Title       string `validate:"required,min=1,max=256"`
	Description string
	Slug        string `validate:"omitempty,max=64"`
	IsPublished bool
	CreatedAt   time.Time
}

// Location is a purely descriptive place tag; it never gates visibility.
type Location struct {
	ID          int    `validate:"gte=0"`
	Name        string `validate:"required,min=1,max=256"`
	IsPublished bool
	CreatedAt   time.Time
}

// Comment represents a comment on a blog post.
type Comment struct {
	ID        int    `validate:"gte=0"`
	PostID    int    `validate:"required,gt=0"`
	AuthorID  int    `validate:"required,gt=0"`
	Text      string `validate:"required,min=1,max=2000"`
	CreatedAt time.Time
}

// User is a registered account. Username is the public lookup key.
type User struct {
	ID           int    `validate:"gte=0"`
	Username     string `validate:"required,min=2,max=150"`
	FirstName    string `validate:"max=150"`
	LastName     string `validate:"max=150"`
	Email        string `validate:"omitempty,email"`
	IsSuperuser  bool
	PasswordHash string
	CreatedAt    time.Time
}
