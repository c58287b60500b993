package repositories

import "blogview/app/models"

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	ListAll() ([]*models.Post, error)
	ListByAuthor(authorID int) ([]*models.Post, error)
	ListByCategory(categoryID int) ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
}

// CommentRepository defines the interface for comment data access.
// GetOwned resolves a comment only when it belongs to the given author;
// anything else is ErrNotFound, so non-owners cannot tell a foreign
// comment from a missing one.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id int) (*models.Comment, error)
	GetOwned(id, authorID int) (*models.Comment, error)
	ListByPost(postID int) ([]*models.Comment, error)
	CountByPost(postID int) (int, error)
	Update(comment *models.Comment) error
	Delete(id int) error
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id int) (*models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	ListAll() ([]*models.Category, error)
	Update(category *models.Category) error
	Delete(id int) error
}

// LocationRepository defines the interface for location data access
type LocationRepository interface {
	Create(location *models.Location) error
	GetByID(id int) (*models.Location, error)
	ListAll() ([]*models.Location, error)
	Update(location *models.Location) error
	Delete(id int) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
}
