package services

import (
	"errors"

	"blogview/app/models"
)

var (
	// ErrUnauthenticated means a mutation was attempted without a viewer.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrNotOwner means an existing post was resolved but the viewer may
	// not mutate it. Callers turn this into a redirect to the post's
	// detail view rather than a hard failure.
	ErrNotOwner = errors.New("viewer does not own this post")
)

// Post and comment authorization are separate mechanisms: posts deny
// with a redirect and allow a superuser delete override, comments
// resolve as not-found with no override (see CommentRepository.GetOwned).

// CanEditPost reports whether the viewer may edit the post.
func CanEditPost(viewer *models.User, post *models.Post) bool {
	return viewer != nil && viewer.ID == post.AuthorID
}

// CanDeletePost reports whether the viewer may delete the post.
// Superusers may delete any post but never edit one.
func CanDeletePost(viewer *models.User, post *models.Post) bool {
	if viewer == nil {
		return false
	}
	return viewer.ID == post.AuthorID || viewer.IsSuperuser
}
