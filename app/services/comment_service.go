package services

import (
	"fmt"

	"blogview/app/models"
	"blogview/app/repositories"
)

// CommentService handles comment mutations. The gate here differs from
// posts on purpose: lookups for edit and delete are scoped to the
// viewer's own comments, so a non-owner's attempt resolves as
// not-found rather than forbidden.
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment creates a comment by the viewer on an existing post. The
// author and parent post are stamped server-side.
func (s *CommentService) AddComment(viewer *models.User, postID int, text string) (*models.Comment, error) {
	if viewer == nil {
		return nil, ErrUnauthenticated
	}

	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		AuthorID: viewer.ID,
		Text:     text,
	}
	if err := comment.SetPost(post); err != nil {
		return nil, err
	}
	comment.BeforeCreate()

	if err := comment.Validate(); err != nil {
		return nil, fmt.Errorf("invalid comment: %v", err)
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// UpdateComment replaces the text of one of the viewer's own comments.
func (s *CommentService) UpdateComment(viewer *models.User, commentID int, text string) (*models.Comment, error) {
	if viewer == nil {
		return nil, ErrUnauthenticated
	}

	existing, err := s.commentRepo.GetOwned(commentID, viewer.ID)
	if err != nil {
		return nil, err
	}

	updated := &models.Comment{
		ID:        existing.ID,
		PostID:    existing.PostID,
		AuthorID:  existing.AuthorID,
		Text:      text,
		CreatedAt: existing.CreatedAt,
	}
	if err := updated.Validate(); err != nil {
		return nil, fmt.Errorf("invalid comment: %v", err)
	}

	if err := s.commentRepo.Update(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteComment removes one of the viewer's own comments and returns
// it so callers can redirect to the owning post.
func (s *CommentService) DeleteComment(viewer *models.User, commentID int) (*models.Comment, error) {
	if viewer == nil {
		return nil, ErrUnauthenticated
	}

	comment, err := s.commentRepo.GetOwned(commentID, viewer.ID)
	if err != nil {
		return nil, err
	}

	if err := s.commentRepo.Delete(comment.ID); err != nil {
		return nil, err
	}
	return comment, nil
}
