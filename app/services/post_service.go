package services

import (
	"fmt"

	"blogview/app/models"
	"blogview/app/repositories"
)

// PostService handles post mutations behind the post access gate.
type PostService struct {
	postRepo     repositories.PostRepository
	commentRepo  repositories.CommentRepository
	categoryRepo repositories.CategoryRepository
	locationRepo repositories.LocationRepository
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	categoryRepo repositories.CategoryRepository,
	locationRepo repositories.LocationRepository,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

// CreatePost creates a new post authored by the viewer. The author is
// stamped server-side; whatever the request claimed is discarded.
func (s *PostService) CreatePost(viewer *models.User, post *models.Post) error {
	if viewer == nil {
		return ErrUnauthenticated
	}
	post.AuthorID = viewer.ID
	post.BeforeCreate()

	if err := s.checkReferences(post); err != nil {
		return err
	}
	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %v", err)
	}

	return s.postRepo.Create(post)
}

// UpdatePost updates an existing post. Only the author may edit; any
// other viewer gets ErrNotOwner, which callers turn into a redirect to
// the post's detail view. The author stamp is reapplied on every save.
func (s *PostService) UpdatePost(viewer *models.User, postID int, post *models.Post) (*models.Post, error) {
	if viewer == nil {
		return nil, ErrUnauthenticated
	}

	existing, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if !CanEditPost(viewer, existing) {
		return existing, ErrNotOwner
	}

	post.ID = existing.ID
	post.AuthorID = viewer.ID
	post.CreatedAt = existing.CreatedAt
	if post.PubDate.IsZero() {
		post.PubDate = existing.PubDate
	}

	if err := s.checkReferences(post); err != nil {
		return nil, err
	}
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %v", err)
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost deletes a post and all its comments. Allowed for the
// author or a superuser; anyone else gets ErrNotOwner.
func (s *PostService) DeletePost(viewer *models.User, postID int) error {
	if viewer == nil {
		return ErrUnauthenticated
	}

	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}
	if !CanDeletePost(viewer, post) {
		return ErrNotOwner
	}

	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return fmt.Errorf("failed to get comments: %v", err)
	}
	for _, comment := range comments {
		if err := s.commentRepo.Delete(comment.ID); err != nil {
			return fmt.Errorf("failed to delete comment %d: %v", comment.ID, err)
		}
	}

	return s.postRepo.Delete(postID)
}

// checkReferences verifies the optional category and location exist.
// Lookup failures are flattened to plain input errors: a dangling
// reference on the submitted post must not read as the post itself
// being absent.
func (s *PostService) checkReferences(post *models.Post) error {
	if post.HasCategory() {
		if _, err := s.categoryRepo.GetByID(post.CategoryID); err != nil {
			return fmt.Errorf("category %d: %v", post.CategoryID, err)
		}
	}
	if post.HasLocation() {
		if _, err := s.locationRepo.GetByID(post.LocationID); err != nil {
			return fmt.Errorf("location %d: %v", post.LocationID, err)
		}
	}
	return nil
}
