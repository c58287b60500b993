package services

import (
	"fmt"
	"sort"
	"time"

	"blogview/app/models"
	"blogview/app/repositories"
)

// PostCard is a post annotated with its live comment count, the unit
// every listing hands to rendering.
type PostCard struct {
	*models.Post
	CommentCount int
}

// FeedService builds the read paths: home feed, category feed, author
// profile and single-post detail. Each one runs the same pipeline of
// visibility filter, comment-count aggregation, canonical ordering and
// pagination.
type FeedService struct {
	postRepo     repositories.PostRepository
	commentRepo  repositories.CommentRepository
	categoryRepo repositories.CategoryRepository
	userRepo     repositories.UserRepository

	// CategoryBypassOwner lets the category feed show the viewer their
	// own hidden posts, like the profile feed does. Off by default; the
	// category feed then treats every viewer as public.
	CategoryBypassOwner bool
}

// NewFeedService creates a new FeedService
func NewFeedService(
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	categoryRepo repositories.CategoryRepository,
	userRepo repositories.UserRepository,
) *FeedService {
	return &FeedService{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

// Home returns one page of the public home feed. The feed is
// author-agnostic: nobody gets an owner bypass here, not even for
// their own posts.
func (s *FeedService) Home(pageNumber int) (*Page, error) {
	posts, err := s.postRepo.ListAll()
	if err != nil {
		return nil, err
	}

	categories, err := s.categoriesByID()
	if err != nil {
		return nil, err
	}

	visible := FilterVisible(posts, categories, time.Now(), false)
	return s.assemble(visible, pageNumber)
}

// Category resolves a category by slug and returns it with one page of
// its visible posts. A missing or unpublished category is NotFound.
// Page.TotalItems carries the recounted size of the full filtered set,
// not the page slice.
func (s *FeedService) Category(slug string, viewer *models.User, pageNumber int) (*models.Category, *Page, error) {
	category, err := s.categoryRepo.GetBySlug(slug)
	if err != nil {
		return nil, nil, err
	}
	if !category.IsPublished {
		return nil, nil, repositories.ErrNotFound
	}

	posts, err := s.postRepo.ListByCategory(category.ID)
	if err != nil {
		return nil, nil, err
	}

	categories, err := s.categoriesByID()
	if err != nil {
		return nil, nil, err
	}

	var visible []*models.Post
	if s.CategoryBypassOwner {
		visible = filterVisibleForViewer(posts, categories, time.Now(), viewer)
	} else {
		visible = FilterVisible(posts, categories, time.Now(), false)
	}

	page, err := s.assemble(visible, pageNumber)
	if err != nil {
		return nil, nil, err
	}
	return category, page, nil
}

// Profile resolves a user by username and returns it with one page of
// their posts. The owner sees everything unfiltered; anyone else gets
// the public predicate.
func (s *FeedService) Profile(username string, viewer *models.User, pageNumber int) (*models.User, *Page, error) {
	profile, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, nil, err
	}

	posts, err := s.postRepo.ListByAuthor(profile.ID)
	if err != nil {
		return nil, nil, err
	}

	categories, err := s.categoriesByID()
	if err != nil {
		return nil, nil, err
	}

	viewerIsOwner := viewer != nil && viewer.ID == profile.ID
	visible := FilterVisible(posts, categories, time.Now(), viewerIsOwner)

	page, err := s.assemble(visible, pageNumber)
	if err != nil {
		return nil, nil, err
	}
	return profile, page, nil
}

// Detail resolves a single post for a viewer. The author always gets
// their post back regardless of publish state; for anyone else the
// post must clear the public predicate or it is indistinguishable from
// one that never existed. Comments come back oldest first.
func (s *FeedService) Detail(postID int, viewer *models.User) (*PostCard, []*models.Comment, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, nil, err
	}

	if viewer == nil || viewer.ID != post.AuthorID {
		var category *models.Category
		if post.HasCategory() {
			category, err = s.categoryRepo.GetByID(post.CategoryID)
			if err != nil && err != repositories.ErrNotFound {
				return nil, nil, err
			}
		}
		if !PubliclyVisible(post, category, time.Now()) {
			return nil, nil, repositories.ErrNotFound
		}
	}

	comments, err := s.commentRepo.ListByPost(post.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get comments: %v", err)
	}
	sort.SliceStable(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].ID < comments[j].ID
	})

	return &PostCard{Post: post, CommentCount: len(comments)}, comments, nil
}

// assemble runs aggregation, canonical ordering and pagination over an
// already-filtered post set.
func (s *FeedService) assemble(posts []*models.Post, pageNumber int) (*Page, error) {
	sortPosts(posts)

	cards := make([]*PostCard, 0, len(posts))
	for _, post := range posts {
		count, err := s.commentRepo.CountByPost(post.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count comments for post %d: %v", post.ID, err)
		}
		cards = append(cards, &PostCard{Post: post, CommentCount: count})
	}

	return paginate(cards, PageSize, pageNumber), nil
}

// categoriesByID loads every category keyed by ID for the visibility
// predicate's category clause.
func (s *FeedService) categoriesByID() (map[int]*models.Category, error) {
	categories, err := s.categoryRepo.ListAll()
	if err != nil {
		return nil, err
	}
	byID := make(map[int]*models.Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}
	return byID, nil
}

// filterVisibleForViewer applies the owner bypass per post: the
// viewer's own posts pass untouched, everything else faces the public
// predicate. Bypass first, predicate second.
func filterVisibleForViewer(posts []*models.Post, categories map[int]*models.Category, now time.Time, viewer *models.User) []*models.Post {
	var visible []*models.Post
	for _, post := range posts {
		if viewer != nil && viewer.ID == post.AuthorID {
			visible = append(visible, post)
			continue
		}
		if PubliclyVisible(post, categories[post.CategoryID], now) {
			visible = append(visible, post)
		}
	}
	return visible
}
