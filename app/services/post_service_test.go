package services

import (
	"testing"
	"time"

	"blogview/app/models"
	"blogview/app/repositories"
	"blogview/app/repositories/mock"

	"github.com/stretchr/testify/assert"
)

type postServiceFixture struct {
	svc      *PostService
	posts    *mock.PostRepository
	comments *mock.CommentRepository
	cats     *mock.CategoryRepository
	locs     *mock.LocationRepository

	author   *models.User
	stranger *models.User
	admin    *models.User
}

func newPostServiceFixture(t *testing.T) *postServiceFixture {
	t.Helper()
	f := &postServiceFixture{
		posts:    mock.NewPostRepository(),
		comments: mock.NewCommentRepository(),
		cats:     mock.NewCategoryRepository(),
		locs:     mock.NewLocationRepository(),
	}
	f.svc = NewPostService(f.posts, f.comments, f.cats, f.locs)
	f.author = &models.User{ID: 1, Username: "alice"}
	f.stranger = &models.User{ID: 2, Username: "bob"}
	f.admin = &models.User{ID: 3, Username: "root", IsSuperuser: true}
	return f
}

func TestPostServiceCreate(t *testing.T) {
	t.Run("requires a viewer", func(t *testing.T) {
		f := newPostServiceFixture(t)
		err := f.svc.CreatePost(nil, &models.Post{Title: "T", Text: "t"})
		assert.Equal(t, ErrUnauthenticated, err)
	})

	t.Run("stamps the viewer as author", func(t *testing.T) {
		f := newPostServiceFixture(t)
		post := &models.Post{Title: "T", Text: "t", AuthorID: 99}
		assert.NoError(t, f.svc.CreatePost(f.author, post))
		assert.Equal(t, f.author.ID, post.AuthorID)
		assert.False(t, post.PubDate.IsZero())
	})

	t.Run("rejects a dangling category", func(t *testing.T) {
		f := newPostServiceFixture(t)
		err := f.svc.CreatePost(f.author, &models.Post{Title: "T", Text: "t", CategoryID: 7})
		assert.ErrorContains(t, err, "category 7")
		assert.NotErrorIs(t, err, repositories.ErrNotFound, "a bad reference is not a missing post")
	})

	t.Run("rejects a dangling location", func(t *testing.T) {
		f := newPostServiceFixture(t)
		err := f.svc.CreatePost(f.author, &models.Post{Title: "T", Text: "t", LocationID: 7})
		assert.ErrorContains(t, err, "location 7")
		assert.NotErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("accepts valid references", func(t *testing.T) {
		f := newPostServiceFixture(t)
		category := &models.Category{Title: "Travel", IsPublished: true}
		location := &models.Location{Name: "Lisbon", IsPublished: true}
		assert.NoError(t, f.cats.Create(category))
		assert.NoError(t, f.locs.Create(location))

		post := &models.Post{Title: "T", Text: "t", CategoryID: category.ID, LocationID: location.ID}
		assert.NoError(t, f.svc.CreatePost(f.author, post))
		assert.NotZero(t, post.ID)
	})

	t.Run("rejects an invalid post", func(t *testing.T) {
		f := newPostServiceFixture(t)
		err := f.svc.CreatePost(f.author, &models.Post{Text: "no title"})
		assert.Error(t, err)
	})
}

func TestPostServiceUpdate(t *testing.T) {
	seed := func(t *testing.T, f *postServiceFixture) *models.Post {
		t.Helper()
		post := &models.Post{
			Title:       "Original",
			Text:        "body",
			AuthorID:    f.author.ID,
			IsPublished: true,
			PubDate:     time.Now().Add(-time.Hour),
		}
		assert.NoError(t, f.posts.Create(post))
		return post
	}

	t.Run("author edits their post", func(t *testing.T) {
		f := newPostServiceFixture(t)
		post := seed(t, f)

		updated, err := f.svc.UpdatePost(f.author, post.ID, &models.Post{Title: "Edited", Text: "body"})
		assert.NoError(t, err)
		assert.Equal(t, "Edited", updated.Title)
		assert.Equal(t, post.CreatedAt, updated.CreatedAt)
		assert.Equal(t, post.PubDate, updated.PubDate, "zero pub date keeps the existing one")

		stored, err := f.posts.GetByID(post.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Edited", stored.Title)
	})

	t.Run("non-owner gets a soft denial and nothing changes", func(t *testing.T) {
		f := newPostServiceFixture(t)
		post := seed(t, f)

		_, err := f.svc.UpdatePost(f.stranger, post.ID, &models.Post{Title: "Hijack", Text: "x"})
		assert.Equal(t, ErrNotOwner, err)

		stored, err := f.posts.GetByID(post.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Original", stored.Title)
	})

	t.Run("superuser may not edit someone else's post", func(t *testing.T) {
		f := newPostServiceFixture(t)
		post := seed(t, f)

		_, err := f.svc.UpdatePost(f.admin, post.ID, &models.Post{Title: "Admin", Text: "x"})
		assert.Equal(t, ErrNotOwner, err)
	})

	t.Run("missing post", func(t *testing.T) {
		f := newPostServiceFixture(t)
		_, err := f.svc.UpdatePost(f.author, 42, &models.Post{Title: "T", Text: "t"})
		assert.Equal(t, repositories.ErrNotFound, err)
	})

	t.Run("requires a viewer", func(t *testing.T) {
		f := newPostServiceFixture(t)
		post := seed(t, f)
		_, err := f.svc.UpdatePost(nil, post.ID, &models.Post{Title: "T", Text: "t"})
		assert.Equal(t, ErrUnauthenticated, err)
	})
}

func TestPostServiceDelete(t *testing.T) {
	seed := func(t *testing.T, f *postServiceFixture) *models.Post {
		t.Helper()
		post := &models.Post{
			Title:       "Doomed",
			Text:        "body",
			AuthorID:    f.author.ID,
			IsPublished: true,
			PubDate:     time.Now().Add(-time.Hour),
		}
		assert.NoError(t, f.posts.Create(post))
		return post
	}

	t.Run("author deletes with cascading comments", func(t *testing.T) {
		f := newPostServiceFixture(t)
		post := seed(t, f)
		assert.NoError(t, f.comments.Create(&models.Comment{PostID: post.ID, AuthorID: f.stranger.ID, Text: "bye"}))

		assert.NoError(t, f.svc.DeletePost(f.author, post.ID))

		_, err := f.posts.GetByID(post.ID)
		assert.Equal(t, repositories.ErrNotFound, err)

		count, err := f.comments.CountByPost(post.ID)
		assert.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("superuser may delete anyone's post", func(t *testing.T) {
		f := newPostServiceFixture(t)
		post := seed(t, f)

		assert.NoError(t, f.svc.DeletePost(f.admin, post.ID))
		_, err := f.posts.GetByID(post.ID)
		assert.Equal(t, repositories.ErrNotFound, err)
	})

	t.Run("non-owner gets a soft denial", func(t *testing.T) {
		f := newPostServiceFixture(t)
		post := seed(t, f)

		err := f.svc.DeletePost(f.stranger, post.ID)
		assert.Equal(t, ErrNotOwner, err)

		_, err = f.posts.GetByID(post.ID)
		assert.NoError(t, err)
	})

	t.Run("requires a viewer", func(t *testing.T) {
		f := newPostServiceFixture(t)
		post := seed(t, f)
		assert.Equal(t, ErrUnauthenticated, f.svc.DeletePost(nil, post.ID))
	})
}
