package repositories

import (
	"testing"
	"time"

	"blogview/app/models"

	"github.com/stretchr/testify/assert"
)

func TestBadgerPostRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewBadgerPostRepository(db)

	t.Run("create assigns ID and timestamps", func(t *testing.T) {
		post := &models.Post{
			Title:    "First Post",
			Text:     "Hello",
			AuthorID: 1,
		}
		err := repo.Create(post)
		assert.NoError(t, err)
		assert.Equal(t, 1, post.ID)
		assert.False(t, post.CreatedAt.IsZero())
		assert.False(t, post.PubDate.IsZero())
	})

	t.Run("get by ID", func(t *testing.T) {
		post, err := repo.GetByID(1)
		assert.NoError(t, err)
		assert.Equal(t, "First Post", post.Title)
	})

	t.Run("get missing post", func(t *testing.T) {
		_, err := repo.GetByID(999)
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("list by author and category", func(t *testing.T) {
		err := repo.Create(&models.Post{Title: "Second", Text: "x", AuthorID: 2, CategoryID: 5})
		assert.NoError(t, err)
		err = repo.Create(&models.Post{Title: "Third", Text: "x", AuthorID: 1, CategoryID: 5})
		assert.NoError(t, err)

		byAuthor, err := repo.ListByAuthor(1)
		assert.NoError(t, err)
		assert.Len(t, byAuthor, 2)

		byCategory, err := repo.ListByCategory(5)
		assert.NoError(t, err)
		assert.Len(t, byCategory, 2)

		all, err := repo.ListAll()
		assert.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("update", func(t *testing.T) {
		post, err := repo.GetByID(1)
		assert.NoError(t, err)

		post.Title = "Updated Title"
		post.PubDate = time.Now().Add(time.Hour)
		assert.NoError(t, repo.Update(post))

		updated, err := repo.GetByID(1)
		assert.NoError(t, err)
		assert.Equal(t, "Updated Title", updated.Title)
	})

	t.Run("update missing post", func(t *testing.T) {
		err := repo.Update(&models.Post{ID: 999, Title: "Ghost"})
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("delete", func(t *testing.T) {
		assert.NoError(t, repo.Delete(1))
		_, err := repo.GetByID(1)
		assert.Equal(t, ErrNotFound, err)

		assert.Equal(t, ErrNotFound, repo.Delete(1))
	})
}
