package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostValidate(t *testing.T) {
	t.Run("valid post", func(t *testing.T) {
		post := &Post{
			Title:       "Test Post",
			Text:        "This is a test post",
			PubDate:     time.Now(),
			AuthorID:    1,
			IsPublished: true,
			CreatedAt:   time.Now(),
		}
		assert.NoError(t, post.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		post := &Post{
			Text:      "This is a test post",
			PubDate:   time.Now(),
			AuthorID:  1,
			CreatedAt: time.Now(),
		}
		assert.Error(t, post.Validate())
	})

	t.Run("missing author", func(t *testing.T) {
		post := &Post{
			Title:     "Test Post",
			Text:      "This is a test post",
			PubDate:   time.Now(),
			CreatedAt: time.Now(),
		}
		assert.Error(t, post.Validate())
	})

	t.Run("zero created_at", func(t *testing.T) {
		post := &Post{
			Title:    "Test Post",
			Text:     "This is a test post",
			PubDate:  time.Now(),
			AuthorID: 1,
		}
		assert.Error(t, post.Validate())
	})
}

func TestPostBeforeCreate(t *testing.T) {
	t.Run("sets created_at and defaults pub_date", func(t *testing.T) {
		post := &Post{Title: "Test", Text: "Text", AuthorID: 1}
		post.BeforeCreate()
		assert.False(t, post.CreatedAt.IsZero())
		assert.Equal(t, post.CreatedAt, post.PubDate)
	})

	t.Run("preserves explicit pub_date", func(t *testing.T) {
		pubDate := time.Now().Add(24 * time.Hour)
		post := &Post{Title: "Test", Text: "Text", AuthorID: 1, PubDate: pubDate}
		post.BeforeCreate()
		assert.Equal(t, pubDate, post.PubDate)
	})
}

func TestPostReferences(t *testing.T) {
	post := &Post{Title: "Test", Text: "Text", AuthorID: 1}
	assert.False(t, post.HasCategory())
	assert.False(t, post.HasLocation())

	post.CategoryID = 3
	post.LocationID = 7
	assert.True(t, post.HasCategory())
	assert.True(t, post.HasLocation())
}
