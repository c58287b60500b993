package services

import (
	"time"

	"blogview/app/models"
)

// PubliclyVisible reports whether a post may be shown to viewers other
// than its author: the post is published, its publish date has passed,
// and its category (when it has one) is published too. category may be
// nil only for posts without one.
func PubliclyVisible(post *models.Post, category *models.Category, now time.Time) bool {
	if !post.IsPublished {
		return false
	}
	if post.PubDate.After(now) {
		return false
	}
	if post.HasCategory() {
		if category == nil || !category.IsPublished {
			return false
		}
	}
	return true
}

// FilterVisible narrows posts to what the viewer may see. The owner
// bypass is evaluated before the public predicate: when viewerIsOwner
// is true every post passes untouched. categories maps category ID to
// category for the predicate's category clause.
func FilterVisible(posts []*models.Post, categories map[int]*models.Category, now time.Time, viewerIsOwner bool) []*models.Post {
	if viewerIsOwner {
		return posts
	}

	var visible []*models.Post
	for _, post := range posts {
		if PubliclyVisible(post, categories[post.CategoryID], now) {
			visible = append(visible, post)
		}
	}
	return visible
}
