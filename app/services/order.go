package services

import (
	"sort"

	"blogview/app/models"
)

// sortPosts applies the canonical listing order shared by every feed:
// newest publish date first, higher ID first on equal dates so
// pagination stays stable across repeated calls.
func sortPosts(posts []*models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].PubDate.Equal(posts[j].PubDate) {
			return posts[i].PubDate.After(posts[j].PubDate)
		}
		return posts[i].ID > posts[j].ID
	})
}
