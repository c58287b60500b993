package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"blogview/app/middleware"
	"blogview/app/repositories"
	"blogview/app/services"

	"github.com/gorilla/mux"
)

// FeedController handles the read paths: home feed, category feed,
// author profile and post detail.
type FeedController struct {
	feedService *services.FeedService
}

// NewFeedController creates a new FeedController
func NewFeedController(feedService *services.FeedService) *FeedController {
	return &FeedController{feedService: feedService}
}

// Home handles the public home feed
func (fc *FeedController) Home(w http.ResponseWriter, r *http.Request) {
	page, err := fc.feedService.Home(pageParam(r))
	if err != nil {
		sendError(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, map[string]interface{}{
		"post_list": page.Items,
		"page_obj":  page,
	})
}

// Category handles the per-category feed looked up by slug
func (fc *FeedController) Category(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	category, page, err := fc.feedService.Category(vars["slug"], middleware.Viewer(r), pageParam(r))
	if errors.Is(err, repositories.ErrNotFound) {
		sendError(w, "Category not found", http.StatusNotFound)
		return
	}
	if err != nil {
		sendError(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, map[string]interface{}{
		"category":    category,
		"post_list":   page.Items,
		"page_obj":    page,
		"total_posts": page.TotalItems,
	})
}

// Profile handles a user's post listing looked up by username
func (fc *FeedController) Profile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	profile, page, err := fc.feedService.Profile(vars["username"], middleware.Viewer(r), pageParam(r))
	if errors.Is(err, repositories.ErrNotFound) {
		sendError(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		sendError(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, map[string]interface{}{
		"profile":   publicProfile(profile),
		"post_list": page.Items,
		"page_obj":  page,
	})
}

// Detail handles a single post with its comments
func (fc *FeedController) Detail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["post_id"])
	if err != nil {
		sendError(w, "Post not found", http.StatusNotFound)
		return
	}

	card, comments, err := fc.feedService.Detail(id, middleware.Viewer(r))
	if errors.Is(err, repositories.ErrNotFound) {
		sendError(w, "Post not found", http.StatusNotFound)
		return
	}
	if err != nil {
		sendError(w, "Failed to fetch post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, map[string]interface{}{
		"post":          card,
		"comments":      comments,
		"comment_count": card.CommentCount,
	})
}
