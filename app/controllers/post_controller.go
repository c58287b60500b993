package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"blogview/app/middleware"
	"blogview/app/models"
	"blogview/app/repositories"
	"blogview/app/services"

	"github.com/gorilla/mux"
)

// PostController handles post mutations. Denials follow the post
// rules: anonymous viewers go to login, a resolvable post the viewer
// may not touch redirects to its own detail view.
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// postInput is the client-settable subset of a post. Author and
// creation time are never read from the request.
type postInput struct {
	Title       string `json:"title"`
	Text        string `json:"text"`
	PubDate     string `json:"pub_date"`
	CategoryID  int    `json:"category"`
	LocationID  int    `json:"location"`
	IsPublished bool   `json:"is_published"`
	ImagePath   string `json:"image"`
}

// Create handles creating a new post; redirects to the author's profile
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.Viewer(r)
	if viewer == nil {
		http.Redirect(w, r, middleware.LoginURL, http.StatusSeeOther)
		return
	}

	post, err := pc.parsePost(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := pc.postService.CreatePost(viewer, post); err != nil {
		pc.mutationError(w, r, err, 0)
		return
	}

	http.Redirect(w, r, profileURL(viewer.Username), http.StatusSeeOther)
}

// Edit handles updating an existing post; redirects to its detail view
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.Viewer(r)
	if viewer == nil {
		http.Redirect(w, r, middleware.LoginURL, http.StatusSeeOther)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["post_id"])
	if err != nil {
		sendError(w, "Post not found", http.StatusNotFound)
		return
	}

	post, err := pc.parsePost(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := pc.postService.UpdatePost(viewer, id, post); err != nil {
		pc.mutationError(w, r, err, id)
		return
	}

	http.Redirect(w, r, detailURL(id), http.StatusSeeOther)
}

// Delete handles deleting a post; redirects to the home feed
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.Viewer(r)
	if viewer == nil {
		http.Redirect(w, r, middleware.LoginURL, http.StatusSeeOther)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["post_id"])
	if err != nil {
		sendError(w, "Post not found", http.StatusNotFound)
		return
	}

	if err := pc.postService.DeletePost(viewer, id); err != nil {
		pc.mutationError(w, r, err, id)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// parsePost reads a post from a JSON body or form fields
func (pc *PostController) parsePost(r *http.Request) (*models.Post, error) {
	var input postInput
	if isJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			return nil, errors.New("invalid JSON: " + err.Error())
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return nil, errors.New("failed to parse form: " + err.Error())
		}
		input.Title = r.FormValue("title")
		input.Text = r.FormValue("text")
		input.PubDate = r.FormValue("pub_date")
		input.CategoryID, _ = strconv.Atoi(r.FormValue("category"))
		input.LocationID, _ = strconv.Atoi(r.FormValue("location"))
		input.IsPublished = parseCheckbox(r.FormValue("is_published"))
		input.ImagePath = r.FormValue("image")
	}

	post := &models.Post{
		Title:       input.Title,
		Text:        input.Text,
		CategoryID:  input.CategoryID,
		LocationID:  input.LocationID,
		IsPublished: input.IsPublished,
		ImagePath:   input.ImagePath,
	}
	if input.PubDate != "" {
		pubDate, err := parseDate(input.PubDate)
		if err != nil {
			return nil, errors.New("invalid pub_date: " + err.Error())
		}
		post.PubDate = pubDate
	}
	return post, nil
}

// mutationError maps service failures onto the post denial rules
func (pc *PostController) mutationError(w http.ResponseWriter, r *http.Request, err error, postID int) {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		http.Redirect(w, r, middleware.LoginURL, http.StatusSeeOther)
	case errors.Is(err, services.ErrNotOwner):
		// Soft denial: back to the post itself, no error surface.
		http.Redirect(w, r, detailURL(postID), http.StatusSeeOther)
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, "Post not found", http.StatusNotFound)
	default:
		sendError(w, err.Error(), http.StatusBadRequest)
	}
}

func parseCheckbox(value string) bool {
	return value == "on" || value == "true" || value == "1"
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
