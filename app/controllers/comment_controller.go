package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"blogview/app/middleware"
	"blogview/app/repositories"
	"blogview/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles comment mutations. Unlike posts there is
// no soft denial here: a comment the viewer doesn't own is simply not
// found.
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Create handles commenting on a post; redirects to the post's comment
// section
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.Viewer(r)
	if viewer == nil {
		http.Redirect(w, r, middleware.LoginURL, http.StatusSeeOther)
		return
	}

	vars := mux.Vars(r)
	postID, err := strconv.Atoi(vars["post_id"])
	if err != nil {
		sendError(w, "Post not found", http.StatusNotFound)
		return
	}

	text, err := cc.parseText(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := cc.commentService.AddComment(viewer, postID, text); err != nil {
		cc.mutationError(w, err, "Post not found")
		return
	}

	http.Redirect(w, r, commentsURL(postID), http.StatusSeeOther)
}

// Edit handles updating one of the viewer's own comments
func (cc *CommentController) Edit(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.Viewer(r)
	if viewer == nil {
		http.Redirect(w, r, middleware.LoginURL, http.StatusSeeOther)
		return
	}

	vars := mux.Vars(r)
	commentID, err := strconv.Atoi(vars["comment_id"])
	if err != nil {
		sendError(w, "Comment not found", http.StatusNotFound)
		return
	}

	text, err := cc.parseText(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := cc.commentService.UpdateComment(viewer, commentID, text)
	if err != nil {
		cc.mutationError(w, err, "Comment not found")
		return
	}

	http.Redirect(w, r, commentsURL(comment.PostID), http.StatusSeeOther)
}

// Delete handles deleting one of the viewer's own comments
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.Viewer(r)
	if viewer == nil {
		http.Redirect(w, r, middleware.LoginURL, http.StatusSeeOther)
		return
	}

	vars := mux.Vars(r)
	commentID, err := strconv.Atoi(vars["comment_id"])
	if err != nil {
		sendError(w, "Comment not found", http.StatusNotFound)
		return
	}

	comment, err := cc.commentService.DeleteComment(viewer, commentID)
	if err != nil {
		cc.mutationError(w, err, "Comment not found")
		return
	}

	http.Redirect(w, r, commentsURL(comment.PostID), http.StatusSeeOther)
}

// parseText reads the comment text from a JSON body or form field
func (cc *CommentController) parseText(r *http.Request) (string, error) {
	if isJSONRequest(r) {
		var input struct {
			Text string
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			return "", errors.New("invalid JSON: " + err.Error())
		}
		return input.Text, nil
	}

	if err := r.ParseForm(); err != nil {
		return "", errors.New("failed to parse form: " + err.Error())
	}
	return r.FormValue("text"), nil
}

func (cc *CommentController) mutationError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, notFoundMsg, http.StatusNotFound)
	default:
		sendError(w, err.Error(), http.StatusBadRequest)
	}
}
