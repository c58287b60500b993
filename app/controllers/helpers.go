package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"blogview/app/models"
)

// sendJSON writes data as a JSON response
func sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

// sendError writes an error message with the given status
func sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// pageParam reads the optional ?page= query parameter. Anything
// unparseable degrades to page 1; the pagination service clamps
// out-of-range values itself.
func pageParam(r *http.Request) int {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil {
			page = p
		}
	}
	return page
}

// isJSONRequest reports whether the request body is JSON rather than a
// form submission.
func isJSONRequest(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// detailURL is the canonical address of a post's detail view.
func detailURL(postID int) string {
	return fmt.Sprintf("/posts/%d/", postID)
}

// commentsURL is the detail view anchored at the comment section.
func commentsURL(postID int) string {
	return detailURL(postID) + "#comments"
}

// profileURL is the address of a user's profile listing.
func profileURL(username string) string {
	return "/profile/" + username + "/"
}

// publicProfile strips account internals before a user goes over the
// wire.
func publicProfile(user *models.User) map[string]interface{} {
	return map[string]interface{}{
		"ID":        user.ID,
		"Username":  user.Username,
		"FirstName": user.FirstName,
		"LastName":  user.LastName,
		"Email":     user.Email,
	}
}
