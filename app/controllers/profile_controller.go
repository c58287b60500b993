package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogview/app/middleware"
	"blogview/app/services"
)

// ProfileController handles the signed-in user's profile edits.
type ProfileController struct {
	userService *services.UserService
}

// NewProfileController creates a new ProfileController
func NewProfileController(userService *services.UserService) *ProfileController {
	return &ProfileController{userService: userService}
}

// Edit handles updating the viewer's own profile; redirects to it
func (pc *ProfileController) Edit(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.Viewer(r)
	if viewer == nil {
		http.Redirect(w, r, middleware.LoginURL, http.StatusSeeOther)
		return
	}

	var input services.ProfileInput
	if isJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			sendError(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
			return
		}
		input.Username = r.FormValue("username")
		input.FirstName = r.FormValue("first_name")
		input.LastName = r.FormValue("last_name")
		input.Email = r.FormValue("email")
	}

	user, err := pc.userService.UpdateProfile(viewer, input)
	if errors.Is(err, services.ErrUnauthenticated) {
		http.Redirect(w, r, middleware.LoginURL, http.StatusSeeOther)
		return
	}
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, profileURL(user.Username), http.StatusSeeOther)
}
