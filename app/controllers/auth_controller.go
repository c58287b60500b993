package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogview/app/auth"
)

// AuthController handles signup, login and logout. It is the identity
// collaborator's HTTP surface; nothing else in the app authenticates.
type AuthController struct {
	authService *auth.Service
	sessions    *auth.SessionStore
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *auth.Service, sessions *auth.SessionStore) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
	}
}

type credentials struct {
	Username string
	Password string
	Email    string
}

// Signup handles registering a new account and signs it in
func (ac *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	creds, err := ac.parseCredentials(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := ac.authService.Register(creds.Username, creds.Password, creds.Email)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := ac.sessions.SignIn(w, r, user.ID); err != nil {
		sendError(w, "Failed to start session: "+err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, profileURL(user.Username), http.StatusSeeOther)
}

// Login handles signing in
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	creds, err := ac.parseCredentials(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := ac.authService.Authenticate(creds.Username, creds.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		sendError(w, err.Error(), http.StatusUnauthorized)
		return
	}
	if err != nil {
		sendError(w, "Login failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := ac.sessions.SignIn(w, r, user.ID); err != nil {
		sendError(w, "Failed to start session: "+err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles signing out
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := ac.sessions.SignOut(w, r); err != nil {
		sendError(w, "Failed to end session: "+err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (ac *AuthController) parseCredentials(r *http.Request) (credentials, error) {
	var creds credentials
	if isJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			return creds, errors.New("invalid JSON: " + err.Error())
		}
		return creds, nil
	}

	if err := r.ParseForm(); err != nil {
		return creds, errors.New("failed to parse form: " + err.Error())
	}
	creds.Username = r.FormValue("username")
	creds.Password = r.FormValue("password")
	creds.Email = r.FormValue("email")
	return creds, nil
}
