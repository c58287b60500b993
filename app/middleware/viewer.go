package middleware

import (
	"context"
	"net/http"

	"blogview/app/auth"
	"blogview/app/models"
	"blogview/app/repositories"
)

type contextKey string

const viewerKey contextKey = "viewer"

// LoginURL is where unauthenticated mutation attempts get sent.
const LoginURL = "/auth/login/"

// CurrentUser resolves the request's session to a user and stashes it
// in the request context. Anonymous and broken sessions just pass
// through with no viewer; resolution never fails a request.
func CurrentUser(store *auth.SessionStore, userRepo repositories.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id, ok := store.UserID(r); ok {
				if user, err := userRepo.GetByID(id); err == nil {
					r = WithViewer(r, user)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithViewer returns a copy of the request carrying the given user as
// the authenticated viewer.
func WithViewer(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), viewerKey, user))
}

// Viewer returns the authenticated user on the request, or nil.
func Viewer(r *http.Request) *models.User {
	user, _ := r.Context().Value(viewerKey).(*models.User)
	return user
}

// RequireLogin redirects anonymous requests to the login entry point
// before they reach a mutation handler.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Viewer(r) == nil {
			http.Redirect(w, r, LoginURL, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
