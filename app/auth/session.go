package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "blogview_session"

// SessionStore wraps a cookie store and is the only place session
// internals are touched. The rest of the app asks it one question: who
// is the viewer on this request.
type SessionStore struct {
	store *sessions.CookieStore
}

// NewSessionStore creates a cookie-backed session store.
func NewSessionStore(secret []byte) *SessionStore {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionStore{store: store}
}

// SignIn records the user in the request's session.
func (s *SessionStore) SignIn(w http.ResponseWriter, r *http.Request, userID int) error {
	session, _ := s.store.Get(r, sessionName)
	session.Values["user_id"] = userID
	return session.Save(r, w)
}

// SignOut drops the session.
func (s *SessionStore) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, sessionName)
	delete(session.Values, "user_id")
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// UserID returns the signed-in user's ID, or false for anonymous
// requests and malformed sessions alike.
func (s *SessionStore) UserID(r *http.Request) (int, bool) {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		return 0, false
	}
	id, ok := session.Values["user_id"].(int)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}
