package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"blogview/app/middleware"
	"blogview/app/models"
	"blogview/app/repositories/mock"
	"blogview/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type postControllerFixture struct {
	router *mux.Router
	posts  *mock.PostRepository
	cats   *mock.CategoryRepository

	author   *models.User
	stranger *models.User
	admin    *models.User
}

func setupPostController(t *testing.T) *postControllerFixture {
	t.Helper()
	f := &postControllerFixture{
		posts: mock.NewPostRepository(),
		cats:  mock.NewCategoryRepository(),
	}
	service := services.NewPostService(f.posts, mock.NewCommentRepository(), f.cats, mock.NewLocationRepository())
	controller := NewPostController(service)

	f.router = mux.NewRouter()
	f.router.HandleFunc("/posts/create/", controller.Create).Methods("POST")
	f.router.HandleFunc("/posts/{post_id:[0-9]+}/edit/", controller.Edit).Methods("POST")
	f.router.HandleFunc("/posts/{post_id:[0-9]+}/delete/", controller.Delete).Methods("POST")

	f.author = &models.User{ID: 1, Username: "alice"}
	f.stranger = &models.User{ID: 2, Username: "bob"}
	f.admin = &models.User{ID: 3, Username: "root", IsSuperuser: true}
	return f
}

func (f *postControllerFixture) post(path, payload string, viewer *models.User) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if viewer != nil {
		req = middleware.WithViewer(req, viewer)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *postControllerFixture) postForm(path string, form string, viewer *models.User) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if viewer != nil {
		req = middleware.WithViewer(req, viewer)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *postControllerFixture) seed(t *testing.T) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:       "Original",
		Text:        "body",
		AuthorID:    f.author.ID,
		IsPublished: true,
		PubDate:     time.Now().Add(-time.Hour),
	}
	assert.NoError(t, f.posts.Create(post))
	return post
}

func TestPostControllerCreate(t *testing.T) {
	t.Run("redirects to the author's profile", func(t *testing.T) {
		f := setupPostController(t)
		payload := `{"title": "Hello", "text": "First post", "is_published": true}`

		w := f.post("/posts/create/", payload, f.author)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/profile/alice/", w.Header().Get("Location"))

		posts, err := f.posts.ListByAuthor(f.author.ID)
		assert.NoError(t, err)
		assert.Len(t, posts, 1)
		assert.Equal(t, "Hello", posts[0].Title)
	})

	t.Run("form submission with a date", func(t *testing.T) {
		f := setupPostController(t)
		form := "title=Scheduled&text=later&pub_date=2030-01-02&is_published=on"

		w := f.postForm("/posts/create/", form, f.author)
		assert.Equal(t, http.StatusSeeOther, w.Code)

		posts, err := f.posts.ListByAuthor(f.author.ID)
		assert.NoError(t, err)
		assert.Len(t, posts, 1)
		assert.Equal(t, 2030, posts[0].PubDate.Year())
		assert.True(t, posts[0].IsPublished)
	})

	t.Run("anonymous goes to login", func(t *testing.T) {
		f := setupPostController(t)
		w := f.post("/posts/create/", `{"title": "X", "text": "x"}`, nil)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, middleware.LoginURL, w.Header().Get("Location"))
	})

	t.Run("dangling category is a bad request", func(t *testing.T) {
		f := setupPostController(t)
		w := f.post("/posts/create/", `{"title": "X", "text": "x", "category": 9}`, f.author)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPostControllerEdit(t *testing.T) {
	t.Run("author edits and lands on the detail view", func(t *testing.T) {
		f := setupPostController(t)
		post := f.seed(t)

		w := f.post(fmt.Sprintf("/posts/%d/edit/", post.ID), `{"title": "Edited", "text": "body", "is_published": true}`, f.author)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, fmt.Sprintf("/posts/%d/", post.ID), w.Header().Get("Location"))

		stored, err := f.posts.GetByID(post.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Edited", stored.Title)
	})

	t.Run("non-owner is bounced to the detail view untouched", func(t *testing.T) {
		f := setupPostController(t)
		post := f.seed(t)

		w := f.post(fmt.Sprintf("/posts/%d/edit/", post.ID), `{"title": "Hijack", "text": "x"}`, f.stranger)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, fmt.Sprintf("/posts/%d/", post.ID), w.Header().Get("Location"))

		stored, err := f.posts.GetByID(post.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Original", stored.Title)
	})

	t.Run("missing post", func(t *testing.T) {
		f := setupPostController(t)
		w := f.post("/posts/99/edit/", `{"title": "X", "text": "x"}`, f.author)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("dangling category on an existing post is a bad request", func(t *testing.T) {
		f := setupPostController(t)
		post := f.seed(t)

		w := f.post(fmt.Sprintf("/posts/%d/edit/", post.ID), `{"title": "X", "text": "x", "category": 9}`, f.author)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPostControllerDelete(t *testing.T) {
	t.Run("author deletes and lands on the home feed", func(t *testing.T) {
		f := setupPostController(t)
		post := f.seed(t)

		w := f.post(fmt.Sprintf("/posts/%d/delete/", post.ID), "", f.author)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("superuser may delete", func(t *testing.T) {
		f := setupPostController(t)
		post := f.seed(t)

		w := f.post(fmt.Sprintf("/posts/%d/delete/", post.ID), "", f.admin)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("non-owner is bounced to the detail view", func(t *testing.T) {
		f := setupPostController(t)
		post := f.seed(t)

		w := f.post(fmt.Sprintf("/posts/%d/delete/", post.ID), "", f.stranger)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, fmt.Sprintf("/posts/%d/", post.ID), w.Header().Get("Location"))

		_, err := f.posts.GetByID(post.ID)
		assert.NoError(t, err)
	})

	t.Run("anonymous goes to login", func(t *testing.T) {
		f := setupPostController(t)
		post := f.seed(t)

		w := f.post(fmt.Sprintf("/posts/%d/delete/", post.ID), "", nil)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, middleware.LoginURL, w.Header().Get("Location"))
	})
}
