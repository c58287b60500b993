package routes

import (
	"net/http"

	"blogview/app/auth"
	"blogview/app/controllers"
	"blogview/app/middleware"
	"blogview/app/repositories"
	"blogview/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes wires repositories, services and controllers over the
// given Badger DB and returns the application router.
func SetupRoutes(db *badger.DB, sessionSecret []byte) *mux.Router {
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	categoryRepo := repositories.NewBadgerCategoryRepository(db)
	locationRepo := repositories.NewBadgerLocationRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)

	feedService := services.NewFeedService(postRepo, commentRepo, categoryRepo, userRepo)
	postService := services.NewPostService(postRepo, commentRepo, categoryRepo, locationRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)
	userService := services.NewUserService(userRepo)
	catalogService := services.NewCatalogService(categoryRepo, locationRepo)
	authService := auth.NewService(userRepo)
	sessionStore := auth.NewSessionStore(sessionSecret)

	feedController := controllers.NewFeedController(feedService)
	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)
	profileController := controllers.NewProfileController(userService)
	authController := controllers.NewAuthController(authService, sessionStore)
	catalogController := controllers.NewCatalogController(catalogService)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)
	router.Use(middleware.CurrentUser(sessionStore, userRepo))

	// Listings
	router.HandleFunc("/", feedController.Home).Methods("GET")
	router.HandleFunc("/category/{slug}/", feedController.Category).Methods("GET")
	router.HandleFunc("/profile/{username}/", feedController.Profile).Methods("GET")

	// Posts
	posts := router.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("/create/", postController.Create).Methods("POST")
	posts.HandleFunc("/{post_id:[0-9]+}/", feedController.Detail).Methods("GET")
	posts.HandleFunc("/{post_id:[0-9]+}/edit/", postController.Edit).Methods("POST", "PUT")
	posts.HandleFunc("/{post_id:[0-9]+}/delete/", postController.Delete).Methods("POST", "DELETE")

	// Comments
	posts.HandleFunc("/{post_id:[0-9]+}/comment/", commentController.Create).Methods("POST")
	posts.HandleFunc("/{post_id:[0-9]+}/comment/{comment_id:[0-9]+}/edit/", commentController.Edit).Methods("POST", "PUT")
	posts.HandleFunc("/{post_id:[0-9]+}/delete_comment/{comment_id:[0-9]+}/", commentController.Delete).Methods("POST", "DELETE")

	// Profile editing
	router.Handle("/edit-profile/", middleware.RequireLogin(
		http.HandlerFunc(profileController.Edit))).Methods("POST", "PUT")

	// Identity
	authRouter := router.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/signup/", authController.Signup).Methods("POST")
	authRouter.HandleFunc("/login/", authController.Login).Methods("POST")
	authRouter.HandleFunc("/logout/", authController.Logout).Methods("POST")

	// Catalog management (categories and locations)
	catalog := router.PathPrefix("/catalog").Subrouter()
	catalog.HandleFunc("/categories/", catalogController.ListCategories).Methods("GET")
	catalog.HandleFunc("/categories/", catalogController.CreateCategory).Methods("POST")
	catalog.HandleFunc("/categories/{category_id:[0-9]+}/", catalogController.UpdateCategory).Methods("POST", "PUT")
	catalog.HandleFunc("/locations/", catalogController.ListLocations).Methods("GET")
	catalog.HandleFunc("/locations/", catalogController.CreateLocation).Methods("POST")
	catalog.HandleFunc("/locations/{location_id:[0-9]+}/", catalogController.UpdateLocation).Methods("POST", "PUT")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
