package routes

import (
	"net/http"

	"forum/app/controllers"
	"forum/app/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// SetupRoutes wires the controllers into the API router and wraps it with
// the middleware chain and CORS.
func SetupRoutes(postController *controllers.PostController, commentController *controllers.CommentController) http.Handler {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Posts API endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id}", postController.Update).Methods("PATCH")

	// Comments API endpoints
	api.HandleFunc("/comments", commentController.Create).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	return c.Handler(router)
}
