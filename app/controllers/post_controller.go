package controllers

import (
	"encoding/json"
	"net/http"

	"forum/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for forum posts
type PostController struct {
	postService   *services.PostService
	exposeDetails bool
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, exposeDetails bool) *PostController {
	return &PostController{
		postService:   postService,
		exposeDetails: exposeDetails,
	}
}

// Index handles listing all posts with their comments
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts(r.Context())
	if err != nil {
		sendError(w, err, "Error fetching posts", pc.exposeDetails)
		return
	}

	sendJSON(w, http.StatusOK, posts)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendBadRequest(w, "Invalid JSON")
		return
	}

	post, err := pc.postService.CreatePost(r.Context(), in)
	if err != nil {
		sendError(w, err, "Error creating post", pc.exposeDetails)
		return
	}

	sendJSON(w, http.StatusCreated, post)
}

// Update handles a partial update of an existing post: likes/likedBy and
// idempotent comment resubmission
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var in services.UpdatePostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendBadRequest(w, "Invalid JSON")
		return
	}

	post, err := pc.postService.UpdatePost(r.Context(), id, in)
	if err != nil {
		sendError(w, err, "Error updating post", pc.exposeDetails)
		return
	}

	sendJSON(w, http.StatusOK, post)
}
