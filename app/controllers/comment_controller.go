package controllers

import (
	"encoding/json"
	"net/http"

	"forum/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
	exposeDetails  bool
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService, exposeDetails bool) *CommentController {
	return &CommentController{
		commentService: commentService,
		exposeDetails:  exposeDetails,
	}
}

// Create handles creating a new comment on an existing post
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendBadRequest(w, "Invalid JSON")
		return
	}

	comment, err := cc.commentService.CreateComment(r.Context(), in)
	if err != nil {
		sendError(w, err, "Error creating comment", cc.exposeDetails)
		return
	}

	sendJSON(w, http.StatusCreated, comment)
}
