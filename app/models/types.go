package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Post represents a forum post with its comments.
type Post struct {
	ID          string     `json:"id" validate:"required"`
	Title       string     `json:"title" validate:"required,max=100"`
	Description string     `json:"description" validate:"required,max=2000"`
	Likes       int        `json:"likes" validate:"gte=0"`
	LikedBy     []string   `json:"likedBy" validate:"-"`
	Username    string     `json:"username" validate:"required"`
	CreatedAt   time.Time  `json:"createdAt" validate:"required"`
	Comments    []*Comment `json:"comments" validate:"-"`
}

// Comment represents a comment on a forum post.
type Comment struct {
	ID        string    `json:"id" validate:"required"`
	PostID    string    `json:"postId" validate:"required"`
	Text      string    `json:"text" validate:"required,max=500"`
	Username  string    `json:"username" validate:"required"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}
