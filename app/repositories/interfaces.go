package repositories

import (
	"context"

	"forum/app/models"
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	Exists(ctx context.Context, id string) (bool, error)
	ListByPost(ctx context.Context, postID string) ([]*models.Comment, error)
	DeleteByPost(ctx context.Context, postID string) error
}
