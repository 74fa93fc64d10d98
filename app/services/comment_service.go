package services

import (
	"context"
	"errors"

	"forum/app/models"
	"forum/app/repositories"
)

// CreateCommentInput carries the caller-supplied fields for a new comment.
// The wire name of the post reference is post_id.
type CreateCommentInput struct {
	PostID   string `json:"post_id"`
	Text     string `json:"text"`
	Username string `json:"username"`
}

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment creates a new comment with validation. The referenced post
// must exist; id and creation time are assigned server-side.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.PostID == "" {
		return nil, validationErrorf("post_id is required")
	}
	if err := validateCommentFields(in.Text, in.Username); err != nil {
		return nil, err
	}

	// Verify post exists
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		return nil, storageError("get post", err)
	}

	comment := &models.Comment{
		PostID:   in.PostID,
		Text:     in.Text,
		Username: in.Username,
	}
	comment.BeforeCreate()

	if err := comment.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, storageError("create comment", err)
	}

	return comment, nil
}

// ListPostComments retrieves all comments for a post, newest first
func (s *CommentService) ListPostComments(ctx context.Context, postID string) ([]*models.Comment, error) {
	// Verify post exists
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		return nil, storageError("get post", err)
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, storageError("list comments", err)
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return comments, nil
}

// validateCommentFields validates a comment's caller-supplied fields
func validateCommentFields(text, username string) error {
	if text == "" {
		return validationErrorf("text is required")
	}
	if len(text) > 500 {
		return validationErrorf("text is too long (maximum 500 characters)")
	}
	if username == "" {
		return validationErrorf("username is required")
	}
	return nil
}
