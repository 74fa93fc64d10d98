package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"forum/app/models"
	"forum/app/repositories"
)

// CreatePostInput carries the caller-supplied fields for a new post. Any
// id or timestamp sent by the client is discarded.
type CreatePostInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Username    string `json:"username"`
}

// UpdatePostInput carries a partial post update. Likes and LikedBy are
// pointers so an absent field can be told apart from a zero value: the two
// must be supplied together or not at all.
type UpdatePostInput struct {
	Likes    *int           `json:"likes"`
	LikedBy  *[]string      `json:"likedBy"`
	Comments []CommentEntry `json:"comments"`
}

// CommentEntry is a comment as submitted inside a post update. Clients may
// resubmit a previously accepted comment; its id makes the insert
// idempotent.
type CommentEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

// PostService handles business logic for forum posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// ListPosts retrieves all posts, newest first, each with its comments
// (also newest first). A post without comments carries an empty list.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, storageError("list posts", err)
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	for _, post := range posts {
		comments, err := s.commentRepo.ListByPost(ctx, post.ID)
		if err != nil {
			return nil, storageError(fmt.Sprintf("list comments for post %s", post.ID), err)
		}
		post.Comments = comments
		post.Normalize()
	}

	return posts, nil
}

// GetPost retrieves a post by ID with its comments
func (s *PostService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		return nil, storageError("get post", err)
	}

	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		return nil, storageError("list comments", err)
	}

	post.Comments = comments
	post.Normalize()
	return post, nil
}

// CreatePost creates a new post with validation. The id and creation time
// are assigned server-side; likes start at zero with nobody in likedBy.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validateNewPost(in); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:       in.Title,
		Description: in.Description,
		Username:    in.Username,
		Likes:       0,
		LikedBy:     []string{},
	}
	post.BeforeCreate()

	if err := post.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, storageError("create post", err)
	}

	post.Normalize()
	return post, nil
}

// UpdatePost applies a partial update to an existing post and returns the
// post re-read with its current comments.
//
// likes and likedBy form one atomic unit: a request carrying exactly one of
// them is rejected, so the counter and the user set cannot drift apart.
// Submitted comments are appended idempotently; an id that is already
// stored is silently skipped, and each insert is independent of the others.
func (s *PostService) UpdatePost(ctx context.Context, id string, in UpdatePostInput) (*models.Post, error) {
	if id == "" {
		return nil, validationErrorf("post id is required")
	}
	if (in.Likes == nil) != (in.LikedBy == nil) {
		return nil, validationErrorf("likes and likedBy must be supplied together")
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		return nil, storageError("get post", err)
	}

	if in.Likes != nil {
		if *in.Likes < 0 {
			return nil, validationErrorf("likes cannot be negative")
		}
		post.Likes = *in.Likes
		post.LikedBy = *in.LikedBy
		post.Normalize()

		if err := s.postRepo.Update(ctx, post); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, err
			}
			return nil, storageError("update post", err)
		}
	}

	for _, entry := range in.Comments {
		if err := s.appendComment(ctx, id, entry); err != nil {
			return nil, err
		}
	}

	return s.GetPost(ctx, id)
}

// DeletePost deletes a post and all its comments
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	if err := s.commentRepo.DeleteByPost(ctx, id); err != nil {
		return storageError("delete comments", err)
	}

	err := s.postRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	if err != nil {
		return storageError("delete post", err)
	}
	return nil
}

// appendComment inserts one submitted comment unless its id is already
// stored. A client-supplied createdAt is honored when it parses as RFC 3339;
// otherwise the server assigns the time.
func (s *PostService) appendComment(ctx context.Context, postID string, entry CommentEntry) error {
	if entry.ID != "" {
		exists, err := s.commentRepo.Exists(ctx, entry.ID)
		if err != nil {
			return storageError("check comment", err)
		}
		if exists {
			return nil
		}
	}

	if err := validateCommentFields(entry.Text, entry.Username); err != nil {
		return err
	}

	comment := &models.Comment{
		ID:       entry.ID,
		PostID:   postID,
		Text:     entry.Text,
		Username: entry.Username,
	}
	if t, err := time.Parse(time.RFC3339, entry.CreatedAt); err == nil {
		comment.CreatedAt = t
	}
	comment.BeforeCreate()

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return storageError("create comment", err)
	}
	return nil
}

// validateNewPost validates the fields of a post to be created
func validateNewPost(in CreatePostInput) error {
	if in.Title == "" {
		return validationErrorf("title is required")
	}
	if len(in.Title) > 100 {
		return validationErrorf("title is too long (maximum 100 characters)")
	}
	if in.Description == "" {
		return validationErrorf("description is required")
	}
	if len(in.Description) > 2000 {
		return validationErrorf("description is too long (maximum 2000 characters)")
	}
	if in.Username == "" {
		return validationErrorf("username is required")
	}
	return nil
}
