// Package postgres implements the repository interfaces on a hosted
// PostgreSQL backend. It is interchangeable with the embedded Badger store.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"forum/app/models"
	"forum/app/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS posts (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	likes INTEGER NOT NULL DEFAULT 0,
	liked_by TEXT[] NOT NULL DEFAULT '{}',
	username TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS comments (
	id TEXT PRIMARY KEY,
	post_id TEXT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	text TEXT NOT NULL,
	username TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_comments_post_id ON comments(post_id);
`

// Connect opens a connection pool to the hosted store and verifies it is
// reachable. The pool is shared by every request for the process lifetime.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// EnsureSchema creates the posts and comments tables if absent. Safe to
// call on every startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

// PostRepository implements repositories.PostRepository on PostgreSQL
type PostRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

// Create creates a new post
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO posts (id, title, description, likes, liked_by, username, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		post.ID, post.Title, post.Description, post.Likes, post.LikedBy, post.Username, post.CreatedAt)
	return err
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var p models.Post
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, description, likes, liked_by, username, created_at
		FROM posts
		WHERE id=$1`, id).
		Scan(&p.ID, &p.Title, &p.Description, &p.Likes, &p.LikedBy, &p.Username, &p.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List retrieves all posts ordered by creation time, newest first
func (r *PostRepository) List(ctx context.Context) ([]*models.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, likes, liked_by, username, created_at
		FROM posts
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Likes, &p.LikedBy, &p.Username, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

// Update updates the mutable fields of an existing post
func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	ct, err := r.pool.Exec(ctx, `
		UPDATE posts SET likes=$2, liked_by=$3 WHERE id=$1`,
		post.ID, post.Likes, post.LikedBy)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Delete deletes a post by ID; the foreign key cascades to its comments
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// CommentRepository implements repositories.CommentRepository on PostgreSQL
type CommentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

// Create creates a new comment
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, post_id, text, username, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		comment.ID, comment.PostID, comment.Text, comment.Username, comment.CreatedAt)
	return err
}

// Exists reports whether a comment with the given ID is already stored
func (r *CommentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM comments WHERE id=$1)`, id).Scan(&exists)
	return exists, err
}

// ListByPost retrieves all comments for a post, newest first
func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, post_id, text, username, created_at
		FROM comments
		WHERE post_id=$1
		ORDER BY created_at DESC`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.Text, &c.Username, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

// DeleteByPost removes every comment attached to the given post
func (r *CommentRepository) DeleteByPost(ctx context.Context, postID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE post_id=$1`, postID)
	return err
}
