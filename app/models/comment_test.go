package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommentValidation(t *testing.T) {
	tests := []struct {
		name    string
		comment *Comment
		wantErr bool
	}{
		{
			name: "valid comment",
			comment: &Comment{
				ID:        "c1",
				PostID:    "p1",
				Text:      "Nice post",
				Username:  "bob",
				CreatedAt: time.Now(),
			},
			wantErr: false,
		},
		{
			name: "missing post id",
			comment: &Comment{
				ID:        "c1",
				Text:      "Nice post",
				Username:  "bob",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing text",
			comment: &Comment{
				ID:        "c1",
				PostID:    "p1",
				Username:  "bob",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "text too long",
			comment: &Comment{
				ID:        "c1",
				PostID:    "p1",
				Text:      strings.Repeat("x", 501),
				Username:  "bob",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing username",
			comment: &Comment{
				ID:        "c1",
				PostID:    "p1",
				Text:      "Nice post",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "zero creation time",
			comment: &Comment{
				ID:        "c1",
				PostID:    "p1",
				Text:      "Nice post",
				Username:  "bob",
				CreatedAt: time.Time{},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.comment.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCommentBeforeCreate(t *testing.T) {
	comment := &Comment{
		PostID:   "p1",
		Text:     "Nice post",
		Username: "bob",
	}

	comment.BeforeCreate()

	assert.NotEmpty(t, comment.ID)
	assert.False(t, comment.CreatedAt.IsZero())
}

func TestCommentBeforeCreateKeepsSuppliedID(t *testing.T) {
	comment := &Comment{
		ID:       "resubmitted-id",
		PostID:   "p1",
		Text:     "Nice post",
		Username: "bob",
	}

	comment.BeforeCreate()

	assert.Equal(t, "resubmitted-id", comment.ID)
}

func TestCommentSetPost(t *testing.T) {
	post := &Post{Title: "Test", Description: "Test", Username: "ann"}
	post.BeforeCreate()

	comment := &Comment{Text: "Nice post", Username: "bob"}
	err := comment.SetPost(post)
	assert.NoError(t, err)
	assert.Equal(t, post.ID, comment.PostID)

	err = comment.SetPost(nil)
	assert.Error(t, err)
}
