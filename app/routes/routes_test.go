package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"forum/app/controllers"
	"forum/app/models"
	"forum/app/repositories/mock"
	"forum/app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T) http.Handler {
	t.Helper()

	postRepo := mock.NewPostRepository()
	commentRepo := mock.NewCommentRepository()
	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	return SetupRoutes(
		controllers.NewPostController(postService, true),
		controllers.NewCommentController(commentService, true),
	)
}

func TestHealthEndpoint(t *testing.T) {
	handler := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestForumAPIScenario(t *testing.T) {
	handler := setupTestServer(t)

	// Create a post
	req := httptest.NewRequest(http.MethodPost, "/api/posts",
		strings.NewReader(`{"title":"Hi","description":"World","username":"ann"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, 0, created.Likes)
	assert.Equal(t, []string{}, created.LikedBy)

	// The post shows up in the listing with an empty comments array
	req = httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"comments":[]`)

	var posts []*models.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, created.ID, posts[0].ID)

	// Comment on it
	req = httptest.NewRequest(http.MethodPost, "/api/comments",
		strings.NewReader(`{"post_id":"`+created.ID+`","text":"First!","username":"bob"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	// Like it
	req = httptest.NewRequest(http.MethodPatch, "/api/posts/"+created.ID,
		strings.NewReader(`{"likes":1,"likedBy":["bob"]}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 1, updated.Likes)
	assert.Equal(t, []string{"bob"}, updated.LikedBy)
	require.Len(t, updated.Comments, 1)
	assert.Equal(t, "First!", updated.Comments[0].Text)
}

func TestCORSHeaders(t *testing.T) {
	handler := setupTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/posts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
