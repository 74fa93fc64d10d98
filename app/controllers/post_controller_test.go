package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"forum/app/models"
	"forum/app/repositories/mock"
	"forum/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) (*mux.Router, *services.PostService) {
	t.Helper()

	postRepo := mock.NewPostRepository()
	commentRepo := mock.NewCommentRepository()
	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	pc := NewPostController(postService, true)
	cc := NewCommentController(commentService, true)

	router := mux.NewRouter()
	router.HandleFunc("/api/posts", pc.Index).Methods("GET")
	router.HandleFunc("/api/posts", pc.Create).Methods("POST")
	router.HandleFunc("/api/posts/{id}", pc.Update).Methods("PATCH")
	router.HandleFunc("/api/comments", cc.Create).Methods("POST")

	return router, postService
}

func doJSON(t *testing.T, router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPostControllerCreate(t *testing.T) {
	router, _ := setupTestRouter(t)

	t.Run("create post", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/posts",
			`{"title":"Hi","description":"World","username":"ann"}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.ID)
		assert.False(t, response.CreatedAt.IsZero())
		assert.Equal(t, "Hi", response.Title)
		assert.Equal(t, "World", response.Description)
		assert.Equal(t, "ann", response.Username)
		assert.Equal(t, 0, response.Likes)
		assert.Equal(t, []string{}, response.LikedBy)
		assert.Equal(t, []*models.Comment{}, response.Comments)
	})

	t.Run("missing field", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/posts",
			`{"description":"World","username":"ann"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "title is required", response["error"])
	})

	t.Run("invalid JSON", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/posts", `{not json`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPostControllerIndex(t *testing.T) {
	router, service := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/posts", "")
	assert.Equal(t, http.StatusOK, w.Code)

	post, err := service.CreatePost(httptest.NewRequest("GET", "/", nil).Context(),
		services.CreatePostInput{Title: "Hi", Description: "World", Username: "ann"})
	require.NoError(t, err)

	w = doJSON(t, router, http.MethodGet, "/api/posts", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var posts []*models.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, post.ID, posts[0].ID)
	assert.Equal(t, []*models.Comment{}, posts[0].Comments)
	assert.Equal(t, []string{}, posts[0].LikedBy)
}

func TestPostControllerUpdate(t *testing.T) {
	router, service := setupTestRouter(t)

	post, err := service.CreatePost(httptest.NewRequest("GET", "/", nil).Context(),
		services.CreatePostInput{Title: "Hi", Description: "World", Username: "ann"})
	require.NoError(t, err)

	t.Run("update likes", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPatch, "/api/posts/"+post.ID,
			`{"likes":1,"likedBy":["bob"]}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var response models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 1, response.Likes)
		assert.Equal(t, []string{"bob"}, response.LikedBy)
	})

	t.Run("likes without likedBy", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPatch, "/api/posts/"+post.ID, `{"likes":2}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("append comments idempotently", func(t *testing.T) {
		body := `{"comments":[{"id":"c-1","text":"nice","username":"bob"}]}`

		w := doJSON(t, router, http.MethodPatch, "/api/posts/"+post.ID, body)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodPatch, "/api/posts/"+post.ID, body)
		assert.Equal(t, http.StatusOK, w.Code)

		var response models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Comments, 1)
		assert.Equal(t, "c-1", response.Comments[0].ID)
	})

	t.Run("missing post", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPatch, "/api/posts/nope",
			`{"likes":1,"likedBy":["bob"]}`)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "post not found", response["error"])
	})
}
