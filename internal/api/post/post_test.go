package post

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"instagram-backend/internal/errors"
	"instagram-backend/internal/model"
	"instagram-backend/internal/service"
	"instagram-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostService 是 PostServiceInterface 的模拟实现
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(userID int) (*model.Post, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) GetPostByID(id int) (*model.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) ListPosts() ([]*model.Post, error) {
	args := m.Called()
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostService) AddMedia(postID int, url string) (*model.Media, error) {
	args := m.Called(postID, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Media), args.Error(1)
}

func (m *MockPostService) GetPostComments(postID int) ([]*model.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockPostService) CreateComment(postID, userID int, commentText string) (*model.Comment, error) {
	args := m.Called(postID, userID, commentText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockPostService) DeleteComment(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// 确保 MockPostService 实现了 PostServiceInterface
var _ service.PostServiceInterface = (*MockPostService)(nil)

func setupRouter(handler *PostHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	util.InitLogger("error")

	router := gin.New()
	router.GET("/posts", handler.ListPosts)
	router.GET("/posts/:id", handler.GetPost)
	router.POST("/posts", handler.CreatePost)
	router.DELETE("/posts/:id", handler.DeletePost)
	router.POST("/media", handler.CreateMedia)
	router.GET("/posts/:id/comments", handler.ListPostComments)
	router.POST("/comments", handler.CreateComment)
	router.DELETE("/comments/:id", handler.DeleteComment)
	return router
}

// TestCreatePost 测试创建帖子
func TestCreatePost(t *testing.T) {
	mockService := new(MockPostService)
	router := setupRouter(NewPostHandler(mockService))

	author := &model.User{ID: 1, Email: "a@x.com", IsActive: true}
	mockService.On("CreatePost", 1).Return(&model.Post{ID: 1, UserID: 1, Author: author}, nil)

	body := []byte(`{"user_id":1}`)
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	// 新帖子的 media 和 comments 必须是空数组而不是 null
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(1), response["id"])
	assert.Equal(t, float64(1), response["user_id"])
	assert.NotNil(t, response["author"])
	assert.Equal(t, []interface{}{}, response["media"])
	assert.Equal(t, []interface{}{}, response["comments"])
	mockService.AssertExpectations(t)
}

// TestCreatePostMissingUserID 测试缺少 user_id
func TestCreatePostMissingUserID(t *testing.T) {
	mockService := new(MockPostService)
	router := setupRouter(NewPostHandler(mockService))

	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"user_id is required"}`, w.Body.String())
	mockService.AssertNotCalled(t, "CreatePost")
}

// TestCreatePostUserNotFound 测试 user_id 指向不存在的用户
func TestCreatePostUserNotFound(t *testing.T) {
	mockService := new(MockPostService)
	router := setupRouter(NewPostHandler(mockService))

	mockService.On("CreatePost", 99).
		Return(nil, errors.New(errors.ErrUserNotFound, "User not found"))

	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(`{"user_id":99}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
}

// TestDeletePost 测试删除帖子
func TestDeletePost(t *testing.T) {
	mockService := new(MockPostService)
	router := setupRouter(NewPostHandler(mockService))

	mockService.On("DeletePost", 1).Return(nil)
	mockService.On("DeletePost", 99).
		Return(errors.New(errors.ErrPostNotFound, "Post not found"))

	req, _ := http.NewRequest("DELETE", "/posts/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Post deleted successfully"}`, w.Body.String())

	req, _ = http.NewRequest("DELETE", "/posts/99", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

// TestCreateMedia 测试给帖子附加媒体
func TestCreateMedia(t *testing.T) {
	mockService := new(MockPostService)
	router := setupRouter(NewPostHandler(mockService))

	mockService.On("AddMedia", 1, "https://img.example.com/1.jpg").
		Return(&model.Media{ID: 1, PostID: 1, URL: "https://img.example.com/1.jpg"}, nil)

	body := []byte(`{"post_id":1,"url":"https://img.example.com/1.jpg"}`)
	req, _ := http.NewRequest("POST", "/media", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1,"post_id":1,"url":"https://img.example.com/1.jpg"}`, w.Body.String())

	// 缺少字段
	req, _ = http.NewRequest("POST", "/media", bytes.NewBufferString(`{"post_id":1}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"post_id and url are required"}`, w.Body.String())
}

// TestListPostComments 测试获取帖子评论
func TestListPostComments(t *testing.T) {
	mockService := new(MockPostService)
	router := setupRouter(NewPostHandler(mockService))

	// 没有评论的帖子返回空数组，而不是错误
	mockService.On("GetPostComments", 1).Return([]*model.Comment{}, nil)
	mockService.On("GetPostComments", 99).
		Return(nil, errors.New(errors.ErrPostNotFound, "Post not found"))

	req, _ := http.NewRequest("GET", "/posts/1/comments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	req, _ = http.NewRequest("GET", "/posts/99/comments", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Post not found"}`, w.Body.String())
}

// TestCreateComment 测试创建评论
func TestCreateComment(t *testing.T) {
	mockService := new(MockPostService)
	router := setupRouter(NewPostHandler(mockService))

	author := &model.User{ID: 2, Email: "b@x.com", IsActive: true}
	mockService.On("CreateComment", 1, 2, "nice").
		Return(&model.Comment{ID: 1, CommentText: "nice", PostID: 1, UserID: 2, Author: author}, nil)

	body := []byte(`{"post_id":1,"user_id":2,"comment_text":"nice"}`)
	req, _ := http.NewRequest("POST", "/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "nice", response["comment_text"])
	assert.NotNil(t, response["author"])

	// 缺少任一字段都返回同一条校验错误
	for _, body := range []string{`{}`, `{"post_id":1}`, `{"post_id":1,"user_id":2}`} {
		req, _ := http.NewRequest("POST", "/comments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"post_id, user_id, and comment_text are required"}`, w.Body.String())
	}
}

// TestDeleteComment 测试删除评论
func TestDeleteComment(t *testing.T) {
	mockService := new(MockPostService)
	router := setupRouter(NewPostHandler(mockService))

	mockService.On("DeleteComment", 1).Return(nil)
	mockService.On("DeleteComment", 99).
		Return(errors.New(errors.ErrCommentNotFound, "Comment not found"))

	req, _ := http.NewRequest("DELETE", "/comments/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Comment deleted successfully"}`, w.Body.String())

	req, _ = http.NewRequest("DELETE", "/comments/99", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Comment not found"}`, w.Body.String())
}

// TestGetPost 测试按ID获取帖子
func TestGetPost(t *testing.T) {
	mockService := new(MockPostService)
	router := setupRouter(NewPostHandler(mockService))

	post := &model.Post{
		ID:     1,
		UserID: 1,
		Author: &model.User{ID: 1, Email: "a@x.com", IsActive: true},
		Media:  []*model.Media{{ID: 1, PostID: 1, URL: "https://img.example.com/1.jpg"}},
	}
	mockService.On("GetPostByID", 1).Return(post, nil)
	mockService.On("GetPostByID", 99).
		Return(nil, errors.New(errors.ErrPostNotFound, "Post not found"))

	req, _ := http.NewRequest("GET", "/posts/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response["media"], 1)
	assert.Equal(t, []interface{}{}, response["comments"])

	req, _ = http.NewRequest("GET", "/posts/99", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
