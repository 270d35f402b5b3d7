package post

import (
	"net/http"
	"strconv"

	"instagram-backend/internal/errors"
	"instagram-backend/internal/model"
	"instagram-backend/internal/service"
	"instagram-backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PostHandler 处理帖子、媒体和评论相关的HTTP请求
type PostHandler struct {
	postService service.PostServiceInterface
}

// NewPostHandler 创建一个新的 PostHandler 实例
func NewPostHandler(postService service.PostServiceInterface) *PostHandler {
	return &PostHandler{postService}
}

// ListPosts 处理 GET /posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts()
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.SerializePosts(posts))
}

// GetPost 处理 GET /posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	post, err := h.postService.GetPostByID(id)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.SerializePost(post))
}

// CreatePost 处理 POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var body struct {
		UserID *int `json:"user_id"`
	}

	if err := c.ShouldBindJSON(&body); err != nil || body.UserID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	post, err := h.postService.CreatePost(*body.UserID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	util.Logger.Info("帖子已发布", zap.Int("post_id", post.ID), zap.Int("user_id", post.UserID))
	c.JSON(http.StatusCreated, model.SerializePost(post))
}

// DeletePost 处理 DELETE /posts/:id，媒体和评论级联删除
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	if err := h.postService.DeletePost(id); err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// CreateMedia 处理 POST /media
func (h *PostHandler) CreateMedia(c *gin.Context) {
	var body struct {
		PostID *int   `json:"post_id"`
		URL    string `json:"url"`
	}

	if err := c.ShouldBindJSON(&body); err != nil || body.PostID == nil || body.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "post_id and url are required"})
		return
	}

	media, err := h.postService.AddMedia(*body.PostID, body.URL)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.SerializeMedia(media))
}

// ListPostComments 处理 GET /posts/:id/comments
func (h *PostHandler) ListPostComments(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	comments, err := h.postService.GetPostComments(postID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	// 没有评论时返回空数组而不是错误
	c.JSON(http.StatusOK, model.SerializeComments(comments))
}

// CreateComment 处理 POST /comments
func (h *PostHandler) CreateComment(c *gin.Context) {
	var body struct {
		PostID      *int   `json:"post_id"`
		UserID      *int   `json:"user_id"`
		CommentText string `json:"comment_text"`
	}

	if err := c.ShouldBindJSON(&body); err != nil || body.PostID == nil || body.UserID == nil || body.CommentText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "post_id, user_id, and comment_text are required"})
		return
	}

	comment, err := h.postService.CreateComment(*body.PostID, *body.UserID, body.CommentText)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.SerializeComment(comment))
}

// DeleteComment 处理 DELETE /comments/:id
func (h *PostHandler) DeleteComment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	if err := h.postService.DeleteComment(id); err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
