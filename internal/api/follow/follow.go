package follow

import (
	"net/http"
	"strconv"

	"instagram-backend/internal/errors"
	"instagram-backend/internal/model"
	"instagram-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FollowHandler 处理关注关系相关的HTTP请求
type FollowHandler struct {
	followService service.FollowServiceInterface
}

// NewFollowHandler 创建一个新的 FollowHandler 实例
func NewFollowHandler(followService service.FollowServiceInterface) *FollowHandler {
	return &FollowHandler{followService}
}

// Follow 处理 POST /follow
func (h *FollowHandler) Follow(c *gin.Context) {
	var body struct {
		FollowerID *int `json:"follower_id"`
		UserID     *int `json:"user_id"`
	}

	if err := c.ShouldBindJSON(&body); err != nil || body.FollowerID == nil || body.UserID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "follower_id and user_id are required"})
		return
	}

	f, err := h.followService.Follow(*body.FollowerID, *body.UserID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.SerializeFollowership(f))
}

// GetUserFollowers 处理 GET /users/:id/followers
func (h *FollowHandler) GetUserFollowers(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	list, err := h.followService.GetUserFollowers(userID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.SerializeFollowerships(list))
}
