package user

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

// UserHandler 处理与用户相关的HTTP请求
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler 创建一个新的 UserHandler 实例
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{userService}
}

// ListUsers 处理 GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.SerializeUsers(users))
}

// GetUser 处理 GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.SerializeUser(user))
}

// CreateUser 处理 POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		IsActive *bool  `json:"is_active"`
	}

	// 请求体缺失或字段缺失都按同一条校验错误返回
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" || body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}

	user, err := h.userService.CreateUser(body.Email, body.Password, isActive)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	util.Logger.Info("新用户注册", zap.Int("user_id", user.ID))
	c.JSON(http.StatusCreated, model.SerializeUser(user))
}
