package admin

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"instagram-backend/internal/errors"
	"instagram-backend/internal/model"
	"instagram-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AdminHandler 提供对六个实体的通用表格式CRUD，挂载在独立的 /admin 路由组下
type AdminHandler struct {
	adminService  service.AdminServiceInterface
	userService   service.UserServiceInterface
	postService   service.PostServiceInterface
	followService service.FollowServiceInterface
}

// NewAdminHandler 创建一个新的 AdminHandler 实例
func NewAdminHandler(
	adminService service.AdminServiceInterface,
	userService service.UserServiceInterface,
	postService service.PostServiceInterface,
	followService service.FollowServiceInterface,
) *AdminHandler {
	return &AdminHandler{
		adminService:  adminService,
		userService:   userService,
		postService:   postService,
		followService: followService,
	}
}

// resource 描述一个实体在管理面板中的操作集合
// 实体集是封闭的，用注册表驱动路由而不是反射
type resource struct {
	name   string
	list   func() (interface{}, error)
	fetch  gin.HandlerFunc
	create gin.HandlerFunc
	remove gin.HandlerFunc
}

// Register 将全部实体的管理路由挂载到路由组
func (h *AdminHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/stats", h.GetStats)

	for _, res := range h.resources() {
		res := res
		rg.GET("/"+res.name, func(c *gin.Context) {
			data, err := res.list()
			if err != nil {
				errors.HandleError(c, err)
				return
			}
			c.JSON(http.StatusOK, data)
		})
		if res.fetch != nil {
			rg.GET("/"+res.name+"/:id", res.fetch)
		}
		if res.create != nil {
			rg.POST("/"+res.name, res.create)
		}
		if res.remove != nil {
			rg.DELETE("/"+res.name+"/:id", res.remove)
		}
	}

	// 关注关系用联合主键，删除走请求体而不是路径参数
	rg.DELETE("/followerships", h.deleteFollowership)
}

// GetStats 返回每个实体的行数统计
func (h *AdminHandler) GetStats(c *gin.Context) {
	counts, err := h.adminService.Stats()
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *AdminHandler) resources() []resource {
	return []resource{
		{
			name: "users",
			list: func() (interface{}, error) {
				users, err := h.adminService.ListUsers()
				return model.SerializeUsers(users), err
			},
			fetch: h.fetchByID(func(id int) (interface{}, error) {
				user, err := h.adminService.GetUser(id)
				if err != nil {
					return nil, err
				}
				return model.SerializeUser(user), nil
			}, "user"),
			create: h.createUser,
			remove: h.deleteByID(h.adminService.DeleteUser, "user"),
		},
		{
			name: "posts",
			list: func() (interface{}, error) {
				posts, err := h.adminService.ListPosts()
				return model.SerializePosts(posts), err
			},
			fetch: h.fetchByID(func(id int) (interface{}, error) {
				post, err := h.adminService.GetPost(id)
				if err != nil {
					return nil, err
				}
				return model.SerializePost(post), nil
			}, "post"),
			create: h.createPost,
			remove: h.deleteByID(h.adminService.DeletePost, "post"),
		},
		{
			name: "media",
			list: func() (interface{}, error) {
				media, err := h.adminService.ListMedia()
				return model.SerializeMediaList(media), err
			},
			fetch: h.fetchByID(func(id int) (interface{}, error) {
				media, err := h.adminService.GetMedia(id)
				if err != nil {
					return nil, err
				}
				return model.SerializeMedia(media), nil
			}, "media"),
			create: h.createMedia,
			remove: h.deleteByID(h.adminService.DeleteMedia, "media"),
		},
		{
			name: "comments",
			list: func() (interface{}, error) {
				comments, err := h.adminService.ListComments()
				return model.SerializeComments(comments), err
			},
			fetch: h.fetchByID(func(id int) (interface{}, error) {
				comment, err := h.adminService.GetComment(id)
				if err != nil {
					return nil, err
				}
				return model.SerializeComment(comment), nil
			}, "comment"),
			create: h.createComment,
			remove: h.deleteByID(h.adminService.DeleteComment, "comment"),
		},
		{
			name: "followers",
			list: func() (interface{}, error) {
				followers, err := h.adminService.ListFollowers()
				return model.SerializeFollowers(followers), err
			},
			fetch: h.fetchByID(func(id int) (interface{}, error) {
				follower, err := h.adminService.GetFollower(id)
				if err != nil {
					return nil, err
				}
				return model.SerializeFollower(follower), nil
			}, "follower"),
			create: h.createFollower,
			remove: h.deleteByID(h.adminService.DeleteFollower, "follower"),
		},
		{
			name: "followerships",
			list: func() (interface{}, error) {
				list, err := h.adminService.ListFollowerships()
				return model.SerializeFollowerships(list), err
			},
			create: h.createFollowership,
		},
	}
}

// fetchByID 生成按代理主键获取单个实体的处理函数
func (h *AdminHandler) fetchByID(get func(int) (interface{}, error), entity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + entity + " ID"})
			return
		}
		data, err := get(id)
		if err != nil {
			errors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, data)
	}
}

// deleteByID 生成按代理主键删除的处理函数
func (h *AdminHandler) deleteByID(remove func(int) error, entity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + entity + " ID"})
			return
		}
		if err := remove(id); err != nil {
			errors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
	}
}

func (h *AdminHandler) createUser(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		IsActive *bool  `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
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
	c.JSON(http.StatusCreated, model.SerializeUser(user))
}

func (h *AdminHandler) createPost(c *gin.Context) {
	var body struct {
		UserID *int `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	post, err := h.postService.CreatePost(*body.UserID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.SerializePost(post))
}

func (h *AdminHandler) createMedia(c *gin.Context) {
	var body struct {
		PostID *int   `json:"post_id" binding:"required"`
		URL    string `json:"url" binding:"required,media_url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		// 区分缺字段和URL格式错误，便于定位是哪项校验失败
		c.JSON(http.StatusBadRequest, gin.H{"error": mediaBindingMessage(err)})
		return
	}

	media, err := h.postService.AddMedia(*body.PostID, body.URL)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.SerializeMedia(media))
}

// mediaBindingMessage 把媒体创建的绑定错误翻译成可定位的提示
func mediaBindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "media_url" {
				return "url must be a valid http or https URL"
			}
		}
	}
	return "post_id and url are required"
}

func (h *AdminHandler) createComment(c *gin.Context) {
	var body struct {
		PostID      *int   `json:"post_id" binding:"required"`
		UserID      *int   `json:"user_id" binding:"required"`
		CommentText string `json:"comment_text" binding:"required,max=300"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
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

func (h *AdminHandler) createFollower(c *gin.Context) {
	follower, err := h.adminService.CreateFollower()
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.SerializeFollower(follower))
}

func (h *AdminHandler) createFollowership(c *gin.Context) {
	var body struct {
		FollowerID *int `json:"follower_id" binding:"required"`
		UserID     *int `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
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

func (h *AdminHandler) deleteFollowership(c *gin.Context) {
	var body struct {
		FollowerID *int `json:"follower_id" binding:"required"`
		UserID     *int `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "follower_id and user_id are required"})
		return
	}

	if err := h.adminService.DeleteFollowership(*body.FollowerID, *body.UserID); err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}
