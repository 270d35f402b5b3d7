package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"instagram-backend/config"
	"instagram-backend/internal/api/admin"
	"instagram-backend/internal/api/follow"
	"instagram-backend/internal/api/post"
	"instagram-backend/internal/api/user"
	"instagram-backend/internal/middleware"
	"instagram-backend/internal/repository/mysql"
	"instagram-backend/internal/service"
	"instagram-backend/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			util.Logger.Error("程序发生严重错误", zap.Any("error", r))
		}
	}()

	// 初始化配置
	config.Init()

	// 初始化日志
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	util.Logger.Info("应用程序启动")

	// 连接数据库
	db, err := sql.Open("mysql", config.DSN())
	if err != nil {
		util.Logger.Fatal("连接数据库失败", zap.Error(err))
	}
	defer db.Close()

	// 测试数据库连接
	if err = db.Ping(); err != nil {
		util.Logger.Fatal("数据库连接测试失败", zap.Error(err))
	}
	util.Logger.Info("数据库连接成功")

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	// 注册自定义验证器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("media_url", util.ValidateMediaURL)
	}

	// 初始化存储库、服务和处理器
	userRepo := mysql.NewUserRepository(db)
	postRepo := mysql.NewPostRepository(db)
	followerRepo := mysql.NewFollowerRepository(db)

	hasher := util.NewPasswordHasher(config.AppConfig.PasswordHashing)

	userService := service.NewUserService(userRepo, hasher)
	postService := service.NewPostService(postRepo, userRepo)
	followService := service.NewFollowService(followerRepo, userRepo)
	adminService := service.NewAdminService(userRepo, postRepo, followerRepo)

	userHandler := user.NewUserHandler(userService)
	postHandler := post.NewPostHandler(postService)
	followHandler := follow.NewFollowHandler(followService)
	adminHandler := admin.NewAdminHandler(adminService, userService, postService, followService)

	// 初始化错误监控
	errorMonitor := middleware.NewErrorMonitor()

	// 设置 Gin 路由
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.ErrorMonitorMiddleware(errorMonitor))

	// 配置 CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.AppConfig.FrontendURL}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	r.Use(cors.New(corsConfig))

	// 站点地图：列出全部已注册的路由
	r.GET("/", func(c *gin.Context) {
		var endpoints []gin.H
		for _, route := range r.Routes() {
			endpoints = append(endpoints, gin.H{
				"method": route.Method,
				"path":   route.Path,
			})
		}
		c.JSON(http.StatusOK, gin.H{"endpoints": endpoints})
	})

	// 用户相关路由
	r.GET("/users", userHandler.ListUsers)
	r.GET("/users/:id", userHandler.GetUser)
	r.POST("/users", userHandler.CreateUser)

	// 帖子相关路由
	r.GET("/posts", postHandler.ListPosts)
	r.GET("/posts/:id", postHandler.GetPost)
	r.POST("/posts", postHandler.CreatePost)
	r.DELETE("/posts/:id", postHandler.DeletePost)

	// 媒体相关路由
	r.POST("/media", postHandler.CreateMedia)

	// 评论相关路由
	r.GET("/posts/:id/comments", postHandler.ListPostComments)
	r.POST("/comments", postHandler.CreateComment)
	r.DELETE("/comments/:id", postHandler.DeleteComment)

	// 关注相关路由
	r.GET("/users/:id/followers", followHandler.GetUserFollowers)
	r.POST("/follow", followHandler.Follow)

	// 管理面板路由组，对六个实体提供通用CRUD
	adminRoutes := r.Group("/admin")
	adminHandler.Register(adminRoutes)

	// 创建一个带有超时的 http.Server
	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: r,
	}

	// 在一个新的 goroutine 中启动服务器
	go func() {
		util.Logger.Info("服务器正在启动", zap.String("port", config.AppConfig.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			util.Logger.Fatal("启动服务器失败", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅地关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	util.Logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		util.Logger.Fatal("服务器强制关闭", zap.Error(err))
	}

	util.Logger.Info("服务器已优雅关闭")
}
