package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	v1 "devconnect/api/v1"
	"devconnect/config"
	"devconnect/dao"
	"devconnect/internal/cache"
	"devconnect/internal/github"
	"devconnect/middleware"
	"devconnect/model"
	"devconnect/service"
)

func main() {
	// 初始化配置
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "."
	}
	config.InitConfig(configPath)
	config.InitRedis()

	// 初始化数据库
	db, err := gorm.Open(mysql.Open(config.GlobalConfig.MySQL.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		panic(err)
	}

	// 自动迁移
	if err := db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Experience{},
		&model.Education{},
		&model.Post{},
		&model.Like{},
		&model.Comment{},
	); err != nil {
		panic(err)
	}

	// 初始化 DAO 和 Service
	userDAO := dao.NewUserDAO(db)
	profileDAO := dao.NewProfileDAO(db)
	postDAO := dao.NewPostDAO(db)

	githubClient := github.NewClient(config.GlobalConfig.Github.Token)
	cacheStore := cache.NewStore(config.RedisClient)

	userService := service.NewUserService(userDAO)
	profileService := service.NewProfileService(profileDAO, userDAO)
	postService := service.NewPostService(postDAO, userDAO)
	githubService := service.NewGithubService(githubClient, cacheStore)

	userAPI := v1.NewUserAPI(userService)
	profileAPI := v1.NewProfileAPI(profileService, githubService)
	postAPI := v1.NewPostAPI(postService)

	// 初始化路由
	r := gin.Default()
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "API Running") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middleware.AuthRequired()
	loginLimiter := middleware.LoginRateLimiter(config.RedisClient, 5, time.Minute)

	api := r.Group("/api")
	{
		// 用户与鉴权
		api.POST("/users", userAPI.Register)
		api.PUT("/users/avatar", auth, userAPI.UpdateAvatar)
		api.POST("/auth", loginLimiter, userAPI.Login)
		api.GET("/auth", auth, userAPI.Me)

		// 档案
		api.GET("/profile/me", auth, profileAPI.Me)
		api.POST("/profile", auth, profileAPI.Upsert)
		api.GET("/profile", profileAPI.List)
		api.GET("/profile/user/:user_id", profileAPI.ByUserID)
		api.DELETE("/profile", auth, profileAPI.Delete)
		api.PUT("/profile/experience", auth, profileAPI.AddExperience)
		api.DELETE("/profile/experience/:exp_id", auth, profileAPI.RemoveExperience)
		api.PUT("/profile/education", auth, profileAPI.AddEducation)
		api.DELETE("/profile/education/:edu_id", auth, profileAPI.RemoveEducation)
		api.GET("/profile/github/:username", profileAPI.GithubRepos)

		// 动态
		api.POST("/posts", auth, postAPI.Create)
		api.GET("/posts", auth, postAPI.List)
		api.GET("/posts/:id", auth, postAPI.Get)
		api.DELETE("/posts/:id", auth, postAPI.Delete)
		api.PUT("/posts/like/:id", auth, postAPI.Like)
		api.PUT("/posts/unlike/:id", auth, postAPI.Unlike)
		api.POST("/posts/comment/:id", auth, postAPI.AddComment)
		api.DELETE("/posts/comment/:id/:comment_id", auth, postAPI.DeleteComment)
	}

	// 启动服务; 统一的边界超时
	srv := &http.Server{
		Addr:         config.GlobalConfig.Server.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
