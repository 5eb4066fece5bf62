package main

import (
	"fmt"
	"log"

	"github.com/subtrackify/subtrackify/config"
	"github.com/subtrackify/subtrackify/internal/api"
	"github.com/subtrackify/subtrackify/internal/api/handler"
	"github.com/subtrackify/subtrackify/internal/database"
	"github.com/subtrackify/subtrackify/internal/repository"
	"github.com/subtrackify/subtrackify/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化数据库
	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database connected")

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)

	// 初始化 Service
	authService := service.NewAuthService(userRepo, cfg)
	subService := service.NewSubscriptionService(subRepo)
	categoryService := service.NewCategoryService(subRepo)
	profileService := service.NewProfileService(userRepo)

	// 初始化 Handler
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authService)
	subscriptionHandler := handler.NewSubscriptionHandler(subService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	profileHandler := handler.NewProfileHandler(profileService)

	// 初始化 Router
	router := api.NewRouter(
		healthHandler,
		authHandler,
		subscriptionHandler,
		categoryHandler,
		profileHandler,
		cfg,
	)
	engine := router.Setup()

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
