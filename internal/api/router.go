package api

import (
	"github.com/gin-gonic/gin"

	"github.com/subtrackify/subtrackify/config"
	"github.com/subtrackify/subtrackify/internal/api/handler"
	"github.com/subtrackify/subtrackify/internal/api/middleware"
	"github.com/subtrackify/subtrackify/internal/model/dto"
)

type Router struct {
	healthHandler       *handler.HealthHandler
	authHandler         *handler.AuthHandler
	subscriptionHandler *handler.SubscriptionHandler
	categoryHandler     *handler.CategoryHandler
	profileHandler      *handler.ProfileHandler
	cfg                 *config.Config
}

func NewRouter(
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	categoryHandler *handler.CategoryHandler,
	profileHandler *handler.ProfileHandler,
	cfg *config.Config,
) *Router {
	return &Router{
		healthHandler:       healthHandler,
		authHandler:         authHandler,
		subscriptionHandler: subscriptionHandler,
		categoryHandler:     categoryHandler,
		profileHandler:      profileHandler,
		cfg:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	dto.RegisterValidators()

	engine := gin.New()
	engine.Use(gin.Logger())
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	engine.GET("/", r.healthHandler.Welcome)
	engine.GET("/health", r.healthHandler.Check)

	api := engine.Group("/api")
	{
		// 公开接口 - 认证
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
		}

		// 需要认证的接口
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(r.cfg.JWT.Secret))
		{
			authenticated.GET("/auth/me", r.authHandler.Me)

			// 订阅
			subscriptions := authenticated.Group("/subscriptions")
			{
				subscriptions.GET("", r.subscriptionHandler.List)
				subscriptions.POST("", r.subscriptionHandler.Create)
				subscriptions.GET("/:id", r.subscriptionHandler.Get)
				subscriptions.PUT("/:id", r.subscriptionHandler.Update)
				subscriptions.DELETE("/:id", r.subscriptionHandler.Delete)
			}

			// 分类
			authenticated.GET("/categories", r.categoryHandler.List)

			// 个人资料
			profile := authenticated.Group("/profile")
			{
				profile.GET("", r.profileHandler.Get)
				profile.PUT("", r.profileHandler.Update)
				profile.POST("/change-password", r.profileHandler.ChangePassword)
				profile.DELETE("", r.profileHandler.Delete)
			}
		}
	}

	return engine
}
