package router

import (
	"fmt"
	"strings"

	"github.com/shiptrack-api/internal/cache"
	"github.com/shiptrack-api/internal/config"
	adminhandlers "github.com/shiptrack-api/internal/http/handlers/admin"
	publichandlers "github.com/shiptrack-api/internal/http/handlers/public"
	"github.com/shiptrack-api/internal/logger"
	"github.com/shiptrack-api/internal/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func loggerOrInit(cfg *config.Config) *zap.Logger {
	if logger.L != nil {
		return logger.L
	}
	return logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
}

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := loggerOrInit(cfg)
	r := gin.New()

	// 初始化 Handler（按公开/管理端分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "st"
	}
	redisClient := cache.Client()
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	api := r.Group("/api")
	{
		// 公开接口：无需鉴权
		api.GET("/shipments/track/:container_id", publicHandler.TrackShipment)
		api.POST("/contact", publicHandler.CreateEnquiry)
		api.GET("/captcha/image", publicHandler.GetImageCaptcha)

		// 登录接口（无需鉴权，带限流）
		api.POST("/auth/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), adminHandler.AdminLogin)

		// 管理端接口（需鉴权）
		authorized := api.Group("")
		authorized.Use(JWTAuthMiddleware(cfg.JWT.SecretKey))
		{
			// 货运单管理
			authorized.GET("/shipments", adminHandler.ListShipments)
			authorized.POST("/shipments", adminHandler.CreateShipment)
			authorized.GET("/shipments/:id", adminHandler.GetShipment)
			authorized.PATCH("/shipments/:id/status", adminHandler.UpdateShipmentStatus)
			authorized.PATCH("/shipments/:id/location", adminHandler.UpdateShipmentLocation)

			// 客户咨询管理
			authorized.GET("/contact", adminHandler.ListEnquiries)
			authorized.PATCH("/contact/:id", adminHandler.UpdateEnquiryStatus)

			// 仪表盘与登录日志
			authorized.GET("/admin/dashboard/overview", adminHandler.GetDashboardOverview)
			authorized.GET("/admin/login-logs", adminHandler.ListLoginLogs)
		}
	}

	// 健康检查
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
