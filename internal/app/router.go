package app

import (
	"mindmate_backend/internal/config"
	"mindmate_backend/internal/middleware"
	"mindmate_backend/internal/model"
	"mindmate_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerUserRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/magic-link", c.auth.RequestMagicLink)
		public.GET("/auth/verify", c.auth.VerifyMagicLink)
		public.GET("/motivation", c.motivation.GetCurrentMotivation)
	}
}

func (a *App) registerUserRoutes(group *gin.RouterGroup, c *controllers) {
	// 教练对话
	group.POST("/chat", c.chat.Chat)
	group.GET("/chat/history", c.chat.History)

	// 签到与统计
	group.POST("/checkin", c.checkin.DailyCheckin)
	group.GET("/me", c.checkin.Me)

	// 激励账本
	group.POST("/session/open", c.engagement.OpenSession)
	group.POST("/mood", c.engagement.SetMood)
	group.PUT("/journal", c.engagement.SaveJournal)
	group.GET("/journal", c.engagement.GetJournal)
	group.GET("/challenges", c.engagement.GetChallenges)
	group.POST("/challenges/:index/toggle", c.engagement.ToggleChallenge)

	// 用户档案与首页
	group.GET("/profile", c.user.GetProfile)
	group.PUT("/profile", c.user.UpdateProfile)
	group.POST("/profile/avatar", c.user.UploadAvatar)
	group.GET("/dashboard", c.user.Dashboard)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.GET("/motivations", c.motivation.GetAllMotivations)
		admin.POST("/motivations", c.motivation.CreateMotivation)
		admin.PUT("/motivations/:id", c.motivation.UpdateMotivation)
		admin.DELETE("/motivations/:id", c.motivation.DeleteMotivation)
		admin.POST("/motivations/:id/switch", c.motivation.SwitchMotivation)
	}
}
