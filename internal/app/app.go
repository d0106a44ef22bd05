package app

import (
	"context"
	"log"
	"mindmate_backend/internal/config"
	"mindmate_backend/internal/controller"
	"mindmate_backend/internal/repository"
	"mindmate_backend/internal/service"
	"mindmate_backend/internal/util"
	"mindmate_backend/pkg/configwatcher"
	"mindmate_backend/pkg/database"
	"mindmate_backend/pkg/logger"
	"mindmate_backend/pkg/monitoring"
	"mindmate_backend/pkg/security"
	"mindmate_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user       *repository.UserRepository
	stats      *repository.StatsRepository
	checkin    *repository.CheckinRepository
	engagement *repository.EngagementRepository
	message    *repository.MessageRepository
	motivation *repository.MotivationRepository
}

type services struct {
	storage    *service.StorageService
	mail       *service.MailService
	auth       *service.AuthService
	coach      *service.CoachService
	chat       *service.ChatService
	checkin    *service.CheckinService
	engagement *service.EngagementService
	motivation *service.MotivationService
	user       *service.UserService
	dashboard  *service.DashboardService
}

type controllers struct {
	auth       *controller.AuthController
	chat       *controller.ChatController
	checkin    *controller.CheckinController
	engagement *controller.EngagementController
	user       *controller.UserController
	motivation *controller.MotivationController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		stats:      repository.NewStatsRepository(db),
		checkin:    repository.NewCheckinRepository(db),
		engagement: repository.NewEngagementRepository(db),
		message:    repository.NewMessageRepository(db),
		motivation: repository.NewMotivationRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.mail = service.NewMailService(cfg.SMTP)
	s.auth = service.NewAuthService(repos.user, repos.stats, s.mail, rdb, cfg)
	s.coach = service.NewCoachService(cfg.AI)
	s.chat = service.NewChatService(s.coach, repos.message, rdb)
	s.checkin = service.NewCheckinService(repos.stats, repos.checkin, db, cfg.Checkin.RewardCoins)
	s.engagement = service.NewEngagementService(repos.engagement, db)
	s.motivation = service.NewMotivationService(repos.motivation)
	s.user = service.NewUserService(repos.user, repos.stats, s.storage)
	s.dashboard = service.NewDashboardService(s.user, s.checkin, s.engagement, s.motivation)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		chat:       controller.NewChatController(s.chat),
		checkin:    controller.NewCheckinController(s.checkin),
		engagement: controller.NewEngagementController(s.engagement),
		user:       controller.NewUserController(s.user, s.dashboard),
		motivation: controller.NewMotivationController(s.motivation),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startConfigWatcher 监听配置文件变化，当前只有 AI 上游参数支持热更新
func (a *App) startConfigWatcher(s *services) {
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		s.coach.UpdateConfig(newCfg.AI)
		logger.Log.Info("Config reloaded", zap.String("ai_model", newCfg.AI.Model))
	})
}

func NewApp(cfg *config.Config) *App {
	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("mindmate-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startConfigWatcher(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
