package app

import (
	"fmt"
	"time"

	"jobboard_backend/database"
	"jobboard_backend/internal/cache"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Run boots the service: config, logging, database, cache, mail, router.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("database connection failed", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("database migration failed", "error", err)
	}
	logger.Info("database ready")

	stopCleanup := startTokenCleanup(repositories.NewRefreshTokenRepository(db), time.Hour)
	defer close(stopCleanup)

	provider, err := email.NewSMTPProvider(cfg)
	if err != nil {
		logger.Fatal("smtp provider setup failed", "error", err)
	}
	mailer := email.NewDispatcher(provider)
	defer mailer.Wait()

	router := SetupRouter(cfg, db, mailer)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services, and handlers onto a gin engine.
// Tests call it directly with an sqlite database and a capturing mailer.
func SetupRouter(cfg *config.Config, db *gorm.DB, mailer *email.Dispatcher) *gin.Engine {
	c := newCache(cfg)

	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	locationRepo := repositories.NewLocationRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	authService := services.NewAuthService(userRepo, profileRepo, refreshTokenRepo, mailer)
	profileService := services.NewProfileService(userRepo, profileRepo)
	jobService := services.NewJobService(jobRepo, locationRepo, c)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo, mailer)

	base := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(base, authService)
	profileHandler := handlers.NewProfileHandler(base, profileService)
	jobHandler := handlers.NewJobHandler(base, jobService)
	applicationHandler := handlers.NewApplicationHandler(base, applicationService)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())

	api := router.Group("/api/v1")
	authHandler.RegisterRoutes(api)
	profileHandler.RegisterRoutes(api)
	jobHandler.RegisterRoutes(api)
	applicationHandler.RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// startTokenCleanup purges expired refresh tokens once at boot and then on
// every tick, so abandoned sessions do not accumulate.
func startTokenCleanup(repo repositories.RefreshTokenRepository, interval time.Duration) chan struct{} {
	stop := make(chan struct{})
	clean := func() {
		if err := repo.CleanExpired(); err != nil {
			logger.WithError(err).Warn("refresh token cleanup failed")
		}
	}
	go func() {
		clean()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				clean()
			case <-stop:
				return
			}
		}
	}()
	return stop
}

// newCache prefers redis; without an address it falls back to the in-process
// cache so single-node deployments need no extra service.
func newCache(cfg *config.Config) cache.Cache {
	if cfg.Redis.Addr == "" {
		logger.Warn("redis address not configured, using in-memory cache")
		return cache.NewMemoryCache()
	}
	return cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
}
