package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/bookstore-api/internal/application/service"
	"github.com/sangkips/bookstore-api/internal/config"
	"github.com/sangkips/bookstore-api/internal/domain/analytics"
	"github.com/sangkips/bookstore-api/internal/infrastructure/cache"
	"github.com/sangkips/bookstore-api/internal/infrastructure/database"
	"github.com/sangkips/bookstore-api/internal/infrastructure/repository"
	"github.com/sangkips/bookstore-api/internal/presentation/http/handler"
	"github.com/sangkips/bookstore-api/internal/presentation/http/routes"
	"github.com/sangkips/bookstore-api/pkg/logger"
	"github.com/sangkips/bookstore-api/pkg/utils"
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	ctx := log.WithContext(context.Background())

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := database.AutoMigrate(db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	bookRepo := repository.NewBookRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	if err := database.SeedAdmin(ctx, adminRepo, &cfg.Admin, log); err != nil {
		log.Warn().Err(err).Msg("failed to seed admin account")
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	engine := analytics.NewEngine(cfg.Analytics.Location(), cfg.Analytics.TopN)
	reportCache := cache.NewReportCache(cfg.Analytics.CacheTTL)

	// Services
	authService := service.NewAuthService(adminRepo, jwtManager)
	orderService := service.NewOrderService(orderRepo)
	dashboardService := service.NewDashboardService(orderRepo, bookRepo, engine, reportCache, cfg.Analytics.BestSellerLimit)

	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Order:     handler.NewOrderHandler(orderService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	rateLimiter := routes.NewRateLimiter(&cfg.RateLimit)
	defer rateLimiter.Stop()

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:  jwtManager,
		Cfg:         cfg,
		Logger:      log,
		RateLimiter: rateLimiter,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().
			Str("service", cfg.App.Name).
			Str("port", port).
			Str("env", cfg.App.Env).
			Str("report_timezone", engine.Location().String()).
			Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shut down")
	}
}
