package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"charty-dashboard-backend/internal/cache"
	"charty-dashboard-backend/internal/config"
	"charty-dashboard-backend/internal/logger"
	"charty-dashboard-backend/internal/middleware"
	"charty-dashboard-backend/internal/models"
	"charty-dashboard-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.L.Info("No .env file found, relying on system env")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logger.L.Fatalw("invalid configuration", "error", err)
	}

	appLog, err := logger.NewLogger(cfg.App.Env, cfg.Logging.Level)
	if err != nil {
		logger.L.Fatalw("logger setup failed", "error", err)
	}
	defer func() { _ = appLog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := config.InitDB(ctx, cfg.Postgres, appLog)
	if err != nil {
		appLog.Fatalw("database unavailable", "error", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		appLog.Fatalw("auto migrate failed", "error", err)
	}

	redisClient, err := config.InitRedis(ctx, cfg.Redis)
	if err != nil {
		appLog.Fatalw("redis unavailable", "error", err)
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}
	listingCache := cache.New(redisClient, cfg.Cache.TTL, appLog)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), middleware.Recovery(appLog), middleware.ErrorHandler(appLog))
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, listingCache, cfg, appLog)

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLog.Infow("server listening", "address", cfg.Server.Address, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	appLog.Info("server is shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Errorw("forced shutdown", "error", err)
		os.Exit(1)
	}
}
