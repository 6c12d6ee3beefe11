package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/vikascc28/gossip-camp-backend/internal/api"
	"github.com/vikascc28/gossip-camp-backend/internal/cache"
	"github.com/vikascc28/gossip-camp-backend/internal/config"
	"github.com/vikascc28/gossip-camp-backend/internal/db"
	"github.com/vikascc28/gossip-camp-backend/internal/observ"
	"github.com/vikascc28/gossip-camp-backend/internal/repository/postgres"
	"github.com/vikascc28/gossip-camp-backend/internal/storage"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := observ.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	// Startup has no request deadline; Background() is the right root here.
	database, err := db.New(context.Background(), cfg.DatabaseURL, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(context.Background()); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("parse redis url: %w", err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}

	uploader, err := storage.NewDiskUploader(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		return fmt.Errorf("create uploader: %w", err)
	}

	pool := database.Pool()
	userRepo := postgres.NewUserStore(pool)
	profileRepo := postgres.NewProfileStore(pool)
	followRepo := postgres.NewFollowStore(pool)
	roomRepo := postgres.NewRoomStore(pool)
	membershipRepo := postgres.NewMembershipStore(pool)

	roomLists := cache.NewRoomLists(redisClient, logger)

	authHandler := api.NewAuthHandler(userRepo, profileRepo, roomRepo, membershipRepo, cfg.JWTSecret, logger)
	profileHandler := api.NewProfileHandler(profileRepo, followRepo, logger)
	roomHandler := api.NewRoomHandler(roomRepo, membershipRepo, profileRepo, uploader, roomLists, logger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := gin.New()
	srv.Use(gin.Logger(), gin.Recovery())

	api.RegisterRoutes(srv, cfg.JWTSecret, cfg.UploadDir, authHandler, profileHandler, roomHandler)

	logger.Info("starting gossip-camp backend",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.Env),
	)

	return srv.Run(":" + cfg.Port)
}
