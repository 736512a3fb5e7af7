package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"

	_ "github.com/cakeshare/cakeshare-api/docs" // Swagger docs (generated)
	"github.com/cakeshare/cakeshare-api/internal/auth"
	"github.com/cakeshare/cakeshare-api/internal/config"
	"github.com/cakeshare/cakeshare-api/internal/database"
	httpServer "github.com/cakeshare/cakeshare-api/internal/http"
	"github.com/cakeshare/cakeshare-api/internal/logging"
	"github.com/cakeshare/cakeshare-api/internal/ratelimit"
	"github.com/cakeshare/cakeshare-api/internal/recipe"
	"github.com/cakeshare/cakeshare-api/internal/upload"
	"github.com/cakeshare/cakeshare-api/internal/user"
)

// @title           CakeShare API
// @version         1.0
// @description     A recipe-sharing REST API: accounts, bearer-token auth, cake recipes by category, image uploads.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	db, err := initDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		return err
	}

	redisClient, err := initRedis(cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize Redis: %w", err)
	}
	defer redisClient.Close()

	// Repositories
	userRepo := user.NewRepository(db)
	recipeRepo := recipe.NewRepository(db)

	// Rate limiter
	rateLimiter := ratelimit.NewLimiter(redisClient)

	// Token service: the signing secret is injected here and nowhere else.
	jwtService, err := auth.NewJWTService(
		cfg.Auth.JWTSecret,
		cfg.Auth.Issuer,
		cfg.Auth.Audience,
		cfg.Auth.TokenDuration,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	// Auth service and access control
	authService := auth.NewService(userRepo, jwtService, logger)
	access := auth.NewAccess(userRepo, cfg.Auth.AdminEmail)

	// HTTP handlers
	authHandler := auth.NewHandler(authService, rateLimiter, logger)
	authMiddleware := auth.NewMiddleware(jwtService, access)
	recipeHandler := recipe.NewHandler(recipeRepo, access, logger)
	uploadHandler := upload.NewHandler(cfg.Upload.Dir, cfg.Upload.BaseURL, cfg.Upload.MaxBytes, logger)
	userHandler := user.NewHandler(userRepo, recipeRepo, logger)

	router := httpServer.NewRouter(cfg, authHandler, authMiddleware, recipeHandler, uploadHandler, userHandler, logger)

	serverAddr := ":" + cfg.Server.Port
	server := httpServer.NewServer(
		serverAddr,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Printf("Received signal: %v", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// initDB initializes the database connection and returns a Bun DB instance
func initDB(cfg config.DatabaseConfig) (*bun.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return database.NewBunDB(sqlDB), nil
}

// initRedis initializes the Redis connection and returns a Redis client
func initRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
