package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"

	"github.com/sutt/travel-gateway/internal/auth"
	"github.com/sutt/travel-gateway/internal/cache"
	"github.com/sutt/travel-gateway/internal/config"
	"github.com/sutt/travel-gateway/internal/database"
	"github.com/sutt/travel-gateway/internal/forecast"
	httpServer "github.com/sutt/travel-gateway/internal/http"
	"github.com/sutt/travel-gateway/internal/itinerary"
	"github.com/sutt/travel-gateway/internal/logging"
	"github.com/sutt/travel-gateway/internal/place"
	"github.com/sutt/travel-gateway/internal/ratelimit"
	"github.com/sutt/travel-gateway/internal/user"
	"github.com/sutt/travel-gateway/internal/vision"
)

// @title           Travel Gateway API
// @version         1.0
// @description     API gateway for the Smart Urban Travel Tool: authentication, itinerary recommendations, visitor-flow forecasts, and camera alert intake.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	db, err := initDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	// Initialize Redis connection
	redisClient, err := initRedis(cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize Redis: %w", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := user.NewRepository(db)
	placeRepo := place.NewRepository(db)
	itineraryRepo := itinerary.NewRepository(db)
	alertRepo := vision.NewRepository(db)

	// Initialize token service
	tokenService, err := newTokenService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	// Initialize rate limiter for auth endpoints
	authLimiter := ratelimit.NewLimiter(
		redisClient,
		"ratelimit:auth:",
		cfg.RateLimit.AuthLimit,
		cfg.RateLimit.AuthWindow,
	)

	// Initialize services
	authService := auth.NewService(userRepo, tokenService, logger, cfg.Auth.TokenTTL)
	itineraryService := itinerary.NewService(placeRepo, itineraryRepo)
	forecastCache := cache.New(redisClient, "forecast:", 10*time.Minute)
	forecastService := forecast.NewService(placeRepo, forecastCache, logger)

	// Initialize HTTP handlers
	authHandler := auth.NewHandler(authService, authLimiter, logger)
	authMiddleware := auth.NewMiddleware(tokenService, userRepo)
	itineraryHandler := itinerary.NewHandler(itineraryService)
	forecastHandler := forecast.NewHandler(forecastService)
	visionHandler := vision.NewHandler(alertRepo)

	// Initialize router
	router := httpServer.NewRouter(
		cfg,
		authHandler,
		authMiddleware,
		itineraryHandler,
		forecastHandler,
		visionHandler,
		logger,
	)

	// Initialize HTTP server
	serverAddr := ":" + cfg.Server.Port
	server := httpServer.NewServer(
		serverAddr,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Printf("Received signal: %v", sig)

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// newTokenService builds the configured token backend. Both implementations
// share the auth.TokenService interface.
func newTokenService(cfg config.AuthConfig) (auth.TokenService, error) {
	switch cfg.Backend {
	case "paseto":
		// PASETO v4.local requires exactly 32 key bytes
		return auth.NewPasetoService(cfg.TokenSecret[:32])
	default:
		return auth.NewJWTService(cfg.TokenSecret), nil
	}
}

// initDB initializes the database connection and returns a Bun DB instance
func initDB(cfg config.DatabaseConfig) (*bun.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify connection
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Set connection pool settings
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

	// Verify connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
