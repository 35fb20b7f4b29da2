package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"github.com/omgohel/digital-wallet/internal/api"        // Custom package for API handlers
	"github.com/omgohel/digital-wallet/internal/config"     // Custom package for configuration
	"github.com/omgohel/digital-wallet/internal/db"         // Custom package for database access
	"github.com/omgohel/digital-wallet/internal/ledger"     // Ledger service
	"github.com/omgohel/digital-wallet/internal/middleware" // Custom package for middleware
	"github.com/omgohel/digital-wallet/internal/store/memory"
	mysqlstore "github.com/omgohel/digital-wallet/internal/store/mysql"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Pick the ledger store backend
	var store ledger.Store
	switch cfg.StoreDriver {
	case "memory":
		store = memory.NewStore() // In-process backend, no MySQL needed
		logrus.Warn("Using in-memory ledger store, data will not survive restarts")
	default:
		// Connect to the database
		conn, err := db.Open(cfg.DSN())
		if err != nil {
			logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
		}
		store = mysqlstore.NewStore(conn)
	}

	// Setup Redis client, optional: caching is disabled without an address
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance
	r.Use(middleware.RequestLogger())

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Wallet ledger routes
	svc := ledger.NewService(store)
	api.RegisterRoutes(r, svc, redisClient)

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
