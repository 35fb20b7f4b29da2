package api

import (
	"github.com/omgohel/digital-wallet/internal/ledger" // Ledger service

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// RegisterRoutes mounts the wallet API under /api. rdb may be nil, in which
// case the read-path cache is disabled.
func RegisterRoutes(r *gin.Engine, svc *ledger.Service, rdb *redis.Client) {
	apiGroup := r.Group("/api")
	// User routes
	apiGroup.POST("/users", CreateUserHandler(svc))         // Wallet initialization endpoint
	apiGroup.GET("/users", ListUsersHandler(svc))           // List users endpoint
	apiGroup.GET("/users/:id", GetUserHandler(svc, rdb))    // Get user endpoint
	// Transaction routes
	apiGroup.POST("/transactions", AddTransactionHandler(svc, rdb))               // Add transaction endpoint
	apiGroup.GET("/transactions/user/:id", ListUserTransactionsHandler(svc, rdb)) // Transaction history endpoint
}
