package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"github.com/omgohel/digital-wallet/internal/domain" // Importing domain models
	"github.com/omgohel/digital-wallet/internal/ledger" // Ledger service
	"github.com/omgohel/digital-wallet/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/google/uuid"        // UUID identifiers
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Fixed-point money
	"github.com/sirupsen/logrus"    // Logging library
)

// CreateUserRequest represents a wallet initialization request
type CreateUserRequest struct {
	Name    string          `json:"name" binding:"required"` // Display name, required
	Balance decimal.Decimal `json:"balance"`                 // Initial balance, defaults to 0
}

// pagination reads page/page_size query params with the usual bounds
func pagination(c *gin.Context) (page, pageSize int) {
	page = 1      // Default page
	pageSize = 20 // Default page size
	// If page exists in query
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v // Set page if valid
		}
	}
	// If page_size exists in query
	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v // Set page size if valid
		}
	}
	return page, pageSize
}

// CreateUserHandler initializes a wallet for a new user
func CreateUserHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := svc.CreateUser(c.Request.Context(), req.Name, req.Balance)
		if err != nil {
			failWith(c, err)
			return
		}
		// Log successful wallet initialization
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,                  // New user ID
			"name":    user.Name,                // Display name
			"balance": user.Balance.String(),    // Initial balance
		}).Info("User created")
		// Return the created user
		c.JSON(http.StatusCreated, gin.H{"user": user})
	}
}

// GetUserHandler returns a single user's id, name and balance
func GetUserHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id")) // Parse user ID from path
		if err != nil {
			// Malformed identifier, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		ctx := context.Background()          // Context for Redis operations
		cacheKey := utils.UserCacheKey(id.String())
		var cached domain.User
		// Try to get from cache
		if rdb != nil {
			if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
				c.JSON(http.StatusOK, gin.H{"user": cached, "cached": true})
				return
			}
		}
		user, err := svc.GetUser(c.Request.Context(), id)
		if err != nil {
			failWith(c, err)
			return
		}
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, cacheKey, user, utils.CacheTTL) // Cache the user row
		}
		c.JSON(http.StatusOK, gin.H{"user": user, "cached": false}) // Return user info
	}
}

// ListUsersHandler returns all users, paginated
func ListUsersHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := pagination(c)
		offset := (page - 1) * pageSize // Calculate offset
		users, total, err := svc.ListUsers(c.Request.Context(), offset, pageSize)
		if err != nil {
			failWith(c, err)
			return
		}
		// The total number of pages
		totalPages := (int(total) + pageSize - 1) / pageSize
		c.JSON(http.StatusOK, gin.H{
			"users":       users,      // List of users
			"page":        page,       // Current page
			"page_size":   pageSize,   // Page size
			"total":       total,      // Total users
			"total_pages": totalPages, // Total pages
		})
	}
}
