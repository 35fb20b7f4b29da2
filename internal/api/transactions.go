package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Timestamps for logging

	"github.com/omgohel/digital-wallet/internal/domain" // Importing domain models
	"github.com/omgohel/digital-wallet/internal/ledger" // Ledger service
	"github.com/omgohel/digital-wallet/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/google/uuid"        // UUID identifiers
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Fixed-point money
	"github.com/sirupsen/logrus"    // Logging library
)

// AddTransactionRequest represents a balance adjustment request
type AddTransactionRequest struct {
	UserID      string          `json:"userId" binding:"required"` // Owning user ID
	Amount      decimal.Decimal `json:"amount"`                    // Strictly positive amount
	Type        string          `json:"type" binding:"required"`   // Credit or Debit
	Description string          `json:"description"`               // Optional, max 500 chars
}

// AddTransactionHandler applies a Credit or Debit to a user's balance and
// appends the transaction record in one atomic unit
func AddTransactionHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddTransactionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		userID, err := uuid.Parse(req.UserID) // Parse the owning user ID
		if err != nil {
			// Malformed identifier, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		txn, err := svc.AddTransaction(c.Request.Context(), userID, req.Amount, domain.TransactionKind(req.Type), req.Description)
		if err != nil {
			// Log the failure with context
			logrus.WithFields(logrus.Fields{
				"user_id": req.UserID,          // Target user ID
				"amount":  req.Amount.String(), // Requested amount
				"type":    req.Type,            // Transaction type
				"error":   err.Error(),         // Error message
			}).Warn("Transaction rejected")
			failWith(c, err)
			return
		}
		// Log the applied transaction
		logrus.WithFields(logrus.Fields{
			"transaction_id": txn.ID,                          // New transaction ID
			"user_id":        txn.UserID,                      // Owning user ID
			"amount":         txn.Amount.String(),             // Applied amount
			"type":           txn.Type,                        // Transaction type
			"timestamp":      time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Transaction added")
		// Invalidate the user's cached row and history pages
		utils.InvalidateUserCaches(context.Background(), rdb, req.UserID)
		// Acknowledge, the presentation layer reconciles to the store
		c.JSON(http.StatusOK, gin.H{"message": "Transaction added successfully"})
	}
}

// ListUserTransactionsHandler returns a user's transaction history,
// most recent first, paginated
func ListUserTransactionsHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := uuid.Parse(c.Param("id")) // Parse user ID from path
		if err != nil {
			// Malformed identifier, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		page, pageSize := pagination(c)
		offset := (page - 1) * pageSize // Calculate offset
		ctx := context.Background()     // Context for Redis operations
		cacheKey := utils.TxHistoryCacheKey(userID.String(), page, pageSize)
		var cached struct {
			Transactions []domain.Transaction `json:"transactions"` // List of transactions
			Page         int                  `json:"page"`         // Current page
			PageSize     int                  `json:"page_size"`    // Page size
			Total        int64                `json:"total"`        // Total transactions
			TotalPages   int                  `json:"total_pages"`  // Total pages
		}
		// Try to get from cache
		if rdb != nil {
			if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
				c.JSON(http.StatusOK, gin.H{
					"transactions": cached.Transactions, // Cached transactions
					"page":         cached.Page,         // Current page
					"page_size":    cached.PageSize,     // Page size
					"total":        cached.Total,        // Total transactions
					"total_pages":  cached.TotalPages,   // Total pages
					"cached":       true,
				})
				return
			}
		}
		txs, total, err := svc.ListUserTransactions(c.Request.Context(), userID, offset, pageSize)
		if err != nil {
			failWith(c, err)
			return
		}
		// Calculate total pages
		totalPages := (int(total) + pageSize - 1) / pageSize
		resp := gin.H{
			"transactions": txs,        // List of transactions, newest first
			"page":         page,       // Current page
			"page_size":    pageSize,   // Page size
			"total":        total,      // Total transactions
			"total_pages":  totalPages, // Total pages
			"cached":       false,      // Not from cache
		}
		if rdb != nil {
			// Cache the result for 60 seconds
			_ = utils.SetCache(ctx, rdb, cacheKey, resp, utils.CacheTTL)
		}
		c.JSON(http.StatusOK, resp) // Return transaction history
	}
}
