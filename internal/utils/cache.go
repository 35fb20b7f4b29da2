package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"       // Key building
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// CacheTTL is how long read-path entries live before expiring
const CacheTTL = 60 * time.Second

// UserCacheKey builds the cache key for a single user's row
func UserCacheKey(userID string) string {
	return "user:" + userID
}

// TxHistoryCacheKey builds the cache key for one page of a user's history
func TxHistoryCacheKey(userID string, page, pageSize int) string {
	return "txhistory:user:" + userID + ":page:" + strconv.Itoa(page) + ":size:" + strconv.Itoa(pageSize)
}

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// DeleteCache deletes a key from Redis
func DeleteCache(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err() // Delete key from Redis
}

// InvalidateUserCaches drops the user's cached row and the first few pages
// of transaction history after a successful write (simple version: delete
// first 5 pages at the default size)
func InvalidateUserCaches(ctx context.Context, rdb *redis.Client, userID string) {
	if rdb == nil {
		return // Caching disabled
	}
	_ = DeleteCache(ctx, rdb, UserCacheKey(userID)) // Invalidate user cache
	for i := 1; i <= 5; i++ {
		// Delete cached history pages
		_ = DeleteCache(ctx, rdb, TxHistoryCacheKey(userID, i, 20))
	}
}
