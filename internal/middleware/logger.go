package middleware

import (
	"time" // Request latency

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RequestLogger emits one structured log entry per handled request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now() // Request start time
		c.Next()            // Run the handler chain
		// Log method, path, status and latency
		logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,          // HTTP method
			"path":    c.Request.URL.Path,        // Request path
			"status":  c.Writer.Status(),         // Response status code
			"latency": time.Since(start).String(), // Handler latency
		}).Info("Request handled")
	}
}
