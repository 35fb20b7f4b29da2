package api

import (
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes

	"github.com/omgohel/digital-wallet/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// failWith maps a service error onto the wire: validation failures and
// rejected debits are 400, unknown users are 404, everything else is an
// opaque storage failure
func failWith(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, domain.ErrInsufficientBalance):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance"})
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidKind),
		errors.Is(err, domain.ErrDescriptionTooLong),
		errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrNegativeBalance):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		// Store-level failure, surfaced without interpretation
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage error"})
	}
}
