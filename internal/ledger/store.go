package ledger

import (
	"context" // Context for store operations

	"github.com/omgohel/digital-wallet/internal/domain" // Importing domain models

	"github.com/google/uuid" // UUID identifiers
)

// ApplyFunc mutates the loaded user's balance and returns the transaction
// row to append. Returning an error aborts the unit with no mutation.
type ApplyFunc func(user *domain.User) (*domain.Transaction, error)

// Store is the transactional port the ledger service talks to.
// Adapters live in internal/store (mysql, memory).
type Store interface {
	// CreateUser persists a new user row
	CreateUser(ctx context.Context, user *domain.User) error
	// GetUser loads a user by ID, domain.ErrUserNotFound when absent
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// ListUsers returns a page of users plus the total count
	ListUsers(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
	// ListTransactions returns a page of the user's transactions, newest
	// first by timestamp, plus the total count
	ListTransactions(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Transaction, int64, error)
	// ApplyTransaction runs apply with the user row held under per-user
	// mutual exclusion and persists the balance update together with the
	// returned transaction row as a single all-or-nothing unit
	ApplyTransaction(ctx context.Context, userID uuid.UUID, apply ApplyFunc) error
}
