package ledger

import (
	"context" // Context for store operations
	"fmt"     // Error wrapping
	"strings" // String trimming

	"github.com/omgohel/digital-wallet/internal/domain" // Importing domain models

	"github.com/google/uuid"        // UUID identifiers
	"github.com/shopspring/decimal" // Fixed-point money
)

// Service implements the balance mutator, the query service and wallet
// initialization on top of a Store
type Service struct {
	store Store // Transactional ledger store
}

// NewService creates a new ledger service
func NewService(store Store) *Service {
	if store == nil {
		panic("store is required")
	}
	return &Service{store: store}
}

// CreateUser initializes a wallet: a fresh user with the given starting
// balance. The only creation path for users.
func (s *Service) CreateUser(ctx context.Context, name string, balance decimal.Decimal) (*domain.User, error) {
	// Validate before touching the store
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrNameRequired
	}
	if balance.IsNegative() {
		return nil, domain.ErrNegativeBalance
	}
	user := &domain.User{
		ID:      uuid.New(), // Fresh identifier
		Name:    name,       // Display name
		Balance: balance,    // Initial balance, zero or positive
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err) // Opaque storage failure
	}
	return user, nil
}

// GetUser returns a single user or domain.ErrUserNotFound
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.store.GetUser(ctx, id)
}

// ListUsers returns a page of users plus the total count
func (s *Service) ListUsers(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	return s.store.ListUsers(ctx, offset, limit)
}

// AddTransaction validates the request, then applies the balance adjustment
// and appends the transaction row in one atomic unit:
//   - Debit with balance < amount fails with domain.ErrInsufficientBalance
//     and mutates nothing
//   - Credit always increases the balance
func (s *Service) AddTransaction(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, kind domain.TransactionKind, description string) (*domain.Transaction, error) {
	// Input validation happens before any store access
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if !kind.Valid() {
		return nil, domain.ErrInvalidKind
	}
	if len(description) > domain.MaxDescriptionLen {
		return nil, domain.ErrDescriptionTooLong
	}

	var created *domain.Transaction // The appended row, for callers to log
	err := s.store.ApplyTransaction(ctx, userID, func(user *domain.User) (*domain.Transaction, error) {
		switch kind {
		case domain.KindDebit:
			// Reject a debit that would overdraw; the unit rolls back
			if user.Balance.LessThan(amount) {
				return nil, domain.ErrInsufficientBalance
			}
			user.Balance = user.Balance.Sub(amount)
		case domain.KindCredit:
			user.Balance = user.Balance.Add(amount)
		}
		// Timestamp is set by the store at insert time
		created = &domain.Transaction{
			ID:          uuid.New(),  // Fresh identifier
			UserID:      user.ID,     // Owning user
			Amount:      amount,      // Stored amount stays positive
			Type:        kind,        // Sign of effect
			Description: description, // Optional free text
		}
		return created, nil
	})
	if err != nil {
		return nil, err // Sentinels pass through, storage faults stay wrapped
	}
	return created, nil
}

// ListUserTransactions returns a page of the user's history, newest first.
// The existence check runs first so an unknown user is a not-found failure
// while a user with no history is a successful empty page.
func (s *Service) ListUserTransactions(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Transaction, int64, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, 0, err
	}
	return s.store.ListTransactions(ctx, userID, offset, limit)
}
