package mysql

import (
	"context" // Context for DB operations
	"errors"  // Sentinel error checks
	"fmt"     // Error wrapping

	"github.com/omgohel/digital-wallet/internal/domain" // Importing domain models
	"github.com/omgohel/digital-wallet/internal/ledger" // Store port

	"github.com/google/uuid" // UUID identifiers
	"gorm.io/gorm"           // GORM ORM library
	"gorm.io/gorm/clause"    // Row locking clause
)

// Store is the GORM/MySQL implementation of the ledger store
type Store struct {
	db *gorm.DB // Shared GORM handle
}

// NewStore wraps an open GORM handle
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CreateUser persists a new user row
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUser loads a user by ID
func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	// Query user by primary key
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound // Unknown user
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &user, nil
}

// ListUsers returns a page of users plus the total count
func (s *Store) ListUsers(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	var total int64
	// Count total users for pagination
	if err := s.db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	var users []domain.User
	// Fetch paginated users
	if err := s.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("select users: %w", err)
	}
	return users, total, nil
}

// ListTransactions returns a page of the user's transactions, newest first
func (s *Store) ListTransactions(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Transaction, int64, error) {
	var total int64
	// Count total transactions for pagination
	if err := s.db.WithContext(ctx).Model(&domain.Transaction{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}
	txs := make([]domain.Transaction, 0)
	// Fetch paginated transactions, most recent first
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp desc").
		Offset(offset).
		Limit(limit).
		Find(&txs).Error; err != nil {
		return nil, 0, fmt.Errorf("select transactions: %w", err)
	}
	return txs, total, nil
}

// ApplyTransaction runs apply inside one DB transaction with the user row
// locked (SELECT ... FOR UPDATE), so concurrent mutators for the same user
// serialize and never read a stale balance. The balance update and the
// transaction insert commit together or not at all.
func (s *Store) ApplyTransaction(ctx context.Context, userID uuid.UUID, apply ledger.ApplyFunc) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user domain.User
		// Lock the user row for the duration of the unit
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound // Unknown user, nothing written
			}
			return fmt.Errorf("select user for update: %w", err)
		}
		txn, err := apply(&user)
		if err != nil {
			return err // Rollback, e.g. insufficient balance
		}
		// Persist the adjusted balance
		if err := tx.Model(&domain.User{}).
			Where("id = ?", user.ID).
			Update("balance", user.Balance).Error; err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		// Append the transaction record
		if err := tx.Create(txn).Error; err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}
		return nil // Commit both writes
	})
}

var _ ledger.Store = (*Store)(nil)
