package memory

import (
	"context" // Context for store operations
	"sort"    // Ordering transaction history
	"sync"    // Mutex protecting the maps
	"time"    // Insert timestamps

	"github.com/omgohel/digital-wallet/internal/domain" // Importing domain models
	"github.com/omgohel/digital-wallet/internal/ledger" // Store port

	"github.com/google/uuid" // UUID identifiers
)

// Store is an in-process, mutex-guarded implementation of the ledger store.
// It backs the test suite and doubles as a dev backend that needs no MySQL.
type Store struct {
	mu           sync.RWMutex
	users        map[uuid.UUID]domain.User          // User rows by ID
	transactions map[uuid.UUID][]domain.Transaction // Append-only history by user ID
}

// NewStore creates an empty in-memory ledger store
func NewStore() *Store {
	return &Store{
		users:        make(map[uuid.UUID]domain.User),
		transactions: make(map[uuid.UUID][]domain.Transaction),
	}
}

// CreateUser persists a new user row
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New() // Generate primary key, mirrors the GORM hook
	}
	s.users[user.ID] = *user
	return nil
}

// GetUser loads a user by ID
func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound // Unknown user
	}
	return &user, nil // Copy, callers never see the stored row
}

// ListUsers returns a page of users plus the total count
func (s *Store) ListUsers(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, u)
	}
	// Stable order for pagination: by name, then ID
	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].ID.String() < all[j].ID.String()
	})
	return page(all, offset, limit), int64(len(all)), nil
}

// ListTransactions returns a page of the user's transactions, newest first
func (s *Store) ListTransactions(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Transaction, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history := s.transactions[userID]
	// Walk the append-only history backwards so equal timestamps still come
	// out newest-appended first, then order by timestamp descending
	ordered := make([]domain.Transaction, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		ordered = append(ordered, history[i])
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.After(ordered[j].Timestamp)
	})
	return page(ordered, offset, limit), int64(len(ordered)), nil
}

// ApplyTransaction runs apply under the store's write lock, so concurrent
// mutators serialize and the balance update lands together with the new
// transaction row or not at all.
func (s *Store) ApplyTransaction(ctx context.Context, userID uuid.UUID, apply ledger.ApplyFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return domain.ErrUserNotFound // Unknown user, nothing written
	}
	txn, err := apply(&user)
	if err != nil {
		return err // No mutation on failure
	}
	txn.Timestamp = time.Now().UTC() // Store sets the insert timestamp
	s.users[userID] = user
	s.transactions[userID] = append(s.transactions[userID], *txn)
	return nil
}

// page slices out one page, clamped to the available range
func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

var _ ledger.Store = (*Store)(nil)
