package domain

import (
	"time" // Timestamps

	"github.com/google/uuid"        // UUID primary keys
	"github.com/shopspring/decimal" // Fixed-point money
	"gorm.io/gorm"                  // GORM ORM library
)

// TransactionKind is the closed set of ledger entry kinds.
// The sign of effect lives here, never in the stored amount.
type TransactionKind string

const (
	KindCredit TransactionKind = "Credit" // Increases the balance
	KindDebit  TransactionKind = "Debit"  // Decreases the balance
)

// Valid reports whether the kind is one of the two known variants
func (k TransactionKind) Valid() bool {
	return k == KindCredit || k == KindDebit
}

// MaxDescriptionLen bounds the free-text description on a transaction
const MaxDescriptionLen = 500

// Transaction Model (append-only: rows are never updated or deleted)
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:char(36);primaryKey" json:"id"`         // Primary key, generated on create
	UserID      uuid.UUID       `gorm:"type:char(36);index;not null" json:"userId"` // Foreign key to the owning User
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`  // Strictly positive amount
	Type        TransactionKind `gorm:"type:varchar(10);not null" json:"type"`      // Credit or Debit
	Description string          `gorm:"size:500" json:"description"`                // Optional, bounded free text
	Timestamp   time.Time       `gorm:"autoCreateTime;index" json:"timestamp"`      // Set by the store at insert time
}

// BeforeCreate assigns a fresh UUID when none was set by the caller
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New() // Generate primary key
	}
	return nil
}
