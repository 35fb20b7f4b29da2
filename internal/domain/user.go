package domain

import (
	"github.com/google/uuid"        // UUID primary keys
	"github.com/shopspring/decimal" // Fixed-point money
	"gorm.io/gorm"                  // GORM ORM library
)

// User Model
type User struct {
	ID      uuid.UUID       `gorm:"type:char(36);primaryKey" json:"id"`         // Primary key, generated on create
	Name    string          `gorm:"not null" json:"name"`                       // Display name, required
	Balance decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"balance"` // Current balance
	// One-to-many relationship with Transactions; never loaded implicitly
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate assigns a fresh UUID when none was set by the caller
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New() // Generate primary key
	}
	return nil
}
