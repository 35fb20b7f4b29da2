package domain

import "errors"

var (
	// ErrUserNotFound the referenced user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInsufficientBalance a debit would drive the balance negative
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount the amount is not strictly positive
	ErrInvalidAmount = errors.New("amount must be greater than 0")

	// ErrInvalidKind the transaction type is outside {Credit, Debit}
	ErrInvalidKind = errors.New("type must be either 'Credit' or 'Debit'")

	// ErrDescriptionTooLong the description exceeds the 500 character bound
	ErrDescriptionTooLong = errors.New("description cannot exceed 500 characters")

	// ErrNameRequired the user name is empty
	ErrNameRequired = errors.New("name is required")

	// ErrNegativeBalance the initial balance is negative
	ErrNegativeBalance = errors.New("initial balance cannot be negative")
)
