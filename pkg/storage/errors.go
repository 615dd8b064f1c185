package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrUniqueViolation is returned when a write hits the unique username
	// constraint. It is the store-level backstop for the use-case layer's
	// check-then-act uniqueness sequence.
	ErrUniqueViolation = errors.New("unique constraint violation")
)
