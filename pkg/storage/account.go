package storage

import (
	"context"

	"accounts/pkg/domain"
)

// AccountStorage defines CRUD and uniqueness lookups for account records.
// Absence is reported as a nil result with a nil error; a non-nil error
// always means the store itself failed, so callers can tell "not found"
// apart from infrastructure failures.
type AccountStorage interface {
	// StoreAccount inserts a new account and returns the stored row including
	// the store-assigned ID and timestamps. A username collision is reported
	// as an error wrapping ErrUniqueViolation.
	StoreAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	// AccountByID fetches an account by its ID. Returns nil when not found.
	AccountByID(ctx context.Context, id domain.AccountID) (*domain.Account, error)
	// AccountByUsername fetches the account holding the given username.
	// Returns nil when no account holds it.
	AccountByUsername(ctx context.Context, username string) (*domain.Account, error)
	// AccountByUsernameExcluding fetches the account holding the given
	// username, ignoring the account with the excluded ID. Used for
	// update-time uniqueness checks. Returns nil when no other account
	// holds the username.
	AccountByUsernameExcluding(ctx context.Context, username string, excludedID domain.AccountID) (*domain.Account, error)
	// Accounts returns all account records, unordered. May be empty.
	Accounts(ctx context.Context) ([]domain.Account, error)
	// UpdateAccount replaces the username, password, first name and last name
	// of the account with the given ID and returns the post-update row, or
	// nil when the ID does not exist. A username collision is reported as an
	// error wrapping ErrUniqueViolation.
	UpdateAccount(ctx context.Context, id domain.AccountID, account domain.Account) (*domain.Account, error)
	// DeleteAccount removes the account with the given ID. Deleting an absent
	// ID is not an error; pre-existence is checked by the use-case layer.
	DeleteAccount(ctx context.Context, id domain.AccountID) error
}
