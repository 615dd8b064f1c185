package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountID uniquely identifies an account.
// It wraps uuid.UUID to provide type safety at the domain layer.
type AccountID uuid.UUID

// String returns the canonical textual form of the identifier.
func (id AccountID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the identifier has not been assigned yet.
func (id AccountID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// ParseAccountID parses the textual form of an account identifier.
func ParseAccountID(s string) (AccountID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return AccountID{}, err //nolint: wrapcheck
	}

	return AccountID(u), nil
}

// Account represents a single account record. Accounts are treated as
// immutable values: an update produces a new value carrying the old ID
// rather than mutating shared state. The ID is assigned by the store on
// creation and never changes afterwards.
type Account struct {
	// ID is the unique identifier of the account, assigned by the store.
	ID AccountID `json:"id"`

	// Username must be unique across the whole account population.
	Username string `json:"username"`
	// Password is stored as an opaque string; hashing and authentication
	// are out of scope for this service.
	Password string `json:"-"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// CreatedAt is the time the account was first stored.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the account fields were last replaced.
	UpdatedAt time.Time `json:"updatedAt"`
}

// WithID returns a copy of the account carrying the given identifier.
// It is used to express a full-field update as a new value.
func (a Account) WithID(id AccountID) Account {
	a.ID = id

	return a
}
