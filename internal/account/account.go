// Package account implements the account lifecycle: registration, lookup,
// update and deletion. It owns the business rules around username uniqueness
// and the delete-notification hand-off, and delegates persistence to the
// storage layer.
package account

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"accounts/internal/config"
	"accounts/pkg/domain"
	"accounts/pkg/logger"
	"accounts/pkg/serrors"
	"accounts/pkg/storage"
)

// Options configure account business rules that come from application
// configuration rather than the request.
type Options struct {
	// NotifierMaxAttempts is the maximum number of delivery attempts the
	// background worker makes per delete notification.
	NotifierMaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		NotifierMaxAttempts: cfg.Notifier.MaxAttempts,
	}
}

// accounts is the concrete implementation of the Accounts interface.
// It coordinates validation, uniqueness checks, persistence and the
// enqueueing of delete notifications.
type accounts struct {
	options Options
	storage storage.Storage
}

// New creates a new Accounts instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Accounts {
	return &accounts{
		options: options,
		storage: storage,
	}
}

// Register validates the submitted account, rejects usernames that are
// already taken and stores the new account. The stored account, including
// its generated ID, is returned.
func (a accounts) Register(ctx context.Context, account domain.Account) (*domain.Account, error) {
	if err := validateCreate(account); err != nil {
		return nil, err
	}

	existing, err := a.storage.AccountByUsername(ctx, account.Username)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrRepository, err, "could not check username availability")
	}
	if existing != nil {
		return nil, usernameTaken(domain.CodeRegisterUsernameExists, account.Username)
	}

	stored, err := a.storage.StoreAccount(ctx, account)
	if err != nil {
		// the username check above is not atomic with the insert, the unique
		// index on username catches the race.
		if errors.Is(err, storage.ErrUniqueViolation) {
			return nil, usernameTaken(domain.CodeRegisterUsernameExists, account.Username)
		}

		return nil, serrors.Wrap(serrors.ErrRepository, err, "could not store account")
	}

	return stored, nil
}

// ByID fetches a single account. It returns a not-found error when no
// account exists for the given ID.
func (a accounts) ByID(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	res, err := a.storage.AccountByID(ctx, id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrRepository, err, "could not get account")
	}
	if res == nil {
		return nil, accountNotFound(id)
	}

	return res, nil
}

// All returns every stored account. An empty store yields an empty slice,
// not an error.
func (a accounts) All(ctx context.Context) ([]domain.Account, error) {
	res, err := a.storage.Accounts(ctx)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrRepository, err, "could not list accounts")
	}

	return res, nil
}

// Update validates the new state, confirms the account exists, rejects
// usernames held by any other account and persists the change. The updated
// account is returned.
func (a accounts) Update(ctx context.Context, id domain.AccountID, account domain.Account) (*domain.Account, error) {
	if err := validateUpdate(account); err != nil {
		return nil, err
	}

	current, err := a.storage.AccountByID(ctx, id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrRepository, err, "could not get account")
	}
	if current == nil {
		return nil, accountNotFound(id)
	}

	// the account itself keeping its username is not a conflict, so the
	// lookup excludes the account being updated.
	conflicting, err := a.storage.AccountByUsernameExcluding(ctx, account.Username, id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrRepository, err, "could not check username availability")
	}
	if conflicting != nil {
		return nil, usernameTaken(domain.CodeUpdateUsernameExists, account.Username)
	}

	updated, err := a.storage.UpdateAccount(ctx, id, account)
	if err != nil {
		if errors.Is(err, storage.ErrUniqueViolation) {
			return nil, usernameTaken(domain.CodeUpdateUsernameExists, account.Username)
		}

		return nil, serrors.Wrap(serrors.ErrRepository, err, "could not update account")
	}
	if updated == nil {
		// deleted between the existence check and the update
		return nil, accountNotFound(id)
	}

	return updated, nil
}

// Delete removes an account and enqueues a notification about the deletion.
// The notification is fire-and-forget: a failure to enqueue is logged but
// never surfaces to the caller, the deletion has already happened.
func (a accounts) Delete(ctx context.Context, id domain.AccountID) error {
	current, err := a.storage.AccountByID(ctx, id)
	if err != nil {
		return serrors.Wrap(serrors.ErrRepository, err, "could not get account")
	}
	if current == nil {
		return accountNotFound(id)
	}

	if err := a.storage.DeleteAccount(ctx, id); err != nil {
		return serrors.Wrap(serrors.ErrRepository, err, "could not delete account")
	}

	if _, err := a.storage.AddJob(ctx, DeleteNotificationArgs{
		AccountID:   current.ID.String(),
		Username:    current.Username,
		FirstName:   current.FirstName,
		LastName:    current.LastName,
		maxAttempts: a.options.NotifierMaxAttempts,
	}, nil); err != nil {
		logger.Error(ctx, "could not enqueue delete notification",
			zap.String("accountId", id.String()),
			zap.Error(err))
	}

	return nil
}

// usernameTaken builds the conflict error for a username already held by
// another account. The code differs between registration and update.
func usernameTaken(code domain.Code, username string) error {
	return serrors.Coded(serrors.ErrAlreadyExists, code,
		"account with username %q already exists", username)
}

// accountNotFound builds the not-found error for a missing account ID.
func accountNotFound(id domain.AccountID) error {
	return serrors.Coded(serrors.ErrNotFound, domain.CodeAccountNotFound,
		"account %s not found", id)
}
