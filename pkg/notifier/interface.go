// Package notifier defines the outbound account-event contract. Delivery is
// best-effort from the caller's point of view: implementations report errors,
// but no account operation depends on a notification succeeding.
package notifier

//go:generate mockgen -package mocknotifier -source=interface.go -destination=mock/mocknotifier.go *

import (
	"context"

	"accounts/pkg/domain"
)

// Notifier publishes account lifecycle events to interested consumers.
type Notifier interface {
	// SendDeleteNotification publishes a deletion event keyed by the account
	// ID, carrying the last known state of the deleted account.
	SendDeleteNotification(ctx context.Context, key string, account domain.Account) error
}
