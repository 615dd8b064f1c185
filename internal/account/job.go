package account

import (
	"github.com/riverqueue/river"
)

// DeleteNotificationArgs contains the arguments for a delete-notification job
// submitted to River. The job carries the last known state of the deleted
// account so the worker can build the event without reading the row back
// (it no longer exists by the time the job runs).
type DeleteNotificationArgs struct {
	// AccountID identifies the deleted account and keys the published event.
	AccountID string `json:"accountId"`
	// Username of the account at deletion time.
	Username string `json:"username"`
	// FirstName of the account at deletion time.
	FirstName string `json:"firstName"`
	// LastName of the account at deletion time.
	LastName string `json:"lastName"`

	// maxAttempts configures the maximum number of times River should retry
	// delivery before discarding the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the
// delete-notification worker.
func (args DeleteNotificationArgs) Kind() string { return "DeleteAccountNotification" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args DeleteNotificationArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
}
