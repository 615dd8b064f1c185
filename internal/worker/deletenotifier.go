package worker

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"accounts/internal/account"
	"accounts/pkg/domain"
	"accounts/pkg/logger"
	"accounts/pkg/notifier"
)

// DeleteNotificationWorker is a River worker that delivers delete
// notifications to downstream consumers. It rebuilds the account snapshot
// from the job arguments, the deleted row no longer exists when the job runs.
// River retries failed deliveries up to the MaxAttempts the job was enqueued
// with, so a temporarily unreachable event backend delays delivery instead of
// losing it.
type DeleteNotificationWorker struct {
	river.WorkerDefaults[account.DeleteNotificationArgs]

	notifier notifier.Notifier
}

// NewDeleteNotificationWorker constructs a DeleteNotificationWorker publishing
// through the provided notifier.
func NewDeleteNotificationWorker(notifier notifier.Notifier) *DeleteNotificationWorker {
	return &DeleteNotificationWorker{
		notifier: notifier,
	}
}

// Work delivers a single delete notification. The event key is the deleted
// account's ID, so consumers can correlate and deduplicate retried deliveries.
func (w *DeleteNotificationWorker) Work(ctx context.Context, job *river.Job[account.DeleteNotificationArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("accountId", job.Args.AccountID))

	id, err := domain.ParseAccountID(job.Args.AccountID)
	if err != nil {
		logger.Error(ctx, "malformed account ID in delete notification job", zap.Error(err))

		// retrying cannot fix a malformed payload
		return river.JobCancel(err) //nolint: wrapcheck
	}

	deleted := domain.Account{
		ID:        id,
		Username:  job.Args.Username,
		FirstName: job.Args.FirstName,
		LastName:  job.Args.LastName,
	}

	if err := w.notifier.SendDeleteNotification(ctx, job.Args.AccountID, deleted); err != nil {
		logger.Error(ctx, "error delivering delete notification", zap.Error(err))

		return fmt.Errorf("could not deliver delete notification: %w", err)
	}

	logger.Info(ctx, "delete notification delivered")

	return nil
}
