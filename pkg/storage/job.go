package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend; when
// used through a TxStorage the insert participates in the surrounding
// transaction. The returned bool reports whether a job was actually added
// (false when uniqueness options deduplicated it).
type JobStorage interface {
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
