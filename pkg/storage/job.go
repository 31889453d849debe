package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. Inside a transaction the insert is
// part of that transaction and only becomes visible on commit.
type JobStorage interface {
	// AddJob reports false when a unique job with the same arguments already
	// exists and the insert was skipped.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
