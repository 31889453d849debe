// Package worker runs the river job client and registers the background
// workers of the study tracker.
package worker

import (
	"context"
	"fmt"
	"studytracker/internal/config"
	"studytracker/internal/progress"
	"studytracker/pkg/logger"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the river client.
type Options struct {
	// Concurrency is the number of jobs processed in parallel.
	Concurrency int
	// JobTimeout bounds a single job; zero keeps river's default.
	JobTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Concurrency: cfg.Worker.Concurrency,
		JobTimeout:  cfg.Worker.JobTimeout,
	}
}

// Start registers the workers and starts a river client on dbPool. The caller
// stops it with Stop on shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	options Options,
	progress progress.Progress) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewStreakWorker(progress, options.JobTimeout))

	concurrency := options.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: concurrency},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
