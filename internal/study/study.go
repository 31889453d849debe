// Package study manages the records a learner keeps: subjects with their
// topics, tasks, study sessions and focus checks. It validates input, applies
// defaults and maps missing records to semantic not-found errors.
package study

import (
	"studytracker/internal/config"
	"studytracker/pkg/storage"
	"time"
)

const (
	// recentSessionsCount is how many sessions GetSubject includes.
	recentSessionsCount = 10
	defaultSessionLimit = 50
	maxSessionLimit     = 500
	upcomingWindow      = 7 * 24 * time.Hour
)

// Options configure job enqueueing and the clock.
type Options struct {
	// MaxAttempts is the maximum number of attempts of streak jobs.
	MaxAttempts int
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.Worker.MaxAttempts,
		Now:         time.Now,
	}
}

// study is the concrete implementation of the Study interface.
type study struct {
	options Options
	storage storage.Storage
}

// New creates a Study backed by storage.
func New(storage storage.Storage, options Options) Study {
	if options.Now == nil {
		options.Now = time.Now
	}

	return &study{
		options: options,
		storage: storage,
	}
}
