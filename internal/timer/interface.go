package timer

import (
	"context"
)

// Timer drives the single pomodoro timer of the local user.
//
//go:generate mockgen -package mocktimer -source=interface.go -destination=mock/mocktimer.go *
type Timer interface {
	// Status returns a snapshot of the timer.
	Status(ctx context.Context) Status
	// Configure changes the subject, topic and cycle lengths; nil fields are kept.
	Configure(ctx context.Context, settings Settings) (Status, error)
	// Start begins or resumes ticking. The subject must be set.
	Start(ctx context.Context) (Status, error)
	// Pause stops ticking and keeps the elapsed time.
	Pause(ctx context.Context) (Status, error)
	// Stop ends the current cycle, saving it as a study session when a study
	// phase has elapsed time.
	Stop(ctx context.Context) (Status, error)
	// RespondFocus answers the most recent focus check.
	RespondFocus(ctx context.Context, focused bool) (Status, error)
	// Tick advances a running timer by one second.
	Tick(ctx context.Context) error
	// Run ticks until ctx is done.
	Run(ctx context.Context) error
}
