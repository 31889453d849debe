package worker

import (
	"context"
	"fmt"
	"studytracker/internal/progress"
	"studytracker/pkg/domain"
	"studytracker/pkg/logger"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// StreakWorker advances a user's study streak after a completed session.
type StreakWorker struct {
	river.WorkerDefaults[progress.StreakJobArgs]

	progress progress.Progress
	timeout  time.Duration
}

// NewStreakWorker constructs a StreakWorker. A zero timeout keeps river's
// default job timeout.
func NewStreakWorker(progress progress.Progress, timeout time.Duration) *StreakWorker {
	return &StreakWorker{
		progress: progress,
		timeout:  timeout,
	}
}

// Timeout overrides river's default job timeout when one is configured.
func (w *StreakWorker) Timeout(job *river.Job[progress.StreakJobArgs]) time.Duration {
	if w.timeout > 0 {
		return w.timeout
	}

	return w.WorkerDefaults.Timeout(job)
}

// Work recalculates the streak. A malformed user ID cancels the job since
// retrying cannot fix it.
func (w *StreakWorker) Work(ctx context.Context, job *river.Job[progress.StreakJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("userID", job.Args.UserID))
	ctx, span := otel.Tracer("studytracker/worker").Start(ctx, job.Args.Kind())
	defer span.End()
	span.SetAttributes(
		attribute.Int64("job.id", job.ID),
		attribute.Int("job.attempt", job.Attempt),
	)

	id, err := uuid.Parse(job.Args.UserID)
	if err != nil {
		logger.Error(ctx, "invalid user id in streak job", zap.Error(err))
		span.SetStatus(codes.Error, "invalid user id")

		return river.JobCancel(fmt.Errorf("invalid user id: %w", err)) //nolint: wrapcheck
	}

	streak, err := w.progress.UpdateStreak(ctx, domain.UserID(id))
	if err != nil {
		logger.Error(ctx, "could not update streak", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "update streak failed")

		return fmt.Errorf("could not update streak: %w", err)
	}

	logger.Info(ctx, "streak updated",
		zap.Int("current", streak.CurrentStreak),
		zap.Int("longest", streak.LongestStreak))

	return nil
}
