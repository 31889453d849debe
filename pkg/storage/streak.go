package storage

import (
	"context"
	"studytracker/pkg/domain"
)

// StreakStorage persists one streak row per user.
type StreakStorage interface {
	// StreakByUser returns nil when the user has no streak yet.
	StreakByUser(ctx context.Context, userID domain.UserID) (*domain.Streak, error)
	// UpsertStreak inserts or replaces the counters of the user's streak and
	// returns the stored row.
	UpsertStreak(ctx context.Context, streak domain.Streak) (*domain.Streak, error)
}
