package progress

import (
	"context"
	"studytracker/pkg/domain"
)

//go:generate mockgen -package mockprogress -source=interface.go -destination=mock/mockprogress.go *
type Progress interface {
	TodayStats(ctx context.Context, userID domain.UserID) (*domain.TodayStats, error)
	CalculateStreak(ctx context.Context, userID domain.UserID) (int, error)
	Analytics(ctx context.Context, userID domain.UserID, rng string) (*domain.Analytics, error)
	Progress(ctx context.Context, userID domain.UserID) (*domain.Progress, error)
	UpdateStreak(ctx context.Context, userID domain.UserID) (*domain.Streak, error)
}
