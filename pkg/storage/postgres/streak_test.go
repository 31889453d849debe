package postgres_test

import (
	"context"
	"studytracker/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Streaks(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	userID := newUserID()

	got, err := pg.StreakByUser(ctx, userID)
	require.NoError(t, err)
	require.Nil(t, got)

	created, err := pg.UpsertStreak(ctx, domain.Streak{UserID: userID})
	require.NoError(t, err)
	require.Zero(t, created.CurrentStreak)
	require.Nil(t, created.LastStudyDate)

	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	updated, err := pg.UpsertStreak(ctx, domain.Streak{
		UserID:        userID,
		CurrentStreak: 3,
		LongestStreak: 5,
		LastStudyDate: &day,
	})
	require.NoError(t, err)
	require.Equal(t, 3, updated.CurrentStreak)
	require.Equal(t, 5, updated.LongestStreak)
	require.True(t, day.Equal(*updated.LastStudyDate))
	require.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	got, err = pg.StreakByUser(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 3, got.CurrentStreak)
}
