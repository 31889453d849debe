package postgres_test

import (
	"context"
	"studytracker/pkg/domain"
	"studytracker/pkg/storage"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Sessions(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	userID := newUserID()
	now := time.Now().UTC().Truncate(time.Second)

	duration := 1500
	end := now.Add(-35 * time.Minute)
	first, err := pg.StoreSession(ctx, domain.StudySession{
		UserID:       userID,
		Subject:      "Math",
		Topic:        "Limits",
		StartTime:    now.Add(-time.Hour),
		EndTime:      &end,
		Duration:     &duration,
		StudyMinutes: 25,
		BreakMinutes: 5,
		Completed:    true,
	})
	require.NoError(t, err)
	require.True(t, first.Completed)
	require.Equal(t, 1500, first.Seconds())
	require.Equal(t, "Limits", first.Topic)

	second, err := pg.StoreSession(ctx, domain.StudySession{
		UserID:       userID,
		Subject:      "Art",
		StartTime:    now.Add(-10 * time.Minute),
		StudyMinutes: 50,
		BreakMinutes: 10,
	})
	require.NoError(t, err)
	require.Nil(t, second.EndTime)
	require.Nil(t, second.Duration)

	t.Run("listing and filters", func(t *testing.T) {
		sessions, err := pg.UserSessions(ctx, userID, storage.SessionFilter{})
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		require.Equal(t, second.ID, sessions[0].ID)

		sessions, err = pg.UserSessions(ctx, userID, storage.SessionFilter{CompletedOnly: true})
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		require.Equal(t, first.ID, sessions[0].ID)

		sessions, err = pg.UserSessions(ctx, userID, storage.SessionFilter{From: now.Add(-20 * time.Minute), To: now})
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		require.Equal(t, second.ID, sessions[0].ID)

		sessions, err = pg.UserSessions(ctx, userID, storage.SessionFilter{Limit: 1, Ascending: true})
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		require.Equal(t, first.ID, sessions[0].ID)
	})

	t.Run("focus checks", func(t *testing.T) {
		checks, err := pg.StoreFocusChecks(ctx,
			domain.FocusCheck{SessionID: first.ID, UserID: userID, WasFocused: true, Timestamp: now.Add(-50 * time.Minute)},
			domain.FocusCheck{SessionID: first.ID, UserID: userID, WasFocused: false, Timestamp: now.Add(-45 * time.Minute)},
		)
		require.NoError(t, err)
		require.Len(t, checks, 2)

		checks, err = pg.SessionFocusChecks(ctx, first.ID, second.ID)
		require.NoError(t, err)
		require.Len(t, checks, 2)
		require.True(t, checks[0].WasFocused)
		require.False(t, checks[1].WasFocused)
	})

	t.Run("update", func(t *testing.T) {
		end := now
		d := 600
		done := true
		got, err := pg.UpdateSession(ctx, userID, second.ID, storage.SessionUpdates{
			Notes:     strPtr("good"),
			EndTime:   &end,
			Duration:  &d,
			Completed: &done,
		})
		require.NoError(t, err)
		require.True(t, got.Completed)
		require.Equal(t, "good", got.Notes)
		require.Equal(t, 600, got.Seconds())

		got, err = pg.UpdateSession(ctx, newUserID(), second.ID, storage.SessionUpdates{Completed: &done})
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("delete cascades focus checks", func(t *testing.T) {
		deleted, err := pg.DeleteSession(ctx, userID, first.ID)
		require.NoError(t, err)
		require.Equal(t, first.ID, deleted.ID)

		checks, err := pg.SessionFocusChecks(ctx, first.ID)
		require.NoError(t, err)
		require.Empty(t, checks)

		got, err := pg.SessionByID(ctx, userID, first.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}
