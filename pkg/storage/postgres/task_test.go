package postgres_test

import (
	"context"
	"studytracker/pkg/domain"
	"studytracker/pkg/storage"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Tasks(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	userID := newUserID()
	now := time.Now().UTC().Truncate(time.Second)
	soon := now.Add(48 * time.Hour)
	later := now.Add(30 * 24 * time.Hour)

	undated, err := pg.StoreTask(ctx, domain.Task{UserID: userID, Title: "Read", Priority: domain.TaskPriorityLow})
	require.NoError(t, err)
	dueLater, err := pg.StoreTask(ctx, domain.Task{
		UserID:      userID,
		Title:       "Essay",
		Description: "2000 words",
		Priority:    domain.TaskPriorityMedium,
		DueDate:     &later,
	})
	require.NoError(t, err)
	dueSoon, err := pg.StoreTask(ctx, domain.Task{UserID: userID, Title: "Quiz", Priority: domain.TaskPriorityHigh, DueDate: &soon})
	require.NoError(t, err)
	require.Equal(t, "2000 words", dueLater.Description)
	require.WithinDuration(t, soon, *dueSoon.DueDate, time.Second)

	t.Run("listing order", func(t *testing.T) {
		tasks, err := pg.UserTasks(ctx, userID, storage.TaskFilter{})
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		require.Equal(t, dueSoon.ID, tasks[0].ID)
		require.Equal(t, dueLater.ID, tasks[1].ID)
		require.Equal(t, undated.ID, tasks[2].ID)
	})

	t.Run("complete and reopen", func(t *testing.T) {
		done := true
		got, err := pg.UpdateTask(ctx, userID, dueSoon.ID, storage.TaskUpdates{Completed: &done, CompletedAt: &now})
		require.NoError(t, err)
		require.True(t, got.Completed)
		require.NotNil(t, got.CompletedAt)

		count, err := pg.CompletedTaskCount(ctx, userID, now.Add(-time.Minute), now.Add(time.Minute))
		require.NoError(t, err)
		require.Equal(t, 1, count)

		tasks, err := pg.UserTasks(ctx, userID, storage.TaskFilter{})
		require.NoError(t, err)
		require.Equal(t, dueSoon.ID, tasks[2].ID)

		completedAt := *got.CompletedAt
		nextDay := now.Add(24 * time.Hour)
		got, err = pg.UpdateTask(ctx, userID, dueSoon.ID, storage.TaskUpdates{Completed: &done, CompletedAt: &nextDay})
		require.NoError(t, err)
		require.True(t, got.Completed)
		require.True(t, completedAt.Equal(*got.CompletedAt))

		count, err = pg.CompletedTaskCount(ctx, userID, nextDay.Add(-time.Minute), nextDay.Add(time.Minute))
		require.NoError(t, err)
		require.Zero(t, count)

		open := false
		got, err = pg.UpdateTask(ctx, userID, dueSoon.ID, storage.TaskUpdates{Completed: &open})
		require.NoError(t, err)
		require.False(t, got.Completed)
		require.Nil(t, got.CompletedAt)
	})

	t.Run("due window", func(t *testing.T) {
		open := false
		tasks, err := pg.UserTasks(ctx, userID, storage.TaskFilter{
			Completed: &open,
			DueFrom:   now,
			DueTo:     now.Add(7 * 24 * time.Hour),
			ByDueDate: true,
		})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		require.Equal(t, dueSoon.ID, tasks[0].ID)
	})

	t.Run("clear due date", func(t *testing.T) {
		got, err := pg.UpdateTask(ctx, userID, dueLater.ID, storage.TaskUpdates{ClearDueDate: true})
		require.NoError(t, err)
		require.Nil(t, got.DueDate)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := pg.DeleteTask(ctx, userID, undated.ID)
		require.NoError(t, err)
		require.Equal(t, undated.ID, deleted.ID)

		got, err := pg.TaskByID(ctx, userID, undated.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}
