package study_test

import (
	"context"
	"studytracker/internal/study"
	"studytracker/pkg/domain"
	"studytracker/pkg/serrors"
	"studytracker/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStudy_CreateTask(t *testing.T) {
	tests := []struct {
		name     string
		priority string
		want     domain.TaskPriority
		wantErr  error
	}{
		{name: "default priority", priority: "", want: domain.TaskPriorityMedium},
		{name: "lower case", priority: "high", want: domain.TaskPriorityHigh},
		{name: "mixed case", priority: "Low", want: domain.TaskPriorityLow},
		{name: "unknown", priority: "urgent", wantErr: serrors.ErrBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, st, s := newTestStudy(t)

			if tt.wantErr == nil {
				st.EXPECT().StoreTask(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, task domain.Task) (*domain.Task, error) {
						require.Equal(t, testUser, task.UserID)
						require.Equal(t, "Read chapter 3", task.Title)

						return &task, nil
					},
				)
			}

			got, err := s.CreateTask(context.Background(), testUser, study.TaskInput{
				Title:    " Read chapter 3 ",
				Priority: tt.priority,
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Priority)
		})
	}
}

func TestStudy_CreateTask_UnknownSubject(t *testing.T) {
	_, st, s := newTestStudy(t)
	subjectID := domain.SubjectID(uuid.New())

	st.EXPECT().SubjectByID(gomock.Any(), testUser, subjectID).Return(nil, nil)

	_, err := s.CreateTask(context.Background(), testUser, study.TaskInput{Title: "x", SubjectID: &subjectID})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestStudy_CreateTask_EmptyTitle(t *testing.T) {
	_, _, s := newTestStudy(t)

	_, err := s.CreateTask(context.Background(), testUser, study.TaskInput{Title: "  "})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestStudy_UpcomingTasks(t *testing.T) {
	_, st, s := newTestStudy(t)
	open := false

	st.EXPECT().UserTasks(gomock.Any(), testUser, storage.TaskFilter{
		Completed: &open,
		DueFrom:   testNow,
		DueTo:     testNow.Add(7 * 24 * time.Hour),
		ByDueDate: true,
	}).Return([]domain.Task{{Title: "soon"}}, nil)

	got, err := s.UpcomingTasks(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestStudy_UpdateTask(t *testing.T) {
	_, st, s := newTestStudy(t)
	id := domain.TaskID(uuid.New())

	t.Run("nothing to update", func(t *testing.T) {
		_, err := s.UpdateTask(context.Background(), testUser, id, study.TaskPatch{})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("completing stamps completed at", func(t *testing.T) {
		done := true
		st.EXPECT().UpdateTask(gomock.Any(), testUser, id, storage.TaskUpdates{
			Completed:   &done,
			CompletedAt: &testNow,
		}).Return(&domain.Task{ID: id, Completed: true, CompletedAt: &testNow}, nil)

		got, err := s.UpdateTask(context.Background(), testUser, id, study.TaskPatch{Completed: &done})
		require.NoError(t, err)
		require.True(t, got.Completed)
	})

	t.Run("clear subject skips membership check", func(t *testing.T) {
		st.EXPECT().UpdateTask(gomock.Any(), testUser, id, storage.TaskUpdates{ClearSubject: true}).
			Return(&domain.Task{ID: id}, nil)

		_, err := s.UpdateTask(context.Background(), testUser, id, study.TaskPatch{ClearSubject: true})
		require.NoError(t, err)
	})

	t.Run("invalid priority", func(t *testing.T) {
		_, err := s.UpdateTask(context.Background(), testUser, id, study.TaskPatch{Priority: strPtr("none")})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("missing", func(t *testing.T) {
		st.EXPECT().UpdateTask(gomock.Any(), testUser, id, gomock.Any()).Return(nil, nil)

		_, err := s.UpdateTask(context.Background(), testUser, id, study.TaskPatch{Title: strPtr("new")})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestStudy_ToggleTask(t *testing.T) {
	_, st, s := newTestStudy(t)
	id := domain.TaskID(uuid.New())

	st.EXPECT().TaskByID(gomock.Any(), testUser, id).Return(&domain.Task{ID: id, Completed: true}, nil)
	reopen := false
	st.EXPECT().UpdateTask(gomock.Any(), testUser, id, storage.TaskUpdates{Completed: &reopen}).
		Return(&domain.Task{ID: id}, nil)

	got, err := s.ToggleTask(context.Background(), testUser, id)
	require.NoError(t, err)
	require.False(t, got.Completed)

	st.EXPECT().TaskByID(gomock.Any(), testUser, id).Return(nil, nil)
	_, err = s.ToggleTask(context.Background(), testUser, id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestStudy_DeleteTask(t *testing.T) {
	_, st, s := newTestStudy(t)
	id := domain.TaskID(uuid.New())

	st.EXPECT().DeleteTask(gomock.Any(), testUser, id).Return(nil, nil)
	require.ErrorIs(t, s.DeleteTask(context.Background(), testUser, id), serrors.ErrNotFound)
}
