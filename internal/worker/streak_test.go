package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"studytracker/internal/progress"
	mockprogress "studytracker/internal/progress/mock"
	"studytracker/internal/worker"
	"studytracker/pkg/domain"
	"studytracker/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.TestEnvironment)
	m.Run()
}

func makeJob(id int64, userID string) *river.Job[progress.StreakJobArgs] {
	return &river.Job[progress.StreakJobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   progress.NewStreakJob(userID, 3),
	}
}

func TestStreakWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockprogress.NewMockProgress(ctrl)
	w := worker.NewStreakWorker(mock, 0)

	userID := uuid.New()
	mock.EXPECT().UpdateStreak(gomock.Any(), domain.UserID(userID)).
		Return(&domain.Streak{UserID: domain.UserID(userID), CurrentStreak: 2, LongestStreak: 4}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, userID.String())))
}

func TestStreakWorker_Work_InvalidUserCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockprogress.NewMockProgress(ctrl)
	w := worker.NewStreakWorker(mock, 0)

	err := w.Work(context.Background(), makeJob(2, "not-a-uuid"))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestStreakWorker_Work_ErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockprogress.NewMockProgress(ctrl)
	w := worker.NewStreakWorker(mock, 0)

	boom := errors.New("db down")
	mock.EXPECT().UpdateStreak(gomock.Any(), gomock.Any()).Return(nil, boom)

	err := w.Work(context.Background(), makeJob(3, uuid.NewString()))
	require.ErrorIs(t, err, boom)
	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
}

func TestStreakWorker_Timeout(t *testing.T) {
	w := worker.NewStreakWorker(nil, 5*time.Second)
	require.Equal(t, 5*time.Second, w.Timeout(makeJob(4, "")))
}

func TestStreakJobArgs_InsertOpts(t *testing.T) {
	args := progress.NewStreakJob(uuid.NewString(), 7)
	require.Equal(t, "UpdateStreakJob", args.Kind())

	opts := args.InsertOpts()
	require.Equal(t, 7, opts.MaxAttempts)
	require.True(t, opts.UniqueOpts.ByArgs)
	require.NotContains(t, opts.UniqueOpts.ByState, rivertype.JobStateCompleted)
}
