package study_test

import (
	"context"
	"studytracker/internal/progress"
	"studytracker/internal/study"
	"studytracker/pkg/domain"
	"studytracker/pkg/serrors"
	"studytracker/pkg/storage"
	mockstorage "studytracker/pkg/storage/mock"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStudy_CreateSession_Validation(t *testing.T) {
	end := testNow.Add(-time.Hour)
	negative := -1

	tests := []struct {
		name  string
		input study.SessionInput
	}{
		{"missing subject", study.SessionInput{StartTime: testNow}},
		{"missing start", study.SessionInput{Subject: "Math"}},
		{"end before start", study.SessionInput{Subject: "Math", StartTime: testNow, EndTime: &end}},
		{"negative duration", study.SessionInput{Subject: "Math", StartTime: testNow, Duration: &negative}},
		{"negative minutes", study.SessionInput{Subject: "Math", StartTime: testNow, BreakMinutes: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, s := newTestStudy(t)

			_, err := s.CreateSession(context.Background(), testUser, tt.input)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestStudy_CreateSession_Completed(t *testing.T) {
	ctrl, st, s := newTestStudy(t)

	start := testNow.Add(-25 * time.Minute)
	end := testNow
	sessionID := domain.SessionID(uuid.New())
	checkAt := start.Add(15 * time.Minute)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, session domain.StudySession) (*domain.StudySession, error) {
				require.Equal(t, testUser, session.UserID)
				require.Equal(t, "Math", session.Subject)
				require.True(t, session.Completed)
				require.Equal(t, 25*60, session.Seconds())
				require.Equal(t, domain.DefaultStudyMinutes, session.StudyMinutes)
				require.Equal(t, domain.DefaultBreakMinutes, session.BreakMinutes)
				session.ID = sessionID

				return &session, nil
			},
		)
		tx.EXPECT().StoreFocusChecks(gomock.Any(), domain.FocusCheck{
			SessionID:  sessionID,
			UserID:     testUser,
			WasFocused: true,
			Timestamp:  checkAt,
		}).DoAndReturn(func(_ context.Context, checks ...domain.FocusCheck) ([]domain.FocusCheck, error) {
			return checks, nil
		})
		tx.EXPECT().AddJob(gomock.Any(), progress.NewStreakJob(testUser.String(), 3), nil).Return(true, nil)
	})

	got, err := s.CreateSession(context.Background(), testUser, study.SessionInput{
		Subject:     " Math ",
		StartTime:   start,
		EndTime:     &end,
		FocusChecks: []study.FocusCheckInput{{WasFocused: true, Timestamp: &checkAt}},
	})
	require.NoError(t, err)
	require.Equal(t, sessionID, got.ID)
	require.Len(t, got.FocusChecks, 1)
}

func TestStudy_CreateSession_Open(t *testing.T) {
	ctrl, st, s := newTestStudy(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, session domain.StudySession) (*domain.StudySession, error) {
				require.False(t, session.Completed)
				require.Nil(t, session.Duration)

				return &session, nil
			},
		)
	})

	got, err := s.CreateSession(context.Background(), testUser, study.SessionInput{
		Subject:   "Math",
		StartTime: testNow,
	})
	require.NoError(t, err)
	require.NotNil(t, got.FocusChecks)
	require.Empty(t, got.FocusChecks)
}

func TestStudy_CreateSession_ForeignSubject(t *testing.T) {
	_, st, s := newTestStudy(t)
	subjectID := domain.SubjectID(uuid.New())

	st.EXPECT().SubjectByID(gomock.Any(), testUser, subjectID).Return(nil, nil)

	_, err := s.CreateSession(context.Background(), testUser, study.SessionInput{
		SubjectID: &subjectID,
		Subject:   "Math",
		StartTime: testNow,
	})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestStudy_ListSessions_Limit(t *testing.T) {
	tests := []struct {
		name  string
		limit uint
		want  uint
	}{
		{"default", 0, 50},
		{"explicit", 10, 10},
		{"capped", 10_000, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, st, s := newTestStudy(t)

			st.EXPECT().UserSessions(gomock.Any(), testUser, storage.SessionFilter{Limit: tt.want}).Return(nil, nil)

			got, err := s.ListSessions(context.Background(), testUser, tt.limit)
			require.NoError(t, err)
			require.Empty(t, got)
		})
	}
}

func TestStudy_ListSessions_AttachesFocusChecks(t *testing.T) {
	_, st, s := newTestStudy(t)

	a := domain.StudySession{ID: domain.SessionID(uuid.New())}
	b := domain.StudySession{ID: domain.SessionID(uuid.New())}
	check := domain.FocusCheck{SessionID: a.ID, WasFocused: true}

	st.EXPECT().UserSessions(gomock.Any(), testUser, gomock.Any()).Return([]domain.StudySession{a, b}, nil)
	st.EXPECT().SessionFocusChecks(gomock.Any(), a.ID, b.ID).Return([]domain.FocusCheck{check}, nil)

	got, err := s.ListSessions(context.Background(), testUser, 0)
	require.NoError(t, err)
	require.Equal(t, []domain.FocusCheck{check}, got[0].FocusChecks)
	require.NotNil(t, got[1].FocusChecks)
	require.Empty(t, got[1].FocusChecks)
}

func TestStudy_SessionsInRange(t *testing.T) {
	_, st, s := newTestStudy(t)
	from := testNow.Add(-48 * time.Hour)

	_, err := s.SessionsInRange(context.Background(), testUser, testNow, from)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	st.EXPECT().UserSessions(gomock.Any(), testUser, storage.SessionFilter{
		From:      from,
		To:        testNow.Add(time.Nanosecond),
		Ascending: true,
	}).Return(nil, nil)

	_, err = s.SessionsInRange(context.Background(), testUser, from, testNow)
	require.NoError(t, err)
}

func TestStudy_UpdateSession(t *testing.T) {
	id := domain.SessionID(uuid.New())
	done := true

	t.Run("nothing to update", func(t *testing.T) {
		_, _, s := newTestStudy(t)

		_, err := s.UpdateSession(context.Background(), testUser, id, study.SessionPatch{})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("completion enqueues streak", func(t *testing.T) {
		ctrl, st, s := newTestStudy(t)

		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().SessionByID(gomock.Any(), testUser, id).
				Return(&domain.StudySession{ID: id, StartTime: testNow.Add(-time.Hour)}, nil)
			tx.EXPECT().UpdateSession(gomock.Any(), testUser, id, storage.SessionUpdates{Completed: &done}).
				Return(&domain.StudySession{ID: id, Completed: true}, nil)
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), nil).Return(false, nil)
		})
		st.EXPECT().SessionFocusChecks(gomock.Any(), id).Return([]domain.FocusCheck{}, nil)

		got, err := s.UpdateSession(context.Background(), testUser, id, study.SessionPatch{Completed: &done})
		require.NoError(t, err)
		require.True(t, got.Completed)
	})

	t.Run("already completed does not enqueue", func(t *testing.T) {
		ctrl, st, s := newTestStudy(t)

		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().SessionByID(gomock.Any(), testUser, id).
				Return(&domain.StudySession{ID: id, Completed: true}, nil)
			tx.EXPECT().UpdateSession(gomock.Any(), testUser, id, gomock.Any()).
				Return(&domain.StudySession{ID: id, Completed: true}, nil)
		})
		st.EXPECT().SessionFocusChecks(gomock.Any(), id).Return(nil, nil)

		_, err := s.UpdateSession(context.Background(), testUser, id, study.SessionPatch{Notes: strPtr("ok")})
		require.NoError(t, err)
	})

	t.Run("end before start", func(t *testing.T) {
		ctrl, st, s := newTestStudy(t)
		end := testNow.Add(-2 * time.Hour)

		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().SessionByID(gomock.Any(), testUser, id).
				Return(&domain.StudySession{ID: id, StartTime: testNow.Add(-time.Hour)}, nil)
		})

		_, err := s.UpdateSession(context.Background(), testUser, id, study.SessionPatch{EndTime: &end})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("missing", func(t *testing.T) {
		ctrl, st, s := newTestStudy(t)

		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().SessionByID(gomock.Any(), testUser, id).Return(nil, nil)
		})

		_, err := s.UpdateSession(context.Background(), testUser, id, study.SessionPatch{Completed: &done})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestStudy_CreateFocusCheck(t *testing.T) {
	_, st, s := newTestStudy(t)
	sessionID := domain.SessionID(uuid.New())

	_, err := s.CreateFocusCheck(context.Background(), testUser, study.FocusCheckInput{})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	st.EXPECT().SessionByID(gomock.Any(), testUser, sessionID).Return(nil, nil)
	_, err = s.CreateFocusCheck(context.Background(), testUser, study.FocusCheckInput{SessionID: sessionID})
	require.ErrorIs(t, err, serrors.ErrNotFound)

	st.EXPECT().SessionByID(gomock.Any(), testUser, sessionID).Return(&domain.StudySession{ID: sessionID}, nil)
	st.EXPECT().StoreFocusChecks(gomock.Any(), domain.FocusCheck{
		SessionID: sessionID,
		UserID:    testUser,
		Timestamp: testNow,
	}).DoAndReturn(func(_ context.Context, checks ...domain.FocusCheck) ([]domain.FocusCheck, error) {
		return checks, nil
	})

	got, err := s.CreateFocusCheck(context.Background(), testUser, study.FocusCheckInput{SessionID: sessionID})
	require.NoError(t, err)
	require.False(t, got.WasFocused)
	require.Equal(t, testNow, got.Timestamp)
}

func TestStudy_SessionFocusChecks(t *testing.T) {
	_, st, s := newTestStudy(t)
	sessionID := domain.SessionID(uuid.New())

	st.EXPECT().SessionByID(gomock.Any(), testUser, sessionID).Return(&domain.StudySession{ID: sessionID}, nil)
	st.EXPECT().SessionFocusChecks(gomock.Any(), sessionID).Return(nil, nil)

	got, err := s.SessionFocusChecks(context.Background(), testUser, sessionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestStudy_DeleteSession(t *testing.T) {
	_, st, s := newTestStudy(t)
	id := domain.SessionID(uuid.New())

	st.EXPECT().DeleteSession(gomock.Any(), testUser, id).Return(&domain.StudySession{ID: id}, nil)
	require.NoError(t, s.DeleteSession(context.Background(), testUser, id))
}
