package progress_test

import (
	"context"
	"errors"
	"studytracker/internal/progress"
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

var (
	testNow  = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	testUser = domain.UserID(uuid.MustParse("00000000-0000-0000-0000-000000000001"))
)

func newTestProgress(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, progress.Progress) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	p := progress.New(st, progress.Options{
		Location: time.UTC,
		Now:      func() time.Time { return testNow },
	})

	return ctrl, st, p
}

func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func session(subject string, start time.Time, seconds int, checks ...bool) domain.StudySession {
	id := domain.SessionID(uuid.New())
	s := domain.StudySession{
		ID:        id,
		UserID:    testUser,
		Subject:   subject,
		StartTime: start,
		Duration:  &seconds,
		Completed: true,
	}
	for _, focused := range checks {
		s.FocusChecks = append(s.FocusChecks, domain.FocusCheck{SessionID: id, WasFocused: focused})
	}

	return s
}

func daysAgo(n int, hour int) time.Time {
	return time.Date(2026, 3, 10-n, hour, 0, 0, 0, time.UTC)
}

// expectSessions returns sessions without checks from UserSessions and their
// checks from SessionFocusChecks.
func expectSessions(st *mockstorage.MockStorage, sessions ...domain.StudySession) {
	stripped := make([]domain.StudySession, 0, len(sessions))
	var checks []domain.FocusCheck
	for _, s := range sessions {
		checks = append(checks, s.FocusChecks...)
		s.FocusChecks = nil
		stripped = append(stripped, s)
	}

	st.EXPECT().UserSessions(gomock.Any(), testUser, gomock.Any()).Return(stripped, nil)
	if len(sessions) > 0 {
		st.EXPECT().SessionFocusChecks(gomock.Any(), gomock.Any()).Return(checks, nil)
	}
}

func TestProgress_CalculateStreak(t *testing.T) {
	tests := []struct {
		name string
		days []int
		want int
	}{
		{"no sessions", nil, 0},
		{"today only", []int{0}, 1},
		{"today empty yesterday studied", []int{1, 2, 3}, 3},
		{"gap stops the walk", []int{0, 1, 3, 4}, 2},
		{"gap after empty today", []int{2, 3}, 0},
		{"capped at thirty days", func() []int {
			var d []int
			for i := 0; i < 40; i++ {
				d = append(d, i)
			}

			return d
		}(), 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, st, p := newTestProgress(t)

			var sessions []domain.StudySession
			for _, d := range tt.days {
				sessions = append(sessions, session("Math", daysAgo(d, 9), 600))
			}
			st.EXPECT().UserSessions(gomock.Any(), testUser, storage.SessionFilter{
				CompletedOnly: true,
				Limit:         100,
			}).Return(sessions, nil)

			got, err := p.CalculateStreak(context.Background(), testUser)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestProgress_TodayStats(t *testing.T) {
	_, st, p := newTestProgress(t)

	dayStart := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	a := session("Math", daysAgo(0, 8), 1500, true, true, false)
	b := session("Art", daysAgo(0, 10), 900, true)

	st.EXPECT().UserSessions(gomock.Any(), testUser, storage.SessionFilter{
		From:          dayStart,
		To:            dayStart.AddDate(0, 0, 1),
		CompletedOnly: true,
	}).Return([]domain.StudySession{a, b}, nil)
	st.EXPECT().SessionFocusChecks(gomock.Any(), a.ID, b.ID).Return(append(a.FocusChecks, b.FocusChecks...), nil)
	st.EXPECT().CompletedTaskCount(gomock.Any(), testUser, dayStart, dayStart.AddDate(0, 0, 1)).Return(2, nil)
	st.EXPECT().UserSessions(gomock.Any(), testUser, storage.SessionFilter{CompletedOnly: true, Limit: 100}).
		Return([]domain.StudySession{a, b, session("Math", daysAgo(1, 9), 60)}, nil)

	stats, err := p.TodayStats(context.Background(), testUser)
	require.NoError(t, err)
	require.Equal(t, &domain.TodayStats{
		TotalTime:      2400,
		SessionsCount:  2,
		AvgFocusScore:  75,
		CompletedTasks: 2,
		Streak:         2,
	}, stats)
}

func TestProgress_TodayStats_StorageError(t *testing.T) {
	_, st, p := newTestProgress(t)

	st.EXPECT().UserSessions(gomock.Any(), testUser, gomock.Any()).Return(nil, errors.New("db down"))

	_, err := p.TodayStats(context.Background(), testUser)
	require.Error(t, err)
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(err))
}

func TestProgress_Analytics(t *testing.T) {
	_, st, p := newTestProgress(t)

	expectSessions(st,
		session("Math", daysAgo(2, 9), 1200, true, false),
		session("Math", daysAgo(1, 9), 1800, true, true),
		session("Art", daysAgo(1, 20), 3600),
		session("Chem", daysAgo(0, 14), 600, true),
		session("Chem", daysAgo(0, 2), 300, false),
	)

	got, err := p.Analytics(context.Background(), testUser, "")
	require.NoError(t, err)
	require.Equal(t, domain.AnalyticsRangeWeek, got.Range)
	require.Equal(t, 7500, got.TotalTime)
	require.Equal(t, 5, got.SessionsCount)
	require.Equal(t, 67, got.AvgFocusScore)

	require.Equal(t, []domain.SubjectStats{
		{Subject: "Art", Duration: 3600, AvgFocusScore: 0, SessionsCount: 1},
		{Subject: "Math", Duration: 3000, AvgFocusScore: 75, SessionsCount: 2},
		{Subject: "Chem", Duration: 900, AvgFocusScore: 50, SessionsCount: 2},
	}, got.SubjectStats)

	require.Equal(t, map[string]int{
		"2026-03-08": 1200,
		"2026-03-09": 5400,
		"2026-03-10": 900,
	}, got.DailyData)

	require.Equal(t, []domain.HourStats{
		{Hour: 14, TimeOfDay: domain.Afternoon, AvgFocusScore: 100, TotalDuration: 600},
		{Hour: 9, TimeOfDay: domain.Morning, AvgFocusScore: 75, TotalDuration: 3000},
		{Hour: 2, TimeOfDay: domain.Night, AvgFocusScore: 0, TotalDuration: 300},
	}, got.BestStudyTimes)
}

func TestProgress_Analytics_RangeWindow(t *testing.T) {
	_, st, p := newTestProgress(t)

	st.EXPECT().UserSessions(gomock.Any(), testUser, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.UserID, f storage.SessionFilter) ([]domain.StudySession, error) {
			require.Equal(t, testNow.AddDate(0, -1, 0), f.From)
			require.True(t, f.CompletedOnly)
			require.True(t, f.Ascending)

			return nil, nil
		})

	got, err := p.Analytics(context.Background(), testUser, "month")
	require.NoError(t, err)
	require.Zero(t, got.TotalTime)
	require.Empty(t, got.SubjectStats)
	require.Empty(t, got.BestStudyTimes)
}

func TestProgress_Analytics_InvalidRange(t *testing.T) {
	_, _, p := newTestProgress(t)

	_, err := p.Analytics(context.Background(), testUser, "decade")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestProgress_Progress(t *testing.T) {
	_, st, p := newTestProgress(t)

	subjectID := domain.SubjectID(uuid.New())
	linked := session("Math", daysAgo(1, 9), 5400)
	linked.SubjectID = &subjectID

	st.EXPECT().StreakByUser(gomock.Any(), testUser).Return(nil, nil)
	st.EXPECT().UpsertStreak(gomock.Any(), domain.Streak{UserID: testUser}).
		Return(&domain.Streak{UserID: testUser}, nil)
	st.EXPECT().UserSessions(gomock.Any(), testUser, gomock.Any()).
		Return([]domain.StudySession{linked, session("Free reading", daysAgo(2, 9), 1800)}, nil)
	st.EXPECT().UserSessions(gomock.Any(), testUser, gomock.Any()).
		Return([]domain.StudySession{linked}, nil)

	got, err := p.Progress(context.Background(), testUser)
	require.NoError(t, err)
	require.Equal(t, testUser, got.Streak.UserID)

	require.Equal(t, 2.0, got.WeeklyStats.TotalHours)
	require.Equal(t, 2, got.WeeklyStats.SessionsCount)
	require.Equal(t, 60, got.WeeklyStats.AverageSessionDuration)
	require.Equal(t, []domain.SubjectHours{
		{SubjectID: &subjectID, SubjectName: "Math", Hours: 1.5},
		{SubjectName: "Free reading", Hours: 0.5},
	}, got.WeeklyStats.SubjectBreakdown)

	require.Equal(t, 1.5, got.MonthlyStats.TotalHours)
	require.Equal(t, 90, got.MonthlyStats.AverageSessionDuration)
}

func TestProgress_UpdateStreak(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	earlierToday := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)
	lastWeek := testNow.AddDate(0, 0, -7)

	tests := []struct {
		name        string
		stored      *domain.Streak
		wantCurrent int
		wantLongest int
		wantWrite   bool
	}{
		{"first study day", nil, 1, 1, true},
		{"never studied", &domain.Streak{UserID: testUser}, 1, 1, true},
		{"same day", &domain.Streak{UserID: testUser, CurrentStreak: 3, LongestStreak: 4, LastStudyDate: &earlierToday}, 3, 4, false},
		{"next day", &domain.Streak{UserID: testUser, CurrentStreak: 4, LongestStreak: 4, LastStudyDate: &yesterday}, 5, 5, true},
		{"gap", &domain.Streak{UserID: testUser, CurrentStreak: 4, LongestStreak: 9, LastStudyDate: &lastWeek}, 1, 9, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, st, p := newTestProgress(t)

			expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
				tx.EXPECT().StreakByUser(gomock.Any(), testUser).Return(tt.stored, nil)
				if tt.stored == nil {
					tx.EXPECT().UpsertStreak(gomock.Any(), domain.Streak{UserID: testUser}).
						Return(&domain.Streak{UserID: testUser}, nil)
				}
				if tt.wantWrite {
					tx.EXPECT().UpsertStreak(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, s domain.Streak) (*domain.Streak, error) {
							require.True(t, testNow.Equal(*s.LastStudyDate))

							return &s, nil
						})
				}
			})

			got, err := p.UpdateStreak(context.Background(), testUser)
			require.NoError(t, err)
			require.Equal(t, tt.wantCurrent, got.CurrentStreak)
			require.Equal(t, tt.wantLongest, got.LongestStreak)
		})
	}
}
