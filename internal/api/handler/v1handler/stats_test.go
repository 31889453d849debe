package v1handler_test

import (
	"net/http"
	"strings"
	"studytracker/pkg/domain"
	"studytracker/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStats_Today(t *testing.T) {
	api := newTestAPI(t)

	api.progress.EXPECT().TodayStats(gomock.Any(), defaultUser).Return(&domain.TodayStats{
		TotalTime:      3000,
		SessionsCount:  2,
		AvgFocusScore:  75,
		CompletedTasks: 1,
		Streak:         4,
	}, nil)

	status, body := api.do(t, http.MethodGet, "/stats/today", "")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"totalTime":3000,"sessionsCount":2,"avgFocusScore":75,"completedTasks":1,"streak":4}`, body)
}

func TestStats_Analytics(t *testing.T) {
	api := newTestAPI(t)

	api.progress.EXPECT().Analytics(gomock.Any(), defaultUser, "month").Return(&domain.Analytics{
		Range:         domain.AnalyticsRangeMonth,
		TotalTime:     1800,
		SessionsCount: 1,
		AvgFocusScore: 100,
		SubjectStats:  []domain.SubjectStats{{Subject: "Math", Duration: 1800, AvgFocusScore: 100, SessionsCount: 1}},
		DailyData:     map[string]int{"2026-03-10": 1200, "2026-03-09": 600},
		BestStudyTimes: []domain.HourStats{
			{Hour: 9, TimeOfDay: domain.Morning, AvgFocusScore: 100, TotalDuration: 1800},
		},
	}, nil)

	status, body := api.do(t, http.MethodGet, "/analytics?range=month", "")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{
		"range": "month",
		"totalTime": 1800,
		"sessionsCount": 1,
		"avgFocusScore": 100,
		"subjectStats": [{"subject":"Math","duration":1800,"avgFocusScore":100,"sessionsCount":1}],
		"dailyData": {"2026-03-09":600,"2026-03-10":1200},
		"bestStudyTimes": [{"hour":9,"timeOfDay":"morning","avgFocusScore":100,"totalDuration":1800}]
	}`, body)
	require.Less(t, strings.Index(body, "2026-03-09"), strings.Index(body, "2026-03-10"))
}

func TestStats_AnalyticsInvalidRange(t *testing.T) {
	api := newTestAPI(t)

	api.progress.EXPECT().Analytics(gomock.Any(), defaultUser, "decade").
		Return(nil, serrors.BadRequest("invalid range \"decade\""))

	status, _ := api.do(t, http.MethodGet, "/analytics?range=decade", "")
	require.Equal(t, http.StatusBadRequest, status)
}

func TestStats_Progress(t *testing.T) {
	api := newTestAPI(t)

	api.progress.EXPECT().Progress(gomock.Any(), defaultUser).Return(&domain.Progress{
		Streak: domain.Streak{UserID: defaultUser, CurrentStreak: 3, LongestStreak: 5, LastStudyDate: &testTime},
		WeeklyStats: domain.StudyStats{
			TotalHours:             1.5,
			AverageSessionDuration: 45,
			SessionsCount:          2,
			SubjectBreakdown:       []domain.SubjectHours{{SubjectName: "Math", Hours: 1.5}},
		},
	}, nil)

	status, body := api.do(t, http.MethodGet, "/progress", "")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{
		"streak": {
			"userId": "00000000-0000-0000-0000-000000000001",
			"currentStreak": 3,
			"longestStreak": 5,
			"lastStudyDate": "2026-03-10T15:00:00Z"
		},
		"weeklyStats": {
			"totalHours": 1.5,
			"averageSessionDuration": 45,
			"sessionsCount": 2,
			"subjectBreakdown": [{"subjectId":null,"subjectName":"Math","hours":1.5}]
		},
		"monthlyStats": {"totalHours":0,"averageSessionDuration":0,"sessionsCount":0,"subjectBreakdown":[]}
	}`, body)
}
