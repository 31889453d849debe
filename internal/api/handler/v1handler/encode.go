package v1handler

import (
	"maps"
	"slices"
	"studytracker/internal/timer"
	"studytracker/pkg/domain"

	"github.com/go-faster/jx"
)

func encodeSubjectFields(e *jx.Encoder, s *domain.Subject) {
	e.FieldStart("id")
	e.Str(s.ID.String())
	e.FieldStart("userId")
	e.Str(s.UserID.String())
	e.FieldStart("name")
	e.Str(s.Name)
	e.FieldStart("color")
	e.Str(s.Color)
	e.FieldStart("icon")
	encodeOptString(e, s.Icon)
	e.FieldStart("createdAt")
	encodeTime(e, s.CreatedAt)
	e.FieldStart("updatedAt")
	encodeTime(e, s.UpdatedAt)
	e.FieldStart("topics")
	e.ArrStart()
	for i := range s.Topics {
		encodeTopic(e, &s.Topics[i])
	}
	e.ArrEnd()
	e.FieldStart("sessionsCount")
	e.Int(s.SessionsCount)
	e.FieldStart("tasksCount")
	e.Int(s.TasksCount)
}

func encodeSubject(e *jx.Encoder, s *domain.Subject) {
	e.ObjStart()
	encodeSubjectFields(e, s)
	e.ObjEnd()
}

func encodeSubjectDetails(e *jx.Encoder, s *domain.SubjectDetails) {
	e.ObjStart()
	encodeSubjectFields(e, &s.Subject)
	e.FieldStart("recentSessions")
	encodeSessions(e, s.RecentSessions)
	e.FieldStart("openTasks")
	encodeTasks(e, s.OpenTasks)
	e.ObjEnd()
}

func encodeSubjects(e *jx.Encoder, subjects []domain.Subject) {
	e.ArrStart()
	for i := range subjects {
		encodeSubject(e, &subjects[i])
	}
	e.ArrEnd()
}

func encodeTopic(e *jx.Encoder, t *domain.Topic) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(t.ID.String())
	e.FieldStart("subjectId")
	e.Str(t.SubjectID.String())
	e.FieldStart("name")
	e.Str(t.Name)
	e.FieldStart("progress")
	e.Int(t.Progress)
	e.FieldStart("createdAt")
	encodeTime(e, t.CreatedAt)
	e.FieldStart("updatedAt")
	encodeTime(e, t.UpdatedAt)
	e.ObjEnd()
}

func encodeSubjectID(e *jx.Encoder, id *domain.SubjectID) {
	if id == nil {
		e.Null()

		return
	}
	e.Str(id.String())
}

func encodeTask(e *jx.Encoder, t *domain.Task) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(t.ID.String())
	e.FieldStart("userId")
	e.Str(t.UserID.String())
	e.FieldStart("subjectId")
	encodeSubjectID(e, t.SubjectID)
	e.FieldStart("title")
	e.Str(t.Title)
	e.FieldStart("description")
	encodeOptString(e, t.Description)
	e.FieldStart("priority")
	e.Str(string(t.Priority))
	e.FieldStart("completed")
	e.Bool(t.Completed)
	e.FieldStart("completedAt")
	encodeTimePtr(e, t.CompletedAt)
	e.FieldStart("dueDate")
	encodeTimePtr(e, t.DueDate)
	e.FieldStart("createdAt")
	encodeTime(e, t.CreatedAt)
	e.FieldStart("updatedAt")
	encodeTime(e, t.UpdatedAt)
	e.ObjEnd()
}

func encodeTasks(e *jx.Encoder, tasks []domain.Task) {
	e.ArrStart()
	for i := range tasks {
		encodeTask(e, &tasks[i])
	}
	e.ArrEnd()
}

func encodeFocusCheck(e *jx.Encoder, c *domain.FocusCheck) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(c.ID.String())
	e.FieldStart("sessionId")
	e.Str(c.SessionID.String())
	e.FieldStart("userId")
	e.Str(c.UserID.String())
	e.FieldStart("wasFocused")
	e.Bool(c.WasFocused)
	e.FieldStart("timestamp")
	encodeTime(e, c.Timestamp)
	e.ObjEnd()
}

func encodeFocusChecks(e *jx.Encoder, checks []domain.FocusCheck) {
	e.ArrStart()
	for i := range checks {
		encodeFocusCheck(e, &checks[i])
	}
	e.ArrEnd()
}

func encodeSession(e *jx.Encoder, s *domain.StudySession) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(s.ID.String())
	e.FieldStart("userId")
	e.Str(s.UserID.String())
	e.FieldStart("subjectId")
	encodeSubjectID(e, s.SubjectID)
	e.FieldStart("subject")
	e.Str(s.Subject)
	e.FieldStart("topic")
	encodeOptString(e, s.Topic)
	e.FieldStart("notes")
	encodeOptString(e, s.Notes)
	e.FieldStart("startTime")
	encodeTime(e, s.StartTime)
	e.FieldStart("endTime")
	encodeTimePtr(e, s.EndTime)
	e.FieldStart("duration")
	encodeIntPtr(e, s.Duration)
	e.FieldStart("studyMinutes")
	e.Int(s.StudyMinutes)
	e.FieldStart("breakMinutes")
	e.Int(s.BreakMinutes)
	e.FieldStart("completed")
	e.Bool(s.Completed)
	e.FieldStart("createdAt")
	encodeTime(e, s.CreatedAt)
	e.FieldStart("updatedAt")
	encodeTime(e, s.UpdatedAt)
	e.FieldStart("focusChecks")
	encodeFocusChecks(e, s.FocusChecks)
	e.ObjEnd()
}

func encodeSessions(e *jx.Encoder, sessions []domain.StudySession) {
	e.ArrStart()
	for i := range sessions {
		encodeSession(e, &sessions[i])
	}
	e.ArrEnd()
}

func encodeTodayStats(e *jx.Encoder, s *domain.TodayStats) {
	e.ObjStart()
	e.FieldStart("totalTime")
	e.Int(s.TotalTime)
	e.FieldStart("sessionsCount")
	e.Int(s.SessionsCount)
	e.FieldStart("avgFocusScore")
	e.Int(s.AvgFocusScore)
	e.FieldStart("completedTasks")
	e.Int(s.CompletedTasks)
	e.FieldStart("streak")
	e.Int(s.Streak)
	e.ObjEnd()
}

func encodeAnalytics(e *jx.Encoder, a *domain.Analytics) {
	e.ObjStart()
	e.FieldStart("range")
	e.Str(string(a.Range))
	e.FieldStart("totalTime")
	e.Int(a.TotalTime)
	e.FieldStart("sessionsCount")
	e.Int(a.SessionsCount)
	e.FieldStart("avgFocusScore")
	e.Int(a.AvgFocusScore)

	e.FieldStart("subjectStats")
	e.ArrStart()
	for _, s := range a.SubjectStats {
		e.ObjStart()
		e.FieldStart("subject")
		e.Str(s.Subject)
		e.FieldStart("duration")
		e.Int(s.Duration)
		e.FieldStart("avgFocusScore")
		e.Int(s.AvgFocusScore)
		e.FieldStart("sessionsCount")
		e.Int(s.SessionsCount)
		e.ObjEnd()
	}
	e.ArrEnd()

	e.FieldStart("dailyData")
	e.ObjStart()
	for _, day := range slices.Sorted(maps.Keys(a.DailyData)) {
		e.FieldStart(day)
		e.Int(a.DailyData[day])
	}
	e.ObjEnd()

	e.FieldStart("bestStudyTimes")
	e.ArrStart()
	for _, h := range a.BestStudyTimes {
		e.ObjStart()
		e.FieldStart("hour")
		e.Int(h.Hour)
		e.FieldStart("timeOfDay")
		e.Str(string(h.TimeOfDay))
		e.FieldStart("avgFocusScore")
		e.Int(h.AvgFocusScore)
		e.FieldStart("totalDuration")
		e.Int(h.TotalDuration)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}

func encodeStudyStats(e *jx.Encoder, s *domain.StudyStats) {
	e.ObjStart()
	e.FieldStart("totalHours")
	e.Float64(s.TotalHours)
	e.FieldStart("averageSessionDuration")
	e.Int(s.AverageSessionDuration)
	e.FieldStart("sessionsCount")
	e.Int(s.SessionsCount)
	e.FieldStart("subjectBreakdown")
	e.ArrStart()
	for _, b := range s.SubjectBreakdown {
		e.ObjStart()
		e.FieldStart("subjectId")
		encodeSubjectID(e, b.SubjectID)
		e.FieldStart("subjectName")
		e.Str(b.SubjectName)
		e.FieldStart("hours")
		e.Float64(b.Hours)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}

func encodeProgress(e *jx.Encoder, p *domain.Progress) {
	e.ObjStart()
	e.FieldStart("streak")
	e.ObjStart()
	e.FieldStart("userId")
	e.Str(p.Streak.UserID.String())
	e.FieldStart("currentStreak")
	e.Int(p.Streak.CurrentStreak)
	e.FieldStart("longestStreak")
	e.Int(p.Streak.LongestStreak)
	e.FieldStart("lastStudyDate")
	encodeTimePtr(e, p.Streak.LastStudyDate)
	e.ObjEnd()
	e.FieldStart("weeklyStats")
	encodeStudyStats(e, &p.WeeklyStats)
	e.FieldStart("monthlyStats")
	encodeStudyStats(e, &p.MonthlyStats)
	e.ObjEnd()
}

func encodeTimerStatus(e *jx.Encoder, s *timer.Status) {
	e.ObjStart()
	e.FieldStart("elapsed")
	e.Int(s.Elapsed)
	e.FieldStart("clock")
	e.Str(s.Clock)
	e.FieldStart("progress")
	e.Float64(s.Progress)
	e.FieldStart("subject")
	e.Str(s.Subject)
	e.FieldStart("topic")
	e.Str(s.Topic)
	e.FieldStart("startTime")
	encodeTimePtr(e, s.StartTime)
	e.FieldStart("running")
	e.Bool(s.Running)
	e.FieldStart("break")
	e.Bool(s.Break)
	e.FieldStart("saving")
	e.Bool(s.Saving)
	e.FieldStart("showFocusCheck")
	e.Bool(s.ShowFocusCheck)
	e.FieldStart("focusChecks")
	e.ArrStart()
	for _, c := range s.FocusChecks {
		c.Encode(e)
	}
	e.ArrEnd()
	e.FieldStart("pomodoroMinutes")
	e.Int(s.PomodoroMinutes)
	e.FieldStart("breakMinutes")
	e.Int(s.BreakMinutes)
	e.FieldStart("checkIntervalMinutes")
	e.Int(s.CheckIntervalMinutes)
	e.ObjEnd()
}
