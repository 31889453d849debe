package domain

// AnalyticsRange selects the look-back window of Analytics.
type AnalyticsRange string

const (
	AnalyticsRangeWeek  AnalyticsRange = "week"
	AnalyticsRangeMonth AnalyticsRange = "month"
	AnalyticsRangeYear  AnalyticsRange = "year"
)

// TodayStats summarises the current day.
type TodayStats struct {
	// TotalTime is in seconds.
	TotalTime      int
	SessionsCount  int
	AvgFocusScore  int
	CompletedTasks int
	Streak         int
}

// SubjectStats aggregates completed sessions of one subject name.
type SubjectStats struct {
	Subject       string
	Duration      int
	AvgFocusScore int
	SessionsCount int
}

// HourStats aggregates sessions started within one hour of the day.
type HourStats struct {
	Hour          int
	TimeOfDay     TimeOfDay
	AvgFocusScore int
	TotalDuration int
}

// Analytics is the aggregate served to the analytics dashboard.
type Analytics struct {
	Range          AnalyticsRange
	TotalTime      int
	SessionsCount  int
	AvgFocusScore  int
	SubjectStats   []SubjectStats
	DailyData      map[string]int
	BestStudyTimes []HourStats
}

// SubjectHours is one entry of a StudyStats breakdown.
type SubjectHours struct {
	SubjectID   *SubjectID
	SubjectName string
	Hours       float64
}

// StudyStats summarises a window of sessions in hours.
type StudyStats struct {
	TotalHours float64
	// AverageSessionDuration is in minutes.
	AverageSessionDuration int
	SessionsCount          int
	SubjectBreakdown       []SubjectHours
}

// Progress is the streak plus weekly and monthly summaries.
type Progress struct {
	Streak       Streak
	WeeklyStats  StudyStats
	MonthlyStats StudyStats
}

// TimeOfDay buckets an hour of the day.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// TimeOfDayForHour maps 6-11 to morning, 12-17 to afternoon, 18-21 to evening
// and everything else to night.
func TimeOfDayForHour(hour int) TimeOfDay {
	switch {
	case hour >= 6 && hour < 12:
		return Morning
	case hour >= 12 && hour < 18:
		return Afternoon
	case hour >= 18 && hour < 22:
		return Evening
	default:
		return Night
	}
}
