package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "studytracker"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Session sources.
const (
	SourceAPI   = "api"
	SourceTimer = "timer"
)

//nolint: gochecknoglobals
var (
	sessionsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_recorded_total",
		Help:      "Study sessions stored, by source.",
	}, []string{"source", "completed"})

	studySeconds = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "study_seconds_total",
		Help:      "Seconds of study recorded in stored sessions.",
	})

	focusChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "focus_checks_total",
		Help:      "Focus check answers stored, by answer.",
	}, []string{"focused"})

	timerCycles = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timer_cycles_completed_total",
		Help:      "Pomodoro cycles run to completion, by phase.",
	}, []string{"phase"})
)

// SessionRecorded counts a stored session and its duration.
func SessionRecorded(source string, completed bool, seconds int) {
	sessionsRecorded.WithLabelValues(source, strconv.FormatBool(completed)).Inc()
	if seconds > 0 {
		studySeconds.Add(float64(seconds))
	}
}

// FocusCheckRecorded counts a stored focus check answer.
func FocusCheckRecorded(focused bool) {
	focusChecks.WithLabelValues(strconv.FormatBool(focused)).Inc()
}

// TimerCycleCompleted counts a finished study or break phase.
func TimerCycleCompleted(phase string) {
	timerCycles.WithLabelValues(phase).Inc()
}
