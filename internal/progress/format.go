package progress

import (
	"fmt"
	"math"
	"studytracker/pkg/domain"
)

// FocusScore is the rounded percentage of focused answers, 0 without checks.
func FocusScore(checks []domain.FocusCheck) int {
	if len(checks) == 0 {
		return 0
	}

	focused := 0
	for _, c := range checks {
		if c.WasFocused {
			focused++
		}
	}

	return int(math.Round(float64(focused) / float64(len(checks)) * 100))
}

// FormatDuration renders seconds as "1h 5m", or "5m" below an hour.
func FormatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}

	return fmt.Sprintf("%dm", minutes)
}

// FormatClock renders seconds as HH:MM:SS.
func FormatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
