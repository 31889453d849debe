package domain

import "time"

// Streak tracks consecutive study days for a user.
type Streak struct {
	UserID UserID

	CurrentStreak int
	LongestStreak int
	LastStudyDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
