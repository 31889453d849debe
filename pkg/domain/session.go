package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultStudyMinutes is the pomodoro length recorded when none is given.
	DefaultStudyMinutes = 25
	// DefaultBreakMinutes is the break length recorded when none is given.
	DefaultBreakMinutes = 5
)

// SessionID identifies a study session.
type SessionID uuid.UUID

// String returns the canonical UUID form.
func (id SessionID) String() string { return uuid.UUID(id).String() }

// FocusCheckID identifies a focus check.
type FocusCheckID uuid.UUID

// String returns the canonical UUID form.
func (id FocusCheckID) String() string { return uuid.UUID(id).String() }

// StudySession is one stretch of study, usually one pomodoro.
type StudySession struct {
	ID        SessionID
	UserID    UserID
	SubjectID *SubjectID

	// Subject is the free-text subject name entered when the timer started.
	Subject string
	Topic   string
	Notes   string

	StartTime time.Time
	EndTime   *time.Time
	// Duration is the studied time in seconds; nil while unknown.
	Duration *int

	StudyMinutes int
	BreakMinutes int
	Completed    bool

	CreatedAt time.Time
	UpdatedAt time.Time

	FocusChecks []FocusCheck
}

// Seconds returns the recorded duration, zero when unknown.
func (s StudySession) Seconds() int {
	if s.Duration == nil {
		return 0
	}

	return *s.Duration
}

// FocusCheck records the answer to one "are you still focused?" prompt.
type FocusCheck struct {
	ID        FocusCheckID
	SessionID SessionID
	UserID    UserID

	WasFocused bool
	Timestamp  time.Time
}
