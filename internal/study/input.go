package study

import (
	"regexp"
	"strings"
	"studytracker/pkg/domain"
	"studytracker/pkg/serrors"
	"time"
	"unicode/utf8"
)

const (
	maxSubjectNameLength = 100
	maxTaskTitleLength   = 200
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// SubjectInput is the payload of CreateSubject. An empty color falls back to
// domain.DefaultSubjectColor.
type SubjectInput struct {
	Name  string
	Color string
	Icon  string
}

// SubjectPatch lists the subject fields to change; nil fields are kept.
type SubjectPatch struct {
	Name  *string
	Color *string
	Icon  *string
}

// TaskInput is the payload of CreateTask. Priority is parsed case-insensitively
// and defaults to MEDIUM.
type TaskInput struct {
	Title       string
	Description string
	Priority    string
	SubjectID   *domain.SubjectID
	DueDate     *time.Time
}

// TaskPatch lists the task fields to change; nil fields are kept.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *string
	SubjectID   *domain.SubjectID
	DueDate     *time.Time
	Completed   *bool

	ClearSubject bool
	ClearDueDate bool
}

// TaskFilter narrows ListTasks.
type TaskFilter struct {
	Completed *bool
	SubjectID *domain.SubjectID
}

// SessionInput is the payload of CreateSession.
type SessionInput struct {
	SubjectID *domain.SubjectID
	Subject   string
	Topic     string
	Notes     string

	StartTime time.Time
	EndTime   *time.Time
	// Duration is in seconds. When nil and EndTime is set it is derived from
	// the start and end times.
	Duration *int

	StudyMinutes int
	BreakMinutes int

	FocusChecks []FocusCheckInput

	// Source labels where the session was recorded, metrics.SourceAPI when empty.
	Source string
}

// SessionPatch lists the session fields to change; nil fields are kept.
type SessionPatch struct {
	Subject   *string
	Topic     *string
	Notes     *string
	EndTime   *time.Time
	Duration  *int
	Completed *bool
}

// FocusCheckInput is the payload of CreateFocusCheck. SessionID is ignored
// for checks embedded in a SessionInput.
type FocusCheckInput struct {
	SessionID  domain.SessionID
	WasFocused bool
	// Timestamp defaults to now.
	Timestamp *time.Time
}

func validateSubjectName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", serrors.BadRequest("subject name is required")
	}
	if utf8.RuneCountInString(name) > maxSubjectNameLength {
		return "", serrors.BadRequest("subject name must be at most %d characters", maxSubjectNameLength)
	}

	return name, nil
}

func validateColor(color string) error {
	if !colorPattern.MatchString(color) {
		return serrors.BadRequest("invalid color %q: expected #RRGGBB", color)
	}

	return nil
}

func validateTaskTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", serrors.BadRequest("task title is required")
	}
	if utf8.RuneCountInString(title) > maxTaskTitleLength {
		return "", serrors.BadRequest("task title must be at most %d characters", maxTaskTitleLength)
	}

	return title, nil
}

func parsePriority(s string) (domain.TaskPriority, error) {
	p, ok := domain.ParseTaskPriority(s)
	if !ok {
		return "", serrors.BadRequest("invalid priority %q: expected LOW, MEDIUM or HIGH", s)
	}

	return p, nil
}
