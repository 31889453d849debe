package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskID identifies a task.
type TaskID uuid.UUID

// String returns the canonical UUID form.
func (id TaskID) String() string { return uuid.UUID(id).String() }

// TaskPriority ranks tasks.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// ParseTaskPriority accepts any letter case. The empty string maps to
// TaskPriorityMedium.
func ParseTaskPriority(s string) (TaskPriority, bool) {
	switch p := TaskPriority(strings.ToUpper(strings.TrimSpace(s))); p {
	case "":
		return TaskPriorityMedium, true
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return p, true
	default:
		return "", false
	}
}

// Task is a to-do item, optionally attached to a subject.
type Task struct {
	ID        TaskID
	UserID    UserID
	SubjectID *SubjectID

	Title       string
	Description string
	Priority    TaskPriority

	Completed   bool
	CompletedAt *time.Time
	DueDate     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
