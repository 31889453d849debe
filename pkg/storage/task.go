package storage

import (
	"context"
	"studytracker/pkg/domain"
	"time"
)

// TaskUpdates lists optional task fields; nil fields are left untouched.
// CompletedAt is written only together with Completed.
type TaskUpdates struct {
	Title       *string
	Description *string
	Priority    *domain.TaskPriority
	SubjectID   *domain.SubjectID
	DueDate     *time.Time
	Completed   *bool
	CompletedAt *time.Time

	// ClearDueDate and ClearSubject null the respective column.
	ClearDueDate bool
	ClearSubject bool
}

// Empty reports whether no field is set.
func (u TaskUpdates) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Priority == nil && u.SubjectID == nil &&
		u.DueDate == nil && u.Completed == nil && !u.ClearDueDate && !u.ClearSubject
}

// TaskFilter narrows UserTasks. Zero values do not filter.
type TaskFilter struct {
	Completed *bool
	SubjectID *domain.SubjectID
	// DueFrom and DueTo bound the due date (inclusive); tasks without a due
	// date are excluded when either is set.
	DueFrom time.Time
	DueTo   time.Time
	// ByDueDate orders by due date only instead of the default listing order
	// (completed, due date, newest).
	ByDueDate bool
}

// TaskStorage persists tasks.
type TaskStorage interface {
	StoreTask(ctx context.Context, task domain.Task) (*domain.Task, error)
	// UpdateTask returns nil when the task does not exist.
	UpdateTask(ctx context.Context, userID domain.UserID, id domain.TaskID, updates TaskUpdates) (*domain.Task, error)
	// DeleteTask returns the deleted task, or nil when not found.
	DeleteTask(ctx context.Context, userID domain.UserID, id domain.TaskID) (*domain.Task, error)
	// TaskByID returns nil when not found.
	TaskByID(ctx context.Context, userID domain.UserID, id domain.TaskID) (*domain.Task, error)
	UserTasks(ctx context.Context, userID domain.UserID, filter TaskFilter) ([]domain.Task, error)
	// CompletedTaskCount counts tasks completed within [from, to).
	CompletedTaskCount(ctx context.Context, userID domain.UserID, from, to time.Time) (int, error)
}
