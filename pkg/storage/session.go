package storage

import (
	"context"
	"studytracker/pkg/domain"
	"time"
)

// SessionUpdates lists optional session fields; nil fields are left untouched.
type SessionUpdates struct {
	Subject   *string
	Topic     *string
	Notes     *string
	EndTime   *time.Time
	Duration  *int
	Completed *bool
}

// Empty reports whether no field is set.
func (u SessionUpdates) Empty() bool {
	return u.Subject == nil && u.Topic == nil && u.Notes == nil &&
		u.EndTime == nil && u.Duration == nil && u.Completed == nil
}

// SessionFilter narrows UserSessions. Zero values do not filter.
type SessionFilter struct {
	// From and To bound the start time; To is exclusive.
	From time.Time
	To   time.Time

	CompletedOnly bool
	SubjectID     *domain.SubjectID

	// Limit caps the result; 0 means unlimited.
	Limit uint
	// Ascending orders by start time ascending instead of newest first.
	Ascending bool
}

// SessionStorage persists study sessions and their focus checks.
type SessionStorage interface {
	StoreSession(ctx context.Context, session domain.StudySession) (*domain.StudySession, error)
	// UpdateSession returns nil when the session does not exist.
	UpdateSession(ctx context.Context,
		userID domain.UserID,
		id domain.SessionID,
		updates SessionUpdates) (*domain.StudySession, error)
	// DeleteSession removes the session with its focus checks and returns it,
	// or nil when not found.
	DeleteSession(ctx context.Context, userID domain.UserID, id domain.SessionID) (*domain.StudySession, error)
	// SessionByID returns the session without focus checks, or nil.
	SessionByID(ctx context.Context, userID domain.UserID, id domain.SessionID) (*domain.StudySession, error)
	// UserSessions lists sessions without focus checks.
	UserSessions(ctx context.Context, userID domain.UserID, filter SessionFilter) ([]domain.StudySession, error)

	// StoreFocusChecks inserts focus checks and returns the stored rows.
	StoreFocusChecks(ctx context.Context, checks ...domain.FocusCheck) ([]domain.FocusCheck, error)
	// SessionFocusChecks returns the checks of the given sessions ordered by
	// timestamp.
	SessionFocusChecks(ctx context.Context, sessionIDs ...domain.SessionID) ([]domain.FocusCheck, error)
}
