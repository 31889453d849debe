package study

import (
	"context"
	"studytracker/pkg/domain"
	"time"
)

//go:generate mockgen -package mockstudy -source=interface.go -destination=mock/mockstudy.go *
type Study interface {
	ListSubjects(ctx context.Context, userID domain.UserID) ([]domain.Subject, error)
	GetSubject(ctx context.Context, userID domain.UserID, id domain.SubjectID) (*domain.SubjectDetails, error)
	CreateSubject(ctx context.Context, userID domain.UserID, input SubjectInput) (*domain.Subject, error)
	UpdateSubject(ctx context.Context,
		userID domain.UserID,
		id domain.SubjectID,
		patch SubjectPatch) (*domain.Subject, error)
	DeleteSubject(ctx context.Context, userID domain.UserID, id domain.SubjectID) error
	CreateTopic(ctx context.Context, userID domain.UserID, subjectID domain.SubjectID, name string) (*domain.Topic, error)
	UpdateTopicProgress(ctx context.Context, userID domain.UserID, id domain.TopicID, progress int) (*domain.Topic, error)

	ListTasks(ctx context.Context, userID domain.UserID, filter TaskFilter) ([]domain.Task, error)
	UpcomingTasks(ctx context.Context, userID domain.UserID) ([]domain.Task, error)
	CreateTask(ctx context.Context, userID domain.UserID, input TaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, userID domain.UserID, id domain.TaskID, patch TaskPatch) (*domain.Task, error)
	ToggleTask(ctx context.Context, userID domain.UserID, id domain.TaskID) (*domain.Task, error)
	DeleteTask(ctx context.Context, userID domain.UserID, id domain.TaskID) error

	CreateSession(ctx context.Context, userID domain.UserID, input SessionInput) (*domain.StudySession, error)
	ListSessions(ctx context.Context, userID domain.UserID, limit uint) ([]domain.StudySession, error)
	SessionsInRange(ctx context.Context, userID domain.UserID, from, to time.Time) ([]domain.StudySession, error)
	UpdateSession(ctx context.Context,
		userID domain.UserID,
		id domain.SessionID,
		patch SessionPatch) (*domain.StudySession, error)
	DeleteSession(ctx context.Context, userID domain.UserID, id domain.SessionID) error
	CreateFocusCheck(ctx context.Context, userID domain.UserID, input FocusCheckInput) (*domain.FocusCheck, error)
	SessionFocusChecks(ctx context.Context, userID domain.UserID, sessionID domain.SessionID) ([]domain.FocusCheck, error)
}
