package storage

import (
	"context"
	"studytracker/pkg/domain"
)

// SubjectUpdates lists optional subject fields; nil fields are left untouched.
type SubjectUpdates struct {
	Name  *string
	Color *string
	Icon  *string
}

// Empty reports whether no field is set.
func (u SubjectUpdates) Empty() bool {
	return u.Name == nil && u.Color == nil && u.Icon == nil
}

// SubjectStorage persists subjects and their topics. Every lookup is scoped to
// the owning user; a record of another user behaves as missing.
type SubjectStorage interface {
	// StoreSubject inserts a subject and returns the stored row.
	StoreSubject(ctx context.Context, subject domain.Subject) (*domain.Subject, error)
	// UpdateSubject applies updates and returns the updated row, or nil when
	// the subject does not exist.
	UpdateSubject(ctx context.Context,
		userID domain.UserID,
		id domain.SubjectID,
		updates SubjectUpdates) (*domain.Subject, error)
	// DeleteSubject removes a subject with its topics and returns it, or nil
	// when not found. Sessions and tasks keep existing without the link.
	DeleteSubject(ctx context.Context, userID domain.UserID, id domain.SubjectID) (*domain.Subject, error)
	// SubjectByID returns the subject without topics, or nil when not found.
	SubjectByID(ctx context.Context, userID domain.UserID, id domain.SubjectID) (*domain.Subject, error)
	// UserSubjects lists subjects newest first with session and task counts.
	UserSubjects(ctx context.Context, userID domain.UserID) ([]domain.Subject, error)

	// StoreTopic inserts a topic and returns the stored row.
	StoreTopic(ctx context.Context, topic domain.Topic) (*domain.Topic, error)
	// UpdateTopicProgress sets the progress of a topic whose subject belongs to
	// userID and returns it, or nil when not found.
	UpdateTopicProgress(ctx context.Context,
		userID domain.UserID,
		id domain.TopicID,
		progress int) (*domain.Topic, error)
	// SubjectTopics returns the topics of the given subjects ordered by
	// creation time.
	SubjectTopics(ctx context.Context, subjectIDs ...domain.SubjectID) ([]domain.Topic, error)
}
