package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSubjectColor is used when a subject is created without a color.
const DefaultSubjectColor = "#6366f1"

// SubjectID identifies a subject.
type SubjectID uuid.UUID

// String returns the canonical UUID form.
func (id SubjectID) String() string { return uuid.UUID(id).String() }

// TopicID identifies a topic.
type TopicID uuid.UUID

// String returns the canonical UUID form.
func (id TopicID) String() string { return uuid.UUID(id).String() }

// Subject is an area of study such as "Linear Algebra".
type Subject struct {
	ID     SubjectID
	UserID UserID

	Name  string
	Color string
	Icon  string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Topics is only populated by queries that load them.
	Topics []Topic
	// SessionsCount and TasksCount are only populated by listings.
	SessionsCount int
	TasksCount    int
}

// SubjectDetails is a subject together with its most recent sessions and its
// open tasks.
type SubjectDetails struct {
	Subject
	RecentSessions []StudySession
	OpenTasks      []Task
}

// Topic is a unit within a subject with a completion percentage.
type Topic struct {
	ID        TopicID
	SubjectID SubjectID

	Name     string
	Progress int

	CreatedAt time.Time
	UpdatedAt time.Time
}
