package postgres

import (
	"database/sql"
	"studytracker/pkg/domain"
	"time"

	"github.com/google/uuid"
)

const (
	subjectsTable    = "subjects"
	topicsTable      = "topics"
	tasksTable       = "tasks"
	sessionsTable    = "study_sessions"
	focusChecksTable = "focus_checks"
	streaksTable     = "streaks"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time

	return &v
}

func nullSubjectID(id *domain.SubjectID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}

	return uuid.NullUUID{UUID: uuid.UUID(*id), Valid: true}
}

func subjectIDPtr(id uuid.NullUUID) *domain.SubjectID {
	if !id.Valid {
		return nil
	}
	v := domain.SubjectID(id.UUID)

	return &v
}

type PgSubject struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Name  string         `db:"name"`
	Color string         `db:"color"`
	Icon  sql.NullString `db:"icon"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgSubject) ToDomain() *domain.Subject {
	return &domain.Subject{
		ID:        domain.SubjectID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Name:      p.Name,
		Color:     p.Color,
		Icon:      p.Icon.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (p *PgSubject) FromDomain(s domain.Subject) {
	*p = PgSubject{
		ID:     uuid.UUID(s.ID),
		UserID: uuid.UUID(s.UserID),
		Name:   s.Name,
		Color:  s.Color,
		Icon:   nullString(s.Icon),
	}
}

// PgSubjectListing is a subject row with its aggregate counts.
type PgSubjectListing struct {
	PgSubject

	SessionsCount int `db:"sessions_count"`
	TasksCount    int `db:"tasks_count"`
}

func (p *PgSubjectListing) ToDomain() *domain.Subject {
	s := p.PgSubject.ToDomain()
	s.SessionsCount = p.SessionsCount
	s.TasksCount = p.TasksCount

	return s
}

type PgTopic struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	SubjectID uuid.UUID `db:"subject_id"`

	Name     string `db:"name"`
	Progress int    `db:"progress"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgTopic) ToDomain() domain.Topic {
	return domain.Topic{
		ID:        domain.TopicID(p.ID),
		SubjectID: domain.SubjectID(p.SubjectID),
		Name:      p.Name,
		Progress:  p.Progress,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type PgTask struct {
	ID        uuid.UUID     `db:"id"         goqu:"skipinsert"`
	UserID    uuid.UUID     `db:"user_id"`
	SubjectID uuid.NullUUID `db:"subject_id"`

	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Priority    string         `db:"priority"`

	Completed   bool         `db:"completed"`
	CompletedAt sql.NullTime `db:"completed_at"`
	DueDate     sql.NullTime `db:"due_date"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgTask) ToDomain() *domain.Task {
	return &domain.Task{
		ID:          domain.TaskID(p.ID),
		UserID:      domain.UserID(p.UserID),
		SubjectID:   subjectIDPtr(p.SubjectID),
		Title:       p.Title,
		Description: p.Description.String,
		Priority:    domain.TaskPriority(p.Priority),
		Completed:   p.Completed,
		CompletedAt: timePtr(p.CompletedAt),
		DueDate:     timePtr(p.DueDate),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p *PgTask) FromDomain(t domain.Task) {
	*p = PgTask{
		ID:          uuid.UUID(t.ID),
		UserID:      uuid.UUID(t.UserID),
		SubjectID:   nullSubjectID(t.SubjectID),
		Title:       t.Title,
		Description: nullString(t.Description),
		Priority:    string(t.Priority),
		Completed:   t.Completed,
		CompletedAt: nullTime(t.CompletedAt),
		DueDate:     nullTime(t.DueDate),
	}
}

type PgSession struct {
	ID        uuid.UUID     `db:"id"         goqu:"skipinsert"`
	UserID    uuid.UUID     `db:"user_id"`
	SubjectID uuid.NullUUID `db:"subject_id"`

	Subject string         `db:"subject"`
	Topic   sql.NullString `db:"topic"`
	Notes   sql.NullString `db:"notes"`

	StartTime time.Time     `db:"start_time"`
	EndTime   sql.NullTime  `db:"end_time"`
	Duration  sql.NullInt64 `db:"duration"`

	StudyMinutes int  `db:"study_minutes"`
	BreakMinutes int  `db:"break_minutes"`
	Completed    bool `db:"completed"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgSession) ToDomain() *domain.StudySession {
	var duration *int
	if p.Duration.Valid {
		d := int(p.Duration.Int64)
		duration = &d
	}

	return &domain.StudySession{
		ID:           domain.SessionID(p.ID),
		UserID:       domain.UserID(p.UserID),
		SubjectID:    subjectIDPtr(p.SubjectID),
		Subject:      p.Subject,
		Topic:        p.Topic.String,
		Notes:        p.Notes.String,
		StartTime:    p.StartTime,
		EndTime:      timePtr(p.EndTime),
		Duration:     duration,
		StudyMinutes: p.StudyMinutes,
		BreakMinutes: p.BreakMinutes,
		Completed:    p.Completed,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (p *PgSession) FromDomain(s domain.StudySession) {
	var duration sql.NullInt64
	if s.Duration != nil {
		duration = sql.NullInt64{Int64: int64(*s.Duration), Valid: true}
	}

	*p = PgSession{
		ID:           uuid.UUID(s.ID),
		UserID:       uuid.UUID(s.UserID),
		SubjectID:    nullSubjectID(s.SubjectID),
		Subject:      s.Subject,
		Topic:        nullString(s.Topic),
		Notes:        nullString(s.Notes),
		StartTime:    s.StartTime,
		EndTime:      nullTime(s.EndTime),
		Duration:     duration,
		StudyMinutes: s.StudyMinutes,
		BreakMinutes: s.BreakMinutes,
		Completed:    s.Completed,
	}
}

type PgFocusCheck struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	SessionID uuid.UUID `db:"session_id"`
	UserID    uuid.UUID `db:"user_id"`

	WasFocused bool      `db:"was_focused"`
	Timestamp  time.Time `db:"timestamp"`
}

func (p *PgFocusCheck) ToDomain() domain.FocusCheck {
	return domain.FocusCheck{
		ID:         domain.FocusCheckID(p.ID),
		SessionID:  domain.SessionID(p.SessionID),
		UserID:     domain.UserID(p.UserID),
		WasFocused: p.WasFocused,
		Timestamp:  p.Timestamp,
	}
}

func (p *PgFocusCheck) FromDomain(c domain.FocusCheck) {
	*p = PgFocusCheck{
		ID:         uuid.UUID(c.ID),
		SessionID:  uuid.UUID(c.SessionID),
		UserID:     uuid.UUID(c.UserID),
		WasFocused: c.WasFocused,
		Timestamp:  c.Timestamp,
	}
}

type PgStreak struct {
	UserID uuid.UUID `db:"user_id"`

	CurrentStreak int          `db:"current_streak"`
	LongestStreak int          `db:"longest_streak"`
	LastStudyDate sql.NullTime `db:"last_study_date"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgStreak) ToDomain() *domain.Streak {
	return &domain.Streak{
		UserID:        domain.UserID(p.UserID),
		CurrentStreak: p.CurrentStreak,
		LongestStreak: p.LongestStreak,
		LastStudyDate: timePtr(p.LastStudyDate),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func pgTasksToDomain(rows []PgTask) []domain.Task {
	out := make([]domain.Task, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

func pgSessionsToDomain(rows []PgSession) []domain.StudySession {
	out := make([]domain.StudySession, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
