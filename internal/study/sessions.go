package study

import (
	"context"
	"fmt"
	"strings"
	"studytracker/internal/progress"
	"studytracker/pkg/domain"
	"studytracker/pkg/logger"
	"studytracker/pkg/metrics"
	"studytracker/pkg/serrors"
	"studytracker/pkg/storage"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s study) validateSession(input SessionInput) (domain.StudySession, error) {
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		return domain.StudySession{}, serrors.BadRequest("subject is required")
	}
	if input.StartTime.IsZero() {
		return domain.StudySession{}, serrors.BadRequest("start time is required")
	}
	if input.EndTime != nil && input.EndTime.Before(input.StartTime) {
		return domain.StudySession{}, serrors.BadRequest("end time must not precede start time")
	}
	if input.Duration != nil && *input.Duration < 0 {
		return domain.StudySession{}, serrors.BadRequest("duration must not be negative")
	}
	if input.StudyMinutes < 0 || input.BreakMinutes < 0 {
		return domain.StudySession{}, serrors.BadRequest("study and break minutes must not be negative")
	}

	session := domain.StudySession{
		SubjectID:    input.SubjectID,
		Subject:      subject,
		Topic:        strings.TrimSpace(input.Topic),
		Notes:        input.Notes,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Duration:     input.Duration,
		StudyMinutes: input.StudyMinutes,
		BreakMinutes: input.BreakMinutes,
		Completed:    input.EndTime != nil,
	}
	if session.StudyMinutes == 0 {
		session.StudyMinutes = domain.DefaultStudyMinutes
	}
	if session.BreakMinutes == 0 {
		session.BreakMinutes = domain.DefaultBreakMinutes
	}
	if session.Duration == nil && session.EndTime != nil {
		d := int(session.EndTime.Sub(session.StartTime) / time.Second)
		session.Duration = &d
	}

	return session, nil
}

func (s study) enqueueStreak(ctx context.Context, tx storage.AllStorage, userID domain.UserID) error {
	added, err := tx.AddJob(ctx, progress.NewStreakJob(userID.String(), s.options.MaxAttempts), nil)
	if err != nil {
		return fmt.Errorf("could not add streak job: %w", err)
	}
	if !added {
		logger.Debug(ctx, "streak job already queued", zap.Stringer("userID", userID))
	}

	return nil
}

// CreateSession stores a session with its focus checks. A completed session
// also enqueues a streak update within the same transaction.
func (s study) CreateSession(ctx context.Context,
	userID domain.UserID,
	input SessionInput) (*domain.StudySession, error) {
	session, err := s.validateSession(input)
	if err != nil {
		return nil, err
	}
	session.UserID = userID

	if err := s.ensureSubject(ctx, userID, input.SubjectID); err != nil {
		return nil, err
	}

	var stored *domain.StudySession
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err = tx.StoreSession(ctx, session)
		if err != nil {
			return fmt.Errorf("could not store session: %w", err)
		}

		stored.FocusChecks = []domain.FocusCheck{}
		if len(input.FocusChecks) > 0 {
			checks := make([]domain.FocusCheck, 0, len(input.FocusChecks))
			for _, c := range input.FocusChecks {
				checks = append(checks, s.focusCheck(stored.ID, userID, c))
			}
			stored.FocusChecks, err = tx.StoreFocusChecks(ctx, checks...)
			if err != nil {
				return fmt.Errorf("could not store focus checks: %w", err)
			}
		}

		if stored.Completed {
			return s.enqueueStreak(ctx, tx, userID)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create session: %w", err)
	}

	source := input.Source
	if source == "" {
		source = metrics.SourceAPI
	}
	metrics.SessionRecorded(source, stored.Completed, stored.Seconds())
	for _, c := range stored.FocusChecks {
		metrics.FocusCheckRecorded(c.WasFocused)
	}

	return stored, nil
}

func (s study) focusCheck(sessionID domain.SessionID, userID domain.UserID, input FocusCheckInput) domain.FocusCheck {
	ts := s.options.Now()
	if input.Timestamp != nil {
		ts = *input.Timestamp
	}

	return domain.FocusCheck{
		SessionID:  sessionID,
		UserID:     userID,
		WasFocused: input.WasFocused,
		Timestamp:  ts,
	}
}

// withFocusChecks attaches the focus checks of every session.
func (s study) withFocusChecks(ctx context.Context, sessions []domain.StudySession) error {
	if len(sessions) == 0 {
		return nil
	}

	ids := make([]domain.SessionID, 0, len(sessions))
	for _, sess := range sessions {
		ids = append(ids, sess.ID)
	}

	checks, err := s.storage.SessionFocusChecks(ctx, ids...)
	if err != nil {
		return fmt.Errorf("could not get focus checks: %w", err)
	}

	bySession := make(map[domain.SessionID][]domain.FocusCheck, len(sessions))
	for _, c := range checks {
		bySession[c.SessionID] = append(bySession[c.SessionID], c)
	}
	for i := range sessions {
		sessions[i].FocusChecks = bySession[sessions[i].ID]
		if sessions[i].FocusChecks == nil {
			sessions[i].FocusChecks = []domain.FocusCheck{}
		}
	}

	return nil
}

// ListSessions returns the newest sessions with their focus checks. A zero
// limit means 50; larger limits are capped at 500.
func (s study) ListSessions(ctx context.Context, userID domain.UserID, limit uint) ([]domain.StudySession, error) {
	if limit == 0 {
		limit = defaultSessionLimit
	}
	limit = min(limit, maxSessionLimit)

	sessions, err := s.storage.UserSessions(ctx, userID, storage.SessionFilter{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("could not get sessions: %w", err)
	}
	if err := s.withFocusChecks(ctx, sessions); err != nil {
		return nil, err
	}

	return sessions, nil
}

// SessionsInRange returns sessions started within [from, to], oldest first.
func (s study) SessionsInRange(ctx context.Context,
	userID domain.UserID,
	from, to time.Time) ([]domain.StudySession, error) {
	if !to.IsZero() && to.Before(from) {
		return nil, serrors.BadRequest("range end must not precede range start")
	}

	filter := storage.SessionFilter{From: from, Ascending: true}
	if !to.IsZero() {
		filter.To = to.Add(time.Nanosecond)
	}

	sessions, err := s.storage.UserSessions(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("could not get sessions in range: %w", err)
	}
	if err := s.withFocusChecks(ctx, sessions); err != nil {
		return nil, err
	}

	return sessions, nil
}

// UpdateSession changes only the fields present in patch. A session that
// becomes completed enqueues a streak update.
func (s study) UpdateSession(ctx context.Context,
	userID domain.UserID,
	id domain.SessionID,
	patch SessionPatch) (*domain.StudySession, error) {
	updates := storage.SessionUpdates{
		Topic:     patch.Topic,
		Notes:     patch.Notes,
		EndTime:   patch.EndTime,
		Duration:  patch.Duration,
		Completed: patch.Completed,
	}
	if patch.Subject != nil {
		subject := strings.TrimSpace(*patch.Subject)
		if subject == "" {
			return nil, serrors.BadRequest("subject must not be empty")
		}
		updates.Subject = &subject
	}
	if patch.Duration != nil && *patch.Duration < 0 {
		return nil, serrors.BadRequest("duration must not be negative")
	}
	if updates.Empty() {
		return nil, serrors.BadRequest("nothing to update")
	}

	var updated *domain.StudySession
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.SessionByID(ctx, userID, id)
		if err != nil {
			return fmt.Errorf("could not get session: %w", err)
		}
		if current == nil {
			return serrors.NotFound("session")
		}
		if patch.EndTime != nil && patch.EndTime.Before(current.StartTime) {
			return serrors.BadRequest("end time must not precede start time")
		}

		updated, err = tx.UpdateSession(ctx, userID, id, updates)
		if err != nil {
			return fmt.Errorf("could not update session: %w", err)
		}
		if updated == nil {
			return serrors.NotFound("session")
		}

		if !current.Completed && updated.Completed {
			return s.enqueueStreak(ctx, tx, userID)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not update session: %w", err)
	}

	checks, err := s.storage.SessionFocusChecks(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get focus checks: %w", err)
	}
	updated.FocusChecks = checks

	return updated, nil
}

func (s study) DeleteSession(ctx context.Context, userID domain.UserID, id domain.SessionID) error {
	session, err := s.storage.DeleteSession(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}
	if session == nil {
		return serrors.NotFound("session")
	}

	return nil
}

// CreateFocusCheck records an answer against an existing session of userID.
func (s study) CreateFocusCheck(ctx context.Context,
	userID domain.UserID,
	input FocusCheckInput) (*domain.FocusCheck, error) {
	if uuid.UUID(input.SessionID) == uuid.Nil {
		return nil, serrors.BadRequest("session id is required")
	}

	session, err := s.storage.SessionByID(ctx, userID, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("could not get session: %w", err)
	}
	if session == nil {
		return nil, serrors.NotFound("session")
	}

	checks, err := s.storage.StoreFocusChecks(ctx, s.focusCheck(session.ID, userID, input))
	if err != nil {
		return nil, fmt.Errorf("could not store focus check: %w", err)
	}
	metrics.FocusCheckRecorded(input.WasFocused)

	return &checks[0], nil
}

// SessionFocusChecks returns the checks of a session ordered by timestamp.
func (s study) SessionFocusChecks(ctx context.Context,
	userID domain.UserID,
	sessionID domain.SessionID) ([]domain.FocusCheck, error) {
	if uuid.UUID(sessionID) == uuid.Nil {
		return nil, serrors.BadRequest("session id is required")
	}

	session, err := s.storage.SessionByID(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("could not get session: %w", err)
	}
	if session == nil {
		return nil, serrors.NotFound("session")
	}

	checks, err := s.storage.SessionFocusChecks(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("could not get focus checks: %w", err)
	}
	if checks == nil {
		checks = []domain.FocusCheck{}
	}

	return checks, nil
}
