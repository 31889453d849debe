package postgres

import (
	"context"
	"fmt"
	"studytracker/pkg/domain"
	"studytracker/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (p *PgSQL) StoreSession(ctx context.Context, session domain.StudySession) (*domain.StudySession, error) {
	var row PgSession
	row.FromDomain(session)

	var result PgSession
	if _, err := p.Builder.Insert(sessionsTable).
		Rows(row).
		Returning(&PgSession{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store session into pg: %w", err)
	}

	return result.ToDomain(), nil
}

// UpdateSession sets only the non-nil fields. Empty topic or notes clear the
// column.
func (p *PgSQL) UpdateSession(ctx context.Context,
	userID domain.UserID,
	id domain.SessionID,
	updates storage.SessionUpdates) (*domain.StudySession, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Subject != nil {
		rec["subject"] = *updates.Subject
	}
	if updates.Topic != nil {
		rec["topic"] = nullString(*updates.Topic)
	}
	if updates.Notes != nil {
		rec["notes"] = nullString(*updates.Notes)
	}
	if updates.EndTime != nil {
		rec["end_time"] = *updates.EndTime
	}
	if updates.Duration != nil {
		rec["duration"] = *updates.Duration
	}
	if updates.Completed != nil {
		rec["completed"] = *updates.Completed
	}

	var row PgSession
	found, err := p.Builder.Update(sessionsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgSession{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update session in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteSession removes the session; its focus checks go with it through the
// foreign key cascade.
func (p *PgSQL) DeleteSession(ctx context.Context,
	userID domain.UserID,
	id domain.SessionID) (*domain.StudySession, error) {
	var row PgSession
	found, err := p.Builder.Delete(sessionsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgSession{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete session in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) SessionByID(ctx context.Context,
	userID domain.UserID,
	id domain.SessionID) (*domain.StudySession, error) {
	var row PgSession
	found, err := p.Builder.From(sessionsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch session by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserSessions returns sessions newest first unless filter.Ascending is set.
func (p *PgSQL) UserSessions(ctx context.Context,
	userID domain.UserID,
	filter storage.SessionFilter) ([]domain.StudySession, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if !filter.From.IsZero() {
		w = append(w, goqu.I("start_time").Gte(filter.From))
	}
	if !filter.To.IsZero() {
		w = append(w, goqu.I("start_time").Lt(filter.To))
	}
	if filter.CompletedOnly {
		w = append(w, goqu.I("completed").IsTrue())
	}
	if filter.SubjectID != nil {
		w = append(w, goqu.I("subject_id").Eq(uuid.UUID(*filter.SubjectID)))
	}

	ds := p.Builder.From(sessionsTable).Where(w...)
	if filter.Ascending {
		ds = ds.Order(goqu.I("start_time").Asc(), goqu.I("id").Asc())
	} else {
		ds = ds.Order(goqu.I("start_time").Desc(), goqu.I("id").Desc())
	}
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}

	var rows []PgSession
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user sessions from pg: %w", err)
	}

	return pgSessionsToDomain(rows), nil
}

func (p *PgSQL) StoreFocusChecks(ctx context.Context, checks ...domain.FocusCheck) ([]domain.FocusCheck, error) {
	if len(checks) == 0 {
		return nil, nil
	}

	rows := make([]PgFocusCheck, len(checks))
	for i, c := range checks {
		rows[i].FromDomain(c)
	}

	var result []PgFocusCheck
	if err := p.Builder.Insert(focusChecksTable).
		Rows(rows).
		Returning(&PgFocusCheck{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store focus checks into pg: %w", err)
	}

	return pgFocusChecksToDomain(result), nil
}

func (p *PgSQL) SessionFocusChecks(ctx context.Context, sessionIDs ...domain.SessionID) ([]domain.FocusCheck, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(sessionIDs))
	for _, id := range sessionIDs {
		ids = append(ids, uuid.UUID(id))
	}

	var rows []PgFocusCheck
	if err := p.Builder.From(focusChecksTable).
		Where(goqu.I("session_id").In(ids)).
		Order(goqu.I("timestamp").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch focus checks from pg: %w", err)
	}

	return pgFocusChecksToDomain(rows), nil
}

func pgFocusChecksToDomain(rows []PgFocusCheck) []domain.FocusCheck {
	out := make([]domain.FocusCheck, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
