package postgres

import (
	"context"
	"fmt"
	"studytracker/pkg/domain"
	"studytracker/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (p *PgSQL) StoreSubject(ctx context.Context, subject domain.Subject) (*domain.Subject, error) {
	var row PgSubject
	row.FromDomain(subject)

	var result PgSubject
	if _, err := p.Builder.Insert(subjectsTable).
		Rows(row).
		Returning(&PgSubject{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store subject into pg: %w", err)
	}

	return result.ToDomain(), nil
}

// UpdateSubject sets only the non-nil fields. An empty icon clears the column.
func (p *PgSQL) UpdateSubject(ctx context.Context,
	userID domain.UserID,
	id domain.SubjectID,
	updates storage.SubjectUpdates) (*domain.Subject, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Color != nil {
		rec["color"] = *updates.Color
	}
	if updates.Icon != nil {
		if *updates.Icon == "" {
			rec["icon"] = goqu.L("NULL")
		} else {
			rec["icon"] = *updates.Icon
		}
	}

	var row PgSubject
	found, err := p.Builder.Update(subjectsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgSubject{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update subject in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteSubject(ctx context.Context, userID domain.UserID, id domain.SubjectID) (*domain.Subject, error) {
	var row PgSubject
	found, err := p.Builder.Delete(subjectsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgSubject{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete subject in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// subjectListing selects subjects with their session and task counts,
// computed with correlated subqueries.
func (p *PgSQL) subjectListing() *goqu.SelectDataset {
	countOf := func(table, alias string) interface{} {
		return goqu.Dialect(dialect).From(table).
			Select(goqu.COUNT("*")).
			Where(goqu.T(table).Col("subject_id").Eq(goqu.T(subjectsTable).Col("id"))).
			As(alias)
	}

	return p.Builder.From(subjectsTable).
		Select(
			goqu.T(subjectsTable).All(),
			countOf(sessionsTable, "sessions_count"),
			countOf(tasksTable, "tasks_count"),
		)
}

func (p *PgSQL) SubjectByID(ctx context.Context, userID domain.UserID, id domain.SubjectID) (*domain.Subject, error) {
	var row PgSubjectListing
	found, err := p.subjectListing().
		Where(
			goqu.T(subjectsTable).Col("id").Eq(uuid.UUID(id)),
			goqu.T(subjectsTable).Col("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch subject by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserSubjects returns the user's subjects newest first with their counts.
func (p *PgSQL) UserSubjects(ctx context.Context, userID domain.UserID) ([]domain.Subject, error) {
	var rows []PgSubjectListing
	if err := p.subjectListing().
		Where(goqu.T(subjectsTable).Col("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.T(subjectsTable).Col("created_at").Desc(), goqu.T(subjectsTable).Col("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user subjects from pg: %w", err)
	}

	subjects := make([]domain.Subject, 0, len(rows))
	for i := range rows {
		subjects = append(subjects, *rows[i].ToDomain())
	}

	return subjects, nil
}

func (p *PgSQL) StoreTopic(ctx context.Context, topic domain.Topic) (*domain.Topic, error) {
	var result PgTopic
	if _, err := p.Builder.Insert(topicsTable).
		Rows(PgTopic{
			SubjectID: uuid.UUID(topic.SubjectID),
			Name:      topic.Name,
			Progress:  topic.Progress,
		}).
		Returning(&PgTopic{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store topic into pg: %w", err)
	}

	t := result.ToDomain()

	return &t, nil
}

// UpdateTopicProgress only matches topics whose subject belongs to userID.
func (p *PgSQL) UpdateTopicProgress(ctx context.Context,
	userID domain.UserID,
	id domain.TopicID,
	progress int) (*domain.Topic, error) {
	owned := goqu.Dialect(dialect).From(subjectsTable).
		Select("id").
		Where(goqu.I("user_id").Eq(uuid.UUID(userID)))

	var row PgTopic
	found, err := p.Builder.Update(topicsTable).
		Set(goqu.Record{
			"progress":   progress,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("subject_id").In(owned),
		).
		Returning(&PgTopic{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update topic progress in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	t := row.ToDomain()

	return &t, nil
}

func (p *PgSQL) SubjectTopics(ctx context.Context, subjectIDs ...domain.SubjectID) ([]domain.Topic, error) {
	if len(subjectIDs) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(subjectIDs))
	for _, id := range subjectIDs {
		ids = append(ids, uuid.UUID(id))
	}

	var rows []PgTopic
	if err := p.Builder.From(topicsTable).
		Where(goqu.I("subject_id").In(ids)).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch subject topics from pg: %w", err)
	}

	topics := make([]domain.Topic, 0, len(rows))
	for i := range rows {
		topics = append(topics, rows[i].ToDomain())
	}

	return topics, nil
}
