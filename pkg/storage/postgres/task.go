package postgres

import (
	"context"
	"fmt"
	"studytracker/pkg/domain"
	"studytracker/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

func (p *PgSQL) StoreTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	var row PgTask
	row.FromDomain(task)

	var result PgTask
	if _, err := p.Builder.Insert(tasksTable).
		Rows(row).
		Returning(&PgTask{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store task into pg: %w", err)
	}

	return result.ToDomain(), nil
}

// UpdateTask sets only the non-nil fields. completed_at follows Completed:
// it is set to CompletedAt when a task becomes completed, kept when it already
// was, and cleared when reopening.
func (p *PgSQL) UpdateTask(ctx context.Context,
	userID domain.UserID,
	id domain.TaskID,
	updates storage.TaskUpdates) (*domain.Task, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Title != nil {
		rec["title"] = *updates.Title
	}
	if updates.Description != nil {
		rec["description"] = nullString(*updates.Description)
	}
	if updates.Priority != nil {
		rec["priority"] = string(*updates.Priority)
	}
	switch {
	case updates.ClearSubject:
		rec["subject_id"] = goqu.L("NULL")
	case updates.SubjectID != nil:
		rec["subject_id"] = uuid.UUID(*updates.SubjectID)
	}
	switch {
	case updates.ClearDueDate:
		rec["due_date"] = goqu.L("NULL")
	case updates.DueDate != nil:
		rec["due_date"] = *updates.DueDate
	}
	if updates.Completed != nil {
		rec["completed"] = *updates.Completed
		if *updates.Completed && updates.CompletedAt != nil {
			rec["completed_at"] = goqu.L("COALESCE(completed_at, ?)", *updates.CompletedAt)
		} else if !*updates.Completed {
			rec["completed_at"] = goqu.L("NULL")
		}
	}

	var row PgTask
	found, err := p.Builder.Update(tasksTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgTask{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update task in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteTask(ctx context.Context, userID domain.UserID, id domain.TaskID) (*domain.Task, error) {
	var row PgTask
	found, err := p.Builder.Delete(tasksTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgTask{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete task in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) TaskByID(ctx context.Context, userID domain.UserID, id domain.TaskID) (*domain.Task, error) {
	var row PgTask
	found, err := p.Builder.From(tasksTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch task by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserTasks lists open tasks before completed ones, each group by due date
// with undated tasks last, then newest first. ByDueDate orders by due date only.
func (p *PgSQL) UserTasks(ctx context.Context, userID domain.UserID, filter storage.TaskFilter) ([]domain.Task, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if filter.Completed != nil {
		w = append(w, goqu.I("completed").Eq(*filter.Completed))
	}
	if filter.SubjectID != nil {
		w = append(w, goqu.I("subject_id").Eq(uuid.UUID(*filter.SubjectID)))
	}
	if !filter.DueFrom.IsZero() {
		w = append(w, goqu.I("due_date").Gte(filter.DueFrom))
	}
	if !filter.DueTo.IsZero() {
		w = append(w, goqu.I("due_date").Lte(filter.DueTo))
	}

	order := []exp.OrderedExpression{
		goqu.I("completed").Asc(),
		goqu.I("due_date").Asc().NullsLast(),
		goqu.I("created_at").Desc(),
	}
	if filter.ByDueDate {
		order = []exp.OrderedExpression{
			goqu.I("due_date").Asc().NullsLast(),
			goqu.I("created_at").Desc(),
		}
	}

	var rows []PgTask
	if err := p.Builder.From(tasksTable).
		Where(w...).
		Order(order...).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user tasks from pg: %w", err)
	}

	return pgTasksToDomain(rows), nil
}

func (p *PgSQL) CompletedTaskCount(ctx context.Context, userID domain.UserID, from, to time.Time) (int, error) {
	var count int
	if _, err := p.Builder.From(tasksTable).
		Select(goqu.COUNT("*")).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("completed").IsTrue(),
			goqu.I("completed_at").Gte(from),
			goqu.I("completed_at").Lt(to),
		).
		Executor().ScanValContext(ctx, &count); err != nil {
		return 0, fmt.Errorf("could not count completed tasks in pg: %w", err)
	}

	return count, nil
}
