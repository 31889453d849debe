package study

import (
	"context"
	"fmt"
	"studytracker/pkg/domain"
	"studytracker/pkg/serrors"
	"studytracker/pkg/storage"
)

// ListTasks returns open tasks before completed ones, each group by due date
// with undated tasks last, then newest first.
func (s study) ListTasks(ctx context.Context, userID domain.UserID, filter TaskFilter) ([]domain.Task, error) {
	tasks, err := s.storage.UserTasks(ctx, userID, storage.TaskFilter{
		Completed: filter.Completed,
		SubjectID: filter.SubjectID,
	})
	if err != nil {
		return nil, fmt.Errorf("could not get tasks: %w", err)
	}

	return tasks, nil
}

// UpcomingTasks returns open tasks due within the next seven days.
func (s study) UpcomingTasks(ctx context.Context, userID domain.UserID) ([]domain.Task, error) {
	now := s.options.Now()
	open := false

	tasks, err := s.storage.UserTasks(ctx, userID, storage.TaskFilter{
		Completed: &open,
		DueFrom:   now,
		DueTo:     now.Add(upcomingWindow),
		ByDueDate: true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not get upcoming tasks: %w", err)
	}

	return tasks, nil
}

func (s study) ensureSubject(ctx context.Context, userID domain.UserID, id *domain.SubjectID) error {
	if id == nil {
		return nil
	}

	subject, err := s.storage.SubjectByID(ctx, userID, *id)
	if err != nil {
		return fmt.Errorf("could not get subject: %w", err)
	}
	if subject == nil {
		return serrors.NotFound("subject")
	}

	return nil
}

func (s study) CreateTask(ctx context.Context, userID domain.UserID, input TaskInput) (*domain.Task, error) {
	title, err := validateTaskTitle(input.Title)
	if err != nil {
		return nil, err
	}
	priority, err := parsePriority(input.Priority)
	if err != nil {
		return nil, err
	}
	if err := s.ensureSubject(ctx, userID, input.SubjectID); err != nil {
		return nil, err
	}

	task, err := s.storage.StoreTask(ctx, domain.Task{
		UserID:      userID,
		SubjectID:   input.SubjectID,
		Title:       title,
		Description: input.Description,
		Priority:    priority,
		DueDate:     input.DueDate,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store task: %w", err)
	}

	return task, nil
}

// UpdateTask changes only the fields present in patch. Completing a task
// stamps CompletedAt unless the task already has one; reopening clears it.
func (s study) UpdateTask(ctx context.Context,
	userID domain.UserID,
	id domain.TaskID,
	patch TaskPatch) (*domain.Task, error) {
	updates := storage.TaskUpdates{
		Description:  patch.Description,
		SubjectID:    patch.SubjectID,
		DueDate:      patch.DueDate,
		Completed:    patch.Completed,
		ClearSubject: patch.ClearSubject,
		ClearDueDate: patch.ClearDueDate,
	}
	if patch.Title != nil {
		title, err := validateTaskTitle(*patch.Title)
		if err != nil {
			return nil, err
		}
		updates.Title = &title
	}
	if patch.Priority != nil {
		priority, err := parsePriority(*patch.Priority)
		if err != nil {
			return nil, err
		}
		updates.Priority = &priority
	}
	if patch.Completed != nil && *patch.Completed {
		now := s.options.Now()
		updates.CompletedAt = &now
	}
	if updates.Empty() {
		return nil, serrors.BadRequest("nothing to update")
	}
	if !patch.ClearSubject {
		if err := s.ensureSubject(ctx, userID, patch.SubjectID); err != nil {
			return nil, err
		}
	}

	task, err := s.storage.UpdateTask(ctx, userID, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update task: %w", err)
	}
	if task == nil {
		return nil, serrors.NotFound("task")
	}

	return task, nil
}

// ToggleTask flips the completion state of a task.
func (s study) ToggleTask(ctx context.Context, userID domain.UserID, id domain.TaskID) (*domain.Task, error) {
	task, err := s.storage.TaskByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get task: %w", err)
	}
	if task == nil {
		return nil, serrors.NotFound("task")
	}

	completed := !task.Completed

	return s.UpdateTask(ctx, userID, id, TaskPatch{Completed: &completed})
}

func (s study) DeleteTask(ctx context.Context, userID domain.UserID, id domain.TaskID) error {
	task, err := s.storage.DeleteTask(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete task: %w", err)
	}
	if task == nil {
		return serrors.NotFound("task")
	}

	return nil
}
