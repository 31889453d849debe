package study

import (
	"context"
	"fmt"
	"studytracker/pkg/domain"
	"studytracker/pkg/serrors"
	"studytracker/pkg/storage"
)

// ListSubjects returns the user's subjects newest first with their topics and
// session and task counts.
func (s study) ListSubjects(ctx context.Context, userID domain.UserID) ([]domain.Subject, error) {
	subjects, err := s.storage.UserSubjects(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get subjects: %w", err)
	}
	if len(subjects) == 0 {
		return subjects, nil
	}

	ids := make([]domain.SubjectID, 0, len(subjects))
	for _, sub := range subjects {
		ids = append(ids, sub.ID)
	}
	topics, err := s.storage.SubjectTopics(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("could not get topics: %w", err)
	}

	bySubject := make(map[domain.SubjectID][]domain.Topic, len(subjects))
	for _, t := range topics {
		bySubject[t.SubjectID] = append(bySubject[t.SubjectID], t)
	}
	for i := range subjects {
		subjects[i].Topics = bySubject[subjects[i].ID]
		if subjects[i].Topics == nil {
			subjects[i].Topics = []domain.Topic{}
		}
	}

	return subjects, nil
}

// GetSubject returns a subject with its topics and counts, its most recent
// sessions with their focus checks and its open tasks.
func (s study) GetSubject(ctx context.Context, userID domain.UserID, id domain.SubjectID) (*domain.SubjectDetails, error) {
	subject, err := s.storage.SubjectByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get subject: %w", err)
	}
	if subject == nil {
		return nil, serrors.NotFound("subject")
	}

	topics, err := s.storage.SubjectTopics(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get topics: %w", err)
	}
	subject.Topics = topics

	sessions, err := s.storage.UserSessions(ctx, userID, storage.SessionFilter{
		SubjectID: &id,
		Limit:     recentSessionsCount,
	})
	if err != nil {
		return nil, fmt.Errorf("could not get subject sessions: %w", err)
	}
	if err := s.withFocusChecks(ctx, sessions); err != nil {
		return nil, err
	}

	open := false
	tasks, err := s.storage.UserTasks(ctx, userID, storage.TaskFilter{
		Completed: &open,
		SubjectID: &id,
	})
	if err != nil {
		return nil, fmt.Errorf("could not get subject tasks: %w", err)
	}

	return &domain.SubjectDetails{
		Subject:        *subject,
		RecentSessions: sessions,
		OpenTasks:      tasks,
	}, nil
}

func (s study) CreateSubject(ctx context.Context, userID domain.UserID, input SubjectInput) (*domain.Subject, error) {
	name, err := validateSubjectName(input.Name)
	if err != nil {
		return nil, err
	}

	color := input.Color
	if color == "" {
		color = domain.DefaultSubjectColor
	}
	if err := validateColor(color); err != nil {
		return nil, err
	}

	subject, err := s.storage.StoreSubject(ctx, domain.Subject{
		UserID: userID,
		Name:   name,
		Color:  color,
		Icon:   input.Icon,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store subject: %w", err)
	}
	subject.Topics = []domain.Topic{}

	return subject, nil
}

// UpdateSubject changes only the fields present in patch.
func (s study) UpdateSubject(ctx context.Context,
	userID domain.UserID,
	id domain.SubjectID,
	patch SubjectPatch) (*domain.Subject, error) {
	updates := storage.SubjectUpdates{
		Color: patch.Color,
		Icon:  patch.Icon,
	}
	if patch.Name != nil {
		name, err := validateSubjectName(*patch.Name)
		if err != nil {
			return nil, err
		}
		updates.Name = &name
	}
	if patch.Color != nil {
		if err := validateColor(*patch.Color); err != nil {
			return nil, err
		}
	}
	if updates.Empty() {
		return nil, serrors.BadRequest("nothing to update")
	}

	subject, err := s.storage.UpdateSubject(ctx, userID, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update subject: %w", err)
	}
	if subject == nil {
		return nil, serrors.NotFound("subject")
	}

	return subject, nil
}

func (s study) DeleteSubject(ctx context.Context, userID domain.UserID, id domain.SubjectID) error {
	subject, err := s.storage.DeleteSubject(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete subject: %w", err)
	}
	if subject == nil {
		return serrors.NotFound("subject")
	}

	return nil
}

func (s study) CreateTopic(ctx context.Context,
	userID domain.UserID,
	subjectID domain.SubjectID,
	name string) (*domain.Topic, error) {
	name, err := validateSubjectName(name)
	if err != nil {
		return nil, serrors.BadRequest("topic name is required and must be at most %d characters", maxSubjectNameLength)
	}

	subject, err := s.storage.SubjectByID(ctx, userID, subjectID)
	if err != nil {
		return nil, fmt.Errorf("could not get subject: %w", err)
	}
	if subject == nil {
		return nil, serrors.NotFound("subject")
	}

	topic, err := s.storage.StoreTopic(ctx, domain.Topic{
		SubjectID: subjectID,
		Name:      name,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store topic: %w", err)
	}

	return topic, nil
}

func (s study) UpdateTopicProgress(ctx context.Context,
	userID domain.UserID,
	id domain.TopicID,
	progress int) (*domain.Topic, error) {
	if progress < 0 || progress > 100 {
		return nil, serrors.BadRequest("progress must be between 0 and 100")
	}

	topic, err := s.storage.UpdateTopicProgress(ctx, userID, id, progress)
	if err != nil {
		return nil, fmt.Errorf("could not update topic progress: %w", err)
	}
	if topic == nil {
		return nil, serrors.NotFound("topic")
	}

	return topic, nil
}
