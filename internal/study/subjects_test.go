package study_test

import (
	"context"
	"errors"
	"strings"
	"studytracker/internal/study"
	"studytracker/pkg/domain"
	"studytracker/pkg/serrors"
	"studytracker/pkg/storage"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStudy_CreateSubject_Defaults(t *testing.T) {
	_, st, s := newTestStudy(t)

	st.EXPECT().StoreSubject(gomock.Any(), domain.Subject{
		UserID: testUser,
		Name:   "Linear Algebra",
		Color:  domain.DefaultSubjectColor,
	}).DoAndReturn(func(_ context.Context, sub domain.Subject) (*domain.Subject, error) {
		sub.ID = domain.SubjectID(uuid.New())

		return &sub, nil
	})

	got, err := s.CreateSubject(context.Background(), testUser, study.SubjectInput{Name: "  Linear Algebra "})
	require.NoError(t, err)
	require.Equal(t, "Linear Algebra", got.Name)
	require.Equal(t, domain.DefaultSubjectColor, got.Color)
	require.NotNil(t, got.Topics)
}

func TestStudy_CreateSubject_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input study.SubjectInput
	}{
		{"empty name", study.SubjectInput{Name: "   "}},
		{"long name", study.SubjectInput{Name: strings.Repeat("x", 101)}},
		{"bad color", study.SubjectInput{Name: "Math", Color: "red"}},
		{"short color", study.SubjectInput{Name: "Math", Color: "#fff"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, s := newTestStudy(t)

			_, err := s.CreateSubject(context.Background(), testUser, tt.input)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestStudy_ListSubjects_AttachesTopics(t *testing.T) {
	_, st, s := newTestStudy(t)

	a := domain.Subject{ID: domain.SubjectID(uuid.New()), Name: "A", SessionsCount: 2}
	b := domain.Subject{ID: domain.SubjectID(uuid.New()), Name: "B"}
	topic := domain.Topic{ID: domain.TopicID(uuid.New()), SubjectID: b.ID, Name: "T"}

	st.EXPECT().UserSubjects(gomock.Any(), testUser).Return([]domain.Subject{a, b}, nil)
	st.EXPECT().SubjectTopics(gomock.Any(), a.ID, b.ID).Return([]domain.Topic{topic}, nil)

	got, err := s.ListSubjects(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Empty(t, got[0].Topics)
	require.NotNil(t, got[0].Topics)
	require.Equal(t, 2, got[0].SessionsCount)
	require.Equal(t, []domain.Topic{topic}, got[1].Topics)
}

func TestStudy_GetSubject(t *testing.T) {
	_, st, s := newTestStudy(t)

	id := domain.SubjectID(uuid.New())
	open := false
	session := domain.StudySession{ID: domain.SessionID(uuid.New()), Subject: "Math"}
	check := domain.FocusCheck{ID: domain.FocusCheckID(uuid.New()), SessionID: session.ID, WasFocused: true}
	task := domain.Task{ID: domain.TaskID(uuid.New()), Title: "Read"}

	st.EXPECT().SubjectByID(gomock.Any(), testUser, id).
		Return(&domain.Subject{ID: id, Name: "Math", SessionsCount: 3, TasksCount: 2}, nil)
	st.EXPECT().SubjectTopics(gomock.Any(), id).Return(nil, nil)
	st.EXPECT().UserSessions(gomock.Any(), testUser, storage.SessionFilter{SubjectID: &id, Limit: 10}).
		Return([]domain.StudySession{session}, nil)
	st.EXPECT().SessionFocusChecks(gomock.Any(), session.ID).Return([]domain.FocusCheck{check}, nil)
	st.EXPECT().UserTasks(gomock.Any(), testUser, storage.TaskFilter{Completed: &open, SubjectID: &id}).
		Return([]domain.Task{task}, nil)

	got, err := s.GetSubject(context.Background(), testUser, id)
	require.NoError(t, err)
	require.Equal(t, "Math", got.Name)
	require.Equal(t, 3, got.SessionsCount)
	require.Equal(t, 2, got.TasksCount)
	require.Len(t, got.RecentSessions, 1)
	require.Equal(t, []domain.FocusCheck{check}, got.RecentSessions[0].FocusChecks)
	require.Equal(t, []domain.Task{task}, got.OpenTasks)
}

func TestStudy_GetSubject_NotFound(t *testing.T) {
	_, st, s := newTestStudy(t)

	st.EXPECT().SubjectByID(gomock.Any(), testUser, gomock.Any()).Return(nil, nil)

	_, err := s.GetSubject(context.Background(), testUser, domain.SubjectID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestStudy_UpdateSubject(t *testing.T) {
	_, st, s := newTestStudy(t)
	id := domain.SubjectID(uuid.New())

	t.Run("nothing to update", func(t *testing.T) {
		_, err := s.UpdateSubject(context.Background(), testUser, id, study.SubjectPatch{})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("invalid color", func(t *testing.T) {
		_, err := s.UpdateSubject(context.Background(), testUser, id, study.SubjectPatch{Color: strPtr("#12345g")})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("trims name", func(t *testing.T) {
		st.EXPECT().UpdateSubject(gomock.Any(), testUser, id, storage.SubjectUpdates{Name: strPtr("Chem")}).
			Return(&domain.Subject{ID: id, Name: "Chem"}, nil)

		got, err := s.UpdateSubject(context.Background(), testUser, id, study.SubjectPatch{Name: strPtr(" Chem ")})
		require.NoError(t, err)
		require.Equal(t, "Chem", got.Name)
	})

	t.Run("missing", func(t *testing.T) {
		st.EXPECT().UpdateSubject(gomock.Any(), testUser, id, gomock.Any()).Return(nil, nil)

		_, err := s.UpdateSubject(context.Background(), testUser, id, study.SubjectPatch{Icon: strPtr("")})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestStudy_DeleteSubject(t *testing.T) {
	_, st, s := newTestStudy(t)
	id := domain.SubjectID(uuid.New())

	st.EXPECT().DeleteSubject(gomock.Any(), testUser, id).Return(&domain.Subject{ID: id}, nil)
	require.NoError(t, s.DeleteSubject(context.Background(), testUser, id))

	st.EXPECT().DeleteSubject(gomock.Any(), testUser, id).Return(nil, nil)
	require.ErrorIs(t, s.DeleteSubject(context.Background(), testUser, id), serrors.ErrNotFound)

	boom := errors.New("boom")
	st.EXPECT().DeleteSubject(gomock.Any(), testUser, id).Return(nil, boom)
	err := s.DeleteSubject(context.Background(), testUser, id)
	require.ErrorIs(t, err, boom)
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(err))
}

func TestStudy_CreateTopic(t *testing.T) {
	_, st, s := newTestStudy(t)
	subjectID := domain.SubjectID(uuid.New())

	st.EXPECT().SubjectByID(gomock.Any(), testUser, subjectID).Return(&domain.Subject{ID: subjectID}, nil)
	st.EXPECT().StoreTopic(gomock.Any(), domain.Topic{SubjectID: subjectID, Name: "Limits"}).
		Return(&domain.Topic{SubjectID: subjectID, Name: "Limits"}, nil)

	got, err := s.CreateTopic(context.Background(), testUser, subjectID, "Limits")
	require.NoError(t, err)
	require.Equal(t, "Limits", got.Name)

	st.EXPECT().SubjectByID(gomock.Any(), testUser, subjectID).Return(nil, nil)
	_, err = s.CreateTopic(context.Background(), testUser, subjectID, "Limits")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = s.CreateTopic(context.Background(), testUser, subjectID, "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestStudy_UpdateTopicProgress(t *testing.T) {
	_, st, s := newTestStudy(t)
	id := domain.TopicID(uuid.New())

	for _, p := range []int{-1, 101} {
		_, err := s.UpdateTopicProgress(context.Background(), testUser, id, p)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	}

	st.EXPECT().UpdateTopicProgress(gomock.Any(), testUser, id, 100).Return(&domain.Topic{ID: id, Progress: 100}, nil)
	got, err := s.UpdateTopicProgress(context.Background(), testUser, id, 100)
	require.NoError(t, err)
	require.Equal(t, 100, got.Progress)

	st.EXPECT().UpdateTopicProgress(gomock.Any(), testUser, id, 0).Return(nil, nil)
	_, err = s.UpdateTopicProgress(context.Background(), testUser, id, 0)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
