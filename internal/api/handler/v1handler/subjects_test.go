package v1handler_test

import (
	"net/http"
	"studytracker/internal/study"
	"studytracker/pkg/domain"
	"studytracker/pkg/serrors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func TestSubjects_Create(t *testing.T) {
	api := newTestAPI(t)
	id := domain.SubjectID(uuid.MustParse("11111111-1111-1111-1111-111111111111"))

	api.study.EXPECT().CreateSubject(gomock.Any(), defaultUser, study.SubjectInput{Name: "Math", Color: "#ff0000"}).
		Return(&domain.Subject{
			ID:        id,
			UserID:    defaultUser,
			Name:      "Math",
			Color:     "#ff0000",
			CreatedAt: testTime,
			UpdatedAt: testTime,
			Topics:    []domain.Topic{},
		}, nil)

	status, body := api.do(t, http.MethodPost, "/subjects", `{"name":"Math","color":"#ff0000","extra":[1]}`)
	require.Equal(t, http.StatusCreated, status)
	require.JSONEq(t, `{
		"id": "11111111-1111-1111-1111-111111111111",
		"userId": "00000000-0000-0000-0000-000000000001",
		"name": "Math",
		"color": "#ff0000",
		"icon": null,
		"createdAt": "2026-03-10T15:00:00Z",
		"updatedAt": "2026-03-10T15:00:00Z",
		"topics": [],
		"sessionsCount": 0,
		"tasksCount": 0
	}`, body)
}

func TestSubjects_CreateValidation(t *testing.T) {
	api := newTestAPI(t)

	api.study.EXPECT().CreateSubject(gomock.Any(), defaultUser, gomock.Any()).
		Return(nil, serrors.BadRequest("subject name is required"))

	status, body := api.do(t, http.MethodPost, "/subjects", `{"color":"#ff0000"}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.JSONEq(t, `{"code":"BAD_REQUEST","message":"subject name is required"}`, body)
}

func TestSubjects_Get(t *testing.T) {
	api := newTestAPI(t)
	id := domain.SubjectID(uuid.New())

	api.study.EXPECT().GetSubject(gomock.Any(), defaultUser, id).Return(&domain.SubjectDetails{
		Subject:        domain.Subject{ID: id, Name: "Math"},
		RecentSessions: []domain.StudySession{{Subject: "Math", Duration: ptr(1500)}},
	}, nil)

	status, body := api.do(t, http.MethodGet, "/subjects/"+id.String(), "")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, `"recentSessions":[{`)
	require.Contains(t, body, `"duration":1500`)
	require.Contains(t, body, `"openTasks":[]`)
}

func TestSubjects_GetInvalidID(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.do(t, http.MethodGet, "/subjects/42", "")
	require.Equal(t, http.StatusBadRequest, status)
	require.JSONEq(t, `{"code":"BAD_REQUEST","message":"invalid id \"42\""}`, body)
}

func TestSubjects_Update(t *testing.T) {
	api := newTestAPI(t)
	id := domain.SubjectID(uuid.New())

	api.study.EXPECT().UpdateSubject(gomock.Any(), defaultUser, id, study.SubjectPatch{
		Name: ptr("Chemistry"),
		Icon: ptr(""),
	}).Return(&domain.Subject{ID: id, Name: "Chemistry"}, nil)

	status, body := api.do(t, http.MethodPatch, "/subjects/"+id.String(), `{"name":"Chemistry","icon":null}`)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, `"name":"Chemistry"`)
}

func TestSubjects_Delete(t *testing.T) {
	api := newTestAPI(t)
	id := domain.SubjectID(uuid.New())

	api.study.EXPECT().DeleteSubject(gomock.Any(), defaultUser, id).Return(nil)
	status, body := api.do(t, http.MethodDelete, "/subjects/"+id.String(), "")
	require.Equal(t, http.StatusNoContent, status)
	require.Empty(t, body)

	api.study.EXPECT().DeleteSubject(gomock.Any(), defaultUser, id).Return(serrors.NotFound("subject"))
	status, body = api.do(t, http.MethodDelete, "/subjects/"+id.String(), "")
	require.Equal(t, http.StatusNotFound, status)
	require.JSONEq(t, `{"code":"NOT_FOUND","message":"subject not found"}`, body)
}

func TestTopics(t *testing.T) {
	api := newTestAPI(t)
	subjectID := domain.SubjectID(uuid.New())
	topicID := domain.TopicID(uuid.New())

	api.study.EXPECT().CreateTopic(gomock.Any(), defaultUser, subjectID, "Limits").
		Return(&domain.Topic{ID: topicID, SubjectID: subjectID, Name: "Limits"}, nil)
	status, body := api.do(t, http.MethodPost, "/subjects/"+subjectID.String()+"/topics", `{"name":"Limits"}`)
	require.Equal(t, http.StatusCreated, status)
	require.Contains(t, body, `"progress":0`)

	api.study.EXPECT().UpdateTopicProgress(gomock.Any(), defaultUser, topicID, 80).
		Return(&domain.Topic{ID: topicID, Progress: 80}, nil)
	status, body = api.do(t, http.MethodPatch, "/topics/"+topicID.String()+"/progress", `{"progress":80}`)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, `"progress":80`)

	status, _ = api.do(t, http.MethodPatch, "/topics/"+topicID.String()+"/progress", `{}`)
	require.Equal(t, http.StatusBadRequest, status)
}
