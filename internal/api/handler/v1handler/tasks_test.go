package v1handler_test

import (
	"net/http"
	"studytracker/internal/study"
	"studytracker/pkg/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTasks_List(t *testing.T) {
	api := newTestAPI(t)
	subjectID := domain.SubjectID(uuid.New())
	taskID := domain.TaskID(uuid.MustParse("22222222-2222-2222-2222-222222222222"))
	due := testTime.Add(24 * time.Hour)

	api.study.EXPECT().ListTasks(gomock.Any(), defaultUser, study.TaskFilter{
		Completed: ptr(false),
		SubjectID: &subjectID,
	}).Return([]domain.Task{{
		ID:        taskID,
		UserID:    defaultUser,
		SubjectID: &subjectID,
		Title:     "Read",
		Priority:  domain.TaskPriorityHigh,
		DueDate:   &due,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}}, nil)

	status, body := api.do(t, http.MethodGet, "/tasks?completed=false&subjectId="+subjectID.String(), "")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `[{
		"id": "22222222-2222-2222-2222-222222222222",
		"userId": "00000000-0000-0000-0000-000000000001",
		"subjectId": "`+subjectID.String()+`",
		"title": "Read",
		"description": null,
		"priority": "HIGH",
		"completed": false,
		"completedAt": null,
		"dueDate": "2026-03-11T15:00:00Z",
		"createdAt": "2026-03-10T15:00:00Z",
		"updatedAt": "2026-03-10T15:00:00Z"
	}]`, body)
}

func TestTasks_ListInvalidFilter(t *testing.T) {
	api := newTestAPI(t)

	status, _ := api.do(t, http.MethodGet, "/tasks?completed=maybe", "")
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = api.do(t, http.MethodGet, "/tasks?subjectId=x", "")
	require.Equal(t, http.StatusBadRequest, status)
}

func TestTasks_Upcoming(t *testing.T) {
	api := newTestAPI(t)

	api.study.EXPECT().UpcomingTasks(gomock.Any(), defaultUser).Return(nil, nil)

	status, body := api.do(t, http.MethodGet, "/tasks/upcoming", "")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `[]`, body)
}

func TestTasks_Create(t *testing.T) {
	api := newTestAPI(t)
	due := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	api.study.EXPECT().CreateTask(gomock.Any(), defaultUser, study.TaskInput{
		Title:    "Essay",
		Priority: "low",
		DueDate:  &due,
	}).Return(&domain.Task{Title: "Essay", Priority: domain.TaskPriorityLow}, nil)

	status, body := api.do(t, http.MethodPost, "/tasks", `{"title":"Essay","priority":"low","dueDate":"2026-03-12"}`)
	require.Equal(t, http.StatusCreated, status)
	require.Contains(t, body, `"priority":"LOW"`)
}

func TestTasks_UpdateClearsNullFields(t *testing.T) {
	api := newTestAPI(t)
	id := domain.TaskID(uuid.New())

	api.study.EXPECT().UpdateTask(gomock.Any(), defaultUser, id, study.TaskPatch{
		Completed:    ptr(true),
		ClearSubject: true,
		ClearDueDate: true,
	}).Return(&domain.Task{ID: id, Completed: true, CompletedAt: &testTime}, nil)

	status, body := api.do(t, http.MethodPatch, "/tasks/"+id.String(),
		`{"completed":true,"subjectId":null,"dueDate":null}`)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, `"completedAt":"2026-03-10T15:00:00Z"`)
}

func TestTasks_ToggleAndDelete(t *testing.T) {
	api := newTestAPI(t)
	id := domain.TaskID(uuid.New())

	api.study.EXPECT().ToggleTask(gomock.Any(), defaultUser, id).Return(&domain.Task{ID: id, Completed: true}, nil)
	status, body := api.do(t, http.MethodPost, "/tasks/"+id.String()+"/toggle", "")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, `"completed":true`)

	api.study.EXPECT().DeleteTask(gomock.Any(), defaultUser, id).Return(nil)
	status, _ = api.do(t, http.MethodDelete, "/tasks/"+id.String(), "")
	require.Equal(t, http.StatusNoContent, status)
}
