package v1handler

import (
	"net/http"
	"studytracker/internal/study"
	"studytracker/pkg/domain"

	"github.com/go-faster/jx"
)

// ListTasks returns tasks filtered by the optional completed and subjectId
// query parameters.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) error {
	completed, err := queryBool(r, "completed")
	if err != nil {
		return err
	}
	subjectID, err := queryUUID(r, "subjectId")
	if err != nil {
		return err
	}

	filter := study.TaskFilter{Completed: completed}
	if subjectID != nil {
		id := domain.SubjectID(*subjectID)
		filter.SubjectID = &id
	}

	tasks, err := h.deps.Study.ListTasks(r.Context(), GetUserIDFromContext(r.Context()), filter)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeTasks(e, tasks) })

	return nil
}

// UpcomingTasks returns open tasks due within a week.
func (h *Handler) UpcomingTasks(w http.ResponseWriter, r *http.Request) error {
	tasks, err := h.deps.Study.UpcomingTasks(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeTasks(e, tasks) })

	return nil
}

// decodeTaskPatch reads task fields. A null subjectId or dueDate sets the
// matching Clear flag.
func decodeTaskPatch(w http.ResponseWriter, r *http.Request) (study.TaskPatch, error) {
	var patch study.TaskPatch
	err := decodeBody(w, r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "title":
			patch.Title, err = decodeStringPtr(d)
		case "description":
			patch.Description, err = decodeStringPtr(d)
			if err == nil && patch.Description == nil {
				empty := ""
				patch.Description = &empty
			}
		case "priority":
			patch.Priority, err = decodeStringPtr(d)
		case "subjectId":
			patch.ClearSubject = isNull(d)
			id, derr := decodeUUIDPtr(d)
			if id != nil {
				sid := domain.SubjectID(*id)
				patch.SubjectID = &sid
			}
			err = derr
		case "dueDate":
			patch.ClearDueDate = isNull(d)
			patch.DueDate, err = decodeTimePtr(d)
		case "completed":
			patch.Completed, err = decodeBoolPtr(d)
		default:
			return d.Skip()
		}

		return fieldErr(key, err)
	})

	return patch, err
}

// CreateTask creates a task from {title, description?, priority?, subjectId?, dueDate?}.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) error {
	patch, err := decodeTaskPatch(w, r)
	if err != nil {
		return err
	}

	input := study.TaskInput{
		SubjectID: patch.SubjectID,
		DueDate:   patch.DueDate,
	}
	if patch.Title != nil {
		input.Title = *patch.Title
	}
	if patch.Description != nil {
		input.Description = *patch.Description
	}
	if patch.Priority != nil {
		input.Priority = *patch.Priority
	}

	task, err := h.deps.Study.CreateTask(r.Context(), GetUserIDFromContext(r.Context()), input)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { encodeTask(e, task) })

	return nil
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	patch, err := decodeTaskPatch(w, r)
	if err != nil {
		return err
	}

	task, err := h.deps.Study.UpdateTask(r.Context(), GetUserIDFromContext(r.Context()), domain.TaskID(id), patch)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeTask(e, task) })

	return nil
}

func (h *Handler) ToggleTask(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	task, err := h.deps.Study.ToggleTask(r.Context(), GetUserIDFromContext(r.Context()), domain.TaskID(id))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeTask(e, task) })

	return nil
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	if err := h.deps.Study.DeleteTask(r.Context(), GetUserIDFromContext(r.Context()), domain.TaskID(id)); err != nil {
		return err //nolint: wrapcheck
	}
	writeNoContent(w)

	return nil
}
