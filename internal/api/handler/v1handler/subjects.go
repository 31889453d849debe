package v1handler

import (
	"net/http"
	"studytracker/internal/study"
	"studytracker/pkg/domain"
	"studytracker/pkg/serrors"

	"github.com/go-faster/jx"
)

// ListSubjects returns the caller's subjects with topics and counts.
func (h *Handler) ListSubjects(w http.ResponseWriter, r *http.Request) error {
	subjects, err := h.deps.Study.ListSubjects(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeSubjects(e, subjects) })

	return nil
}

// GetSubject returns a subject with its recent sessions and open tasks.
func (h *Handler) GetSubject(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	subject, err := h.deps.Study.GetSubject(r.Context(), GetUserIDFromContext(r.Context()), domain.SubjectID(id))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeSubjectDetails(e, subject) })

	return nil
}

func decodeSubjectPatch(w http.ResponseWriter, r *http.Request) (study.SubjectPatch, error) {
	var patch study.SubjectPatch
	err := decodeBody(w, r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "name":
			patch.Name, err = decodeStringPtr(d)
		case "color":
			patch.Color, err = decodeStringPtr(d)
		case "icon":
			patch.Icon, err = decodeStringPtr(d)
			if err == nil && patch.Icon == nil {
				empty := ""
				patch.Icon = &empty
			}
		default:
			return d.Skip()
		}

		return fieldErr(key, err)
	})

	return patch, err
}

// CreateSubject creates a subject from {name, color?, icon?}.
func (h *Handler) CreateSubject(w http.ResponseWriter, r *http.Request) error {
	patch, err := decodeSubjectPatch(w, r)
	if err != nil {
		return err
	}

	var input study.SubjectInput
	if patch.Name != nil {
		input.Name = *patch.Name
	}
	if patch.Color != nil {
		input.Color = *patch.Color
	}
	if patch.Icon != nil {
		input.Icon = *patch.Icon
	}

	subject, err := h.deps.Study.CreateSubject(r.Context(), GetUserIDFromContext(r.Context()), input)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { encodeSubject(e, subject) })

	return nil
}

// UpdateSubject changes the fields present in the body; a null icon clears it.
func (h *Handler) UpdateSubject(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	patch, err := decodeSubjectPatch(w, r)
	if err != nil {
		return err
	}

	subject, err := h.deps.Study.UpdateSubject(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.SubjectID(id),
		patch)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeSubject(e, subject) })

	return nil
}

func (h *Handler) DeleteSubject(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	if err := h.deps.Study.DeleteSubject(r.Context(), GetUserIDFromContext(r.Context()), domain.SubjectID(id)); err != nil {
		return err //nolint: wrapcheck
	}
	writeNoContent(w)

	return nil
}

// CreateTopic adds a topic {name} to a subject.
func (h *Handler) CreateTopic(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	var name string
	if err := decodeBody(w, r, func(d *jx.Decoder, key string) error {
		if key != "name" {
			return d.Skip()
		}
		v, err := d.Str()
		name = v

		return fieldErr(key, err)
	}); err != nil {
		return err
	}

	topic, err := h.deps.Study.CreateTopic(r.Context(), GetUserIDFromContext(r.Context()), domain.SubjectID(id), name)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { encodeTopic(e, topic) })

	return nil
}

// UpdateTopicProgress sets a topic's completion percentage from {progress}.
func (h *Handler) UpdateTopicProgress(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	var progress *int
	if err := decodeBody(w, r, func(d *jx.Decoder, key string) error {
		if key != "progress" {
			return d.Skip()
		}
		var err error
		progress, err = decodeIntPtr(d)

		return fieldErr(key, err)
	}); err != nil {
		return err
	}
	if progress == nil {
		return serrors.BadRequest("progress is required")
	}

	topic, err := h.deps.Study.UpdateTopicProgress(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.TopicID(id),
		*progress)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeTopic(e, topic) })

	return nil
}
