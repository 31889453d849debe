package v1handler

import (
	"net/http"
	"strconv"
	"studytracker/internal/study"
	"studytracker/pkg/domain"
	"studytracker/pkg/serrors"
	"time"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// ListSessions returns the newest sessions, or with from/to the sessions
// started in that range oldest first.
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	userID := GetUserIDFromContext(ctx)

	from, err := queryTime(r, "from")
	if err != nil {
		return err
	}
	to, err := queryTime(r, "to")
	if err != nil {
		return err
	}

	var sessions []domain.StudySession
	if !from.IsZero() || !to.IsZero() {
		sessions, err = h.deps.Study.SessionsInRange(ctx, userID, from, to)
	} else {
		var limit uint64
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if limit, err = strconv.ParseUint(raw, 10, 32); err != nil {
				return serrors.BadRequest("invalid limit %q", raw)
			}
		}
		sessions, err = h.deps.Study.ListSessions(ctx, userID, uint(limit))
	}
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeSessions(e, sessions) })

	return nil
}

// focusCheckFields decodes the fields of a focus check object into input.
func focusCheckFields(input *study.FocusCheckInput) func(d *jx.Decoder, key string) error {
	return func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "sessionId":
			var id *uuid.UUID
			if id, err = decodeUUIDPtr(d); id != nil {
				input.SessionID = domain.SessionID(*id)
			}
		case "wasFocused":
			input.WasFocused, err = d.Bool()
		case "timestamp":
			input.Timestamp, err = decodeTimePtr(d)
		default:
			return d.Skip()
		}

		return fieldErr(key, err)
	}
}

// CreateSession stores a session with optional embedded focus checks.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) error {
	var input study.SessionInput
	if err := decodeBody(w, r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "subjectId":
			var id *uuid.UUID
			if id, err = decodeUUIDPtr(d); id != nil {
				sid := domain.SubjectID(*id)
				input.SubjectID = &sid
			}
		case "subject":
			input.Subject, err = d.Str()
		case "topic":
			var s *string
			if s, err = decodeStringPtr(d); s != nil {
				input.Topic = *s
			}
		case "notes":
			var s *string
			if s, err = decodeStringPtr(d); s != nil {
				input.Notes = *s
			}
		case "startTime":
			var t *time.Time
			if t, err = decodeTimePtr(d); t != nil {
				input.StartTime = *t
			}
		case "endTime":
			input.EndTime, err = decodeTimePtr(d)
		case "duration":
			input.Duration, err = decodeIntPtr(d)
		case "studyMinutes":
			var v *int
			if v, err = decodeIntPtr(d); v != nil {
				input.StudyMinutes = *v
			}
		case "breakMinutes":
			var v *int
			if v, err = decodeIntPtr(d); v != nil {
				input.BreakMinutes = *v
			}
		case "focusChecks":
			err = d.Arr(func(d *jx.Decoder) error {
				var c study.FocusCheckInput
				if err := d.Obj(focusCheckFields(&c)); err != nil {
					return err
				}
				input.FocusChecks = append(input.FocusChecks, c)

				return nil
			})
		default:
			return d.Skip()
		}

		return fieldErr(key, err)
	}); err != nil {
		return err
	}

	session, err := h.deps.Study.CreateSession(r.Context(), GetUserIDFromContext(r.Context()), input)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { encodeSession(e, session) })

	return nil
}

func (h *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	var patch study.SessionPatch
	if err := decodeBody(w, r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "subject":
			patch.Subject, err = decodeStringPtr(d)
		case "topic":
			patch.Topic, err = decodeStringPtr(d)
		case "notes":
			patch.Notes, err = decodeStringPtr(d)
		case "endTime":
			patch.EndTime, err = decodeTimePtr(d)
		case "duration":
			patch.Duration, err = decodeIntPtr(d)
		case "completed":
			patch.Completed, err = decodeBoolPtr(d)
		default:
			return d.Skip()
		}

		return fieldErr(key, err)
	}); err != nil {
		return err
	}

	session, err := h.deps.Study.UpdateSession(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.SessionID(id),
		patch)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeSession(e, session) })

	return nil
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	if err := h.deps.Study.DeleteSession(r.Context(), GetUserIDFromContext(r.Context()), domain.SessionID(id)); err != nil {
		return err //nolint: wrapcheck
	}
	writeNoContent(w)

	return nil
}

// CreateFocusCheck records {sessionId, wasFocused, timestamp?}.
func (h *Handler) CreateFocusCheck(w http.ResponseWriter, r *http.Request) error {
	var input study.FocusCheckInput
	if err := decodeBody(w, r, focusCheckFields(&input)); err != nil {
		return err
	}

	check, err := h.deps.Study.CreateFocusCheck(r.Context(), GetUserIDFromContext(r.Context()), input)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { encodeFocusCheck(e, check) })

	return nil
}

// SessionFocusChecks lists the checks of the session named by sessionId.
func (h *Handler) SessionFocusChecks(w http.ResponseWriter, r *http.Request) error {
	sessionID, err := queryUUID(r, "sessionId")
	if err != nil {
		return err
	}
	if sessionID == nil {
		return serrors.BadRequest("session id is required")
	}

	checks, err := h.deps.Study.SessionFocusChecks(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.SessionID(*sessionID))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeFocusChecks(e, checks) })

	return nil
}
