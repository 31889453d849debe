package v1handler

import (
	"net/http"
	"studytracker/internal/timer"
	"studytracker/pkg/serrors"

	"github.com/go-faster/jx"
)

func writeTimerStatus(w http.ResponseWriter, status timer.Status) {
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeTimerStatus(e, &status) })
}

// TimerStatus reports the pomodoro timer. The timer belongs to the local user
// and ignores the request's user.
func (h *Handler) TimerStatus(w http.ResponseWriter, r *http.Request) error {
	writeTimerStatus(w, h.deps.Timer.Status(r.Context()))

	return nil
}

// ConfigureTimer applies {subject?, topic?, pomodoroMinutes?, breakMinutes?,
// checkIntervalMinutes?}.
func (h *Handler) ConfigureTimer(w http.ResponseWriter, r *http.Request) error {
	var settings timer.Settings
	if err := decodeBody(w, r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "subject":
			settings.Subject, err = decodeStringPtr(d)
		case "topic":
			settings.Topic, err = decodeStringPtr(d)
		case "pomodoroMinutes":
			settings.PomodoroMinutes, err = decodeIntPtr(d)
		case "breakMinutes":
			settings.BreakMinutes, err = decodeIntPtr(d)
		case "checkIntervalMinutes":
			settings.CheckIntervalMinutes, err = decodeIntPtr(d)
		default:
			return d.Skip()
		}

		return fieldErr(key, err)
	}); err != nil {
		return err
	}

	status, err := h.deps.Timer.Configure(r.Context(), settings)
	if err != nil {
		return err //nolint: wrapcheck
	}
	writeTimerStatus(w, status)

	return nil
}

func (h *Handler) StartTimer(w http.ResponseWriter, r *http.Request) error {
	status, err := h.deps.Timer.Start(r.Context())
	if err != nil {
		return err //nolint: wrapcheck
	}
	writeTimerStatus(w, status)

	return nil
}

func (h *Handler) PauseTimer(w http.ResponseWriter, r *http.Request) error {
	status, err := h.deps.Timer.Pause(r.Context())
	if err != nil {
		return err //nolint: wrapcheck
	}
	writeTimerStatus(w, status)

	return nil
}

// StopTimer ends the cycle, saving a study phase as a session.
func (h *Handler) StopTimer(w http.ResponseWriter, r *http.Request) error {
	status, err := h.deps.Timer.Stop(r.Context())
	if err != nil {
		return err //nolint: wrapcheck
	}
	writeTimerStatus(w, status)

	return nil
}

// RespondFocus answers the pending focus check with {focused}.
func (h *Handler) RespondFocus(w http.ResponseWriter, r *http.Request) error {
	var focused *bool
	if err := decodeBody(w, r, func(d *jx.Decoder, key string) error {
		if key != "focused" {
			return d.Skip()
		}
		var err error
		focused, err = decodeBoolPtr(d)

		return fieldErr(key, err)
	}); err != nil {
		return err
	}
	if focused == nil {
		return serrors.BadRequest("focused is required")
	}

	status, err := h.deps.Timer.RespondFocus(r.Context(), *focused)
	if err != nil {
		return err //nolint: wrapcheck
	}
	writeTimerStatus(w, status)

	return nil
}
