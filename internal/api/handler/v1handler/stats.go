package v1handler

import (
	"net/http"

	"github.com/go-faster/jx"
)

func (h *Handler) TodayStats(w http.ResponseWriter, r *http.Request) error {
	stats, err := h.deps.Progress.TodayStats(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeTodayStats(e, stats) })

	return nil
}

// Analytics aggregates the range named by the range query parameter
// (week, month or year).
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) error {
	analytics, err := h.deps.Progress.Analytics(r.Context(),
		GetUserIDFromContext(r.Context()),
		r.URL.Query().Get("range"))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeAnalytics(e, analytics) })

	return nil
}

func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) error {
	progress, err := h.deps.Progress.Progress(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeProgress(e, progress) })

	return nil
}
