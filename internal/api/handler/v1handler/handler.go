package v1handler

import (
	"context"
	"errors"
	"net/http"
	"studytracker/internal/progress"
	"studytracker/internal/study"
	"studytracker/internal/timer"
	"studytracker/pkg/domain"
	"studytracker/pkg/logger"
	"studytracker/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services behind the v1 API.
type Deps struct {
	Study    study.Study
	Progress progress.Progress
	Timer    timer.Timer
}

// Options configure the v1 API.
type Options struct {
	// DefaultUserID is used when a request names no user.
	DefaultUserID domain.UserID
}

// Handler serves the v1 JSON API.
type Handler struct {
	deps    Deps
	options Options
}

func New(deps Deps, options Options) *Handler {
	return &Handler{
		deps:    deps,
		options: options,
	}
}

// Routes returns the v1 routes relative to the /v1 prefix.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /subjects", h.handle(h.ListSubjects))
	mux.HandleFunc("POST /subjects", h.handle(h.CreateSubject))
	mux.HandleFunc("GET /subjects/{id}", h.handle(h.GetSubject))
	mux.HandleFunc("PATCH /subjects/{id}", h.handle(h.UpdateSubject))
	mux.HandleFunc("DELETE /subjects/{id}", h.handle(h.DeleteSubject))
	mux.HandleFunc("POST /subjects/{id}/topics", h.handle(h.CreateTopic))
	mux.HandleFunc("PATCH /topics/{id}/progress", h.handle(h.UpdateTopicProgress))

	mux.HandleFunc("GET /tasks", h.handle(h.ListTasks))
	mux.HandleFunc("POST /tasks", h.handle(h.CreateTask))
	mux.HandleFunc("GET /tasks/upcoming", h.handle(h.UpcomingTasks))
	mux.HandleFunc("PATCH /tasks/{id}", h.handle(h.UpdateTask))
	mux.HandleFunc("DELETE /tasks/{id}", h.handle(h.DeleteTask))
	mux.HandleFunc("POST /tasks/{id}/toggle", h.handle(h.ToggleTask))

	mux.HandleFunc("GET /study-sessions", h.handle(h.ListSessions))
	mux.HandleFunc("POST /study-sessions", h.handle(h.CreateSession))
	mux.HandleFunc("PATCH /study-sessions/{id}", h.handle(h.UpdateSession))
	mux.HandleFunc("DELETE /study-sessions/{id}", h.handle(h.DeleteSession))
	mux.HandleFunc("GET /focus-checks", h.handle(h.SessionFocusChecks))
	mux.HandleFunc("POST /focus-checks", h.handle(h.CreateFocusCheck))

	mux.HandleFunc("GET /stats/today", h.handle(h.TodayStats))
	mux.HandleFunc("GET /analytics", h.handle(h.Analytics))
	mux.HandleFunc("GET /progress", h.handle(h.Progress))

	mux.HandleFunc("GET /timer", h.handle(h.TimerStatus))
	mux.HandleFunc("PUT /timer/settings", h.handle(h.ConfigureTimer))
	mux.HandleFunc("POST /timer/start", h.handle(h.StartTimer))
	mux.HandleFunc("POST /timer/pause", h.handle(h.PauseTimer))
	mux.HandleFunc("POST /timer/stop", h.handle(h.StopTimer))
	mux.HandleFunc("POST /timer/focus", h.handle(h.RespondFocus))

	return h.withUser(h.withJSONFallback(mux))
}

// withJSONFallback renders the mux's own not found and method not allowed
// answers in the JSON error shape.
func (h *Handler) withJSONFallback(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fallback, pattern := mux.Handler(r)
		if pattern != "" {
			mux.ServeHTTP(w, r)

			return
		}

		rec := &statusCapture{header: http.Header{}}
		fallback.ServeHTTP(rec, r)
		if rec.status == http.StatusMethodNotAllowed {
			if allow := rec.header.Get("Allow"); allow != "" {
				w.Header().Set("Allow", allow)
			}
			h.writeError(w, r, serrors.KindOnly(errMethodNotAllowed))

			return
		}
		h.writeError(w, r, serrors.KindOnly(serrors.ErrNotFound))
	})
}

// statusCapture keeps the status code and headers of a response and drops
// its body.
type statusCapture struct {
	header http.Header
	status int
}

func (c *statusCapture) Header() http.Header { return c.header }

func (c *statusCapture) WriteHeader(status int) {
	if c.status == 0 {
		c.status = status
	}
}

func (c *statusCapture) Write(b []byte) (int, error) {
	c.WriteHeader(http.StatusOK)

	return len(b), nil
}

// handlerFunc is an HTTP handler whose errors are rendered by NewError.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.writeError(w, r, err)
		}
	}
}

// Error is the JSON error body.
type Error struct {
	Code    string
	Message string
}

// ErrorStatusCode is an Error with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

var errMethodNotAllowed = serrors.NewKind("METHOD_NOT_ALLOWED") //nolint: gochecknoglobals

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:    "resource not found",
	errMethodNotAllowed:    "method not allowed",
	serrors.ErrBadRequest:  "bad request",
	serrors.ErrConflict:    "conflict",
	serrors.ErrUnavailable: "service unavailable",
}

var statusCodes = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrNotFound:    http.StatusNotFound,
	errMethodNotAllowed:    http.StatusMethodNotAllowed,
	serrors.ErrBadRequest:  http.StatusBadRequest,
	serrors.ErrConflict:    http.StatusConflict,
	serrors.ErrUnavailable: http.StatusServiceUnavailable,
}

// NewError maps err to a status code and body by its semantic kind. Internal
// errors are logged and never expose their message.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	status, ok := statusCodes[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: Error{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	message := defaultMessages[kind]
	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		message = se.Message()
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response: Error{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("code")
		e.Str(res.Response.Code)
		e.FieldStart("message")
		e.Str(res.Response.Message)
		e.ObjEnd()
	})
}
