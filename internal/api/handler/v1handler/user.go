package v1handler

import (
	"context"
	"net/http"
	"studytracker/pkg/domain"
	"studytracker/pkg/serrors"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey ctxKey = "UserID"

	userIDParam  = "userId"
	userIDHeader = "X-User-Id"
)

// WithUserID stores the caller's user ID in ctx.
func WithUserID(ctx context.Context, userID domain.UserID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext returns the user ID stored by WithUserID, or the zero ID.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	userID, _ := ctx.Value(userIDKey).(domain.UserID)

	return userID
}

// withUser resolves the caller from the userId query parameter, then the
// X-User-Id header, then the configured default.
func (h *Handler) withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get(userIDParam)
		if raw == "" {
			raw = r.Header.Get(userIDHeader)
		}

		userID := h.options.DefaultUserID
		if raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				h.writeError(w, r, serrors.BadRequest("invalid user id %q", raw))

				return
			}
			userID = domain.UserID(id)
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}
