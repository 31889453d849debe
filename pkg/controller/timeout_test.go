package controller_test

import (
	"net/http"
	"net/http/httptest"
	"studytracker/pkg/controller"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const timeoutBody = `{"code":"UNAVAILABLE","message":"request timed out"}`

func TestWithTimeout_TimedOut(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/slow", nil)
	rec := httptest.NewRecorder()
	controller.WithTimeout(10*time.Millisecond, timeoutBody)(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, timeoutBody, rec.Body.String())
}

func TestWithTimeout_KeepsHandlerContentType(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	controller.WithTimeout(time.Second, timeoutBody)(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}
