package controller

import (
	"net/http"
	"time"
)

// WithTimeout bounds each request to d using http.TimeoutHandler. The timeout
// answer carries body and is served as application/json.
func WithTimeout(d time.Duration, body string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		timeout := http.TimeoutHandler(next, d, body)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			timeout.ServeHTTP(&timeoutWriter{ResponseWriter: w}, r)
		})
	}
}

// timeoutWriter labels a 503 without a content type as JSON. Handlers that
// complete in time have their headers copied before WriteHeader, so only the
// timeout answer reaches it bare.
type timeoutWriter struct {
	http.ResponseWriter
}

func (tw *timeoutWriter) WriteHeader(code int) {
	if code == http.StatusServiceUnavailable && tw.Header().Get("Content-Type") == "" {
		tw.Header().Set("Content-Type", "application/json")
	}
	tw.ResponseWriter.WriteHeader(code)
}

func (tw *timeoutWriter) Unwrap() http.ResponseWriter {
	return tw.ResponseWriter
}
