package controller_test

import (
	"net/http"
	"net/http/httptest"
	"studytracker/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPprofMux(t *testing.T) {
	mux := controller.PprofMux()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/debug/pprof/", http.StatusOK},
		{http.MethodGet, "/debug/pprof/cmdline", http.StatusOK},
		{http.MethodGet, "/debug/pprof/goroutine?debug=1", http.StatusOK},
		{http.MethodGet, "/debug/pprof/nope", http.StatusNotFound},
		{http.MethodDelete, "/debug/pprof/cmdline", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			require.Equal(t, tt.want, rec.Code)
		})
	}
}
