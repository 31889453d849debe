package api

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"studytracker/internal/api/handler/v1handler"
	"studytracker/internal/config"
	"studytracker/internal/timer"
	mocktimer "studytracker/internal/timer/mock"
	"studytracker/pkg/logger"
	mockstorage "studytracker/pkg/storage/mock"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.TestEnvironment)
	m.Run()
}

type testServer struct {
	timer   *mocktimer.MockTimer
	storage *mockstorage.MockStorage
	srv     *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	ts := &testServer{
		timer:   mocktimer.NewMockTimer(ctrl),
		storage: mockstorage.NewMockStorage(ctrl),
	}

	registry := prometheus.NewRegistry()
	handler, err := newHandler(Deps{
		Deps:   v1handler.Deps{Timer: ts.timer},
		Health: ts.storage,
	}, Options{
		MetricsPath:    "/metrics",
		RequestTimeout: 5 * time.Second,
		Registerer:     registry,
		Gatherer:       registry,
	})
	require.NoError(t, err)

	ts.srv = httptest.NewServer(handler)
	t.Cleanup(ts.srv.Close)

	return ts
}

func (ts *testServer) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()

	res, err := ts.srv.Client().Get(ts.srv.URL + path)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}

func TestNewOptions(t *testing.T) {
	var cfg config.Config
	cfg.HTTP.Addr = ":9000"
	cfg.HTTP.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.User.DefaultID = "00000000-0000-0000-0000-000000000001"

	opts, err := NewOptions(&cfg)
	require.NoError(t, err)
	require.Equal(t, ":9000", opts.Addr)
	require.Equal(t, []string{"http://localhost:3000"}, opts.AllowedOrigins)
	require.Equal(t, cfg.User.DefaultID, opts.HandlerOptions.DefaultUserID.String())

	cfg.User.DefaultID = "me"
	_, err = NewOptions(&cfg)
	require.Error(t, err)
}

func TestServer_V1Routes(t *testing.T) {
	ts := newTestServer(t)

	ts.timer.EXPECT().Status(gomock.Any()).Return(timer.Status{Clock: "00:00"})

	res, body := ts.get(t, "/v1/timer")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, `"clock":"00:00"`)
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_Docs(t *testing.T) {
	ts := newTestServer(t)

	res, body := ts.get(t, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))
	require.Contains(t, body, "openapi:")

	res, _ = ts.get(t, "/v1/docs/")
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t)

	ts.storage.EXPECT().Ping(gomock.Any()).Return(nil)
	res, body := ts.get(t, "/healthz")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "ok", body)

	ts.storage.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	res, _ = ts.get(t, "/healthz")
	require.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
}

func TestServer_Metrics(t *testing.T) {
	ts := newTestServer(t)

	ts.storage.EXPECT().Ping(gomock.Any()).Return(nil)
	res, _ := ts.get(t, "/healthz")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := ts.get(t, "/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "http_server_request_duration_seconds")
}
