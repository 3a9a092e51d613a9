package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "dashboard-srv/docs"
	"dashboard-srv/internal/model"
	"dashboard-srv/internal/report"
	"dashboard-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()
	cfg.Mode = gin.TestMode
	cfg.Port = 8080
	if cfg.Snapshot == nil {
		cfg.Snapshot = model.NewSnapshot(nil, nil, nil, time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC), "fp")
	}
	cfg.Targets = report.DefaultTargets()

	srv, err := New(log.NewNop(), cfg)
	require.NoError(t, err)
	require.NoError(t, srv.mapHandlers())
	return srv
}

func TestNewValidates(t *testing.T) {
	tcs := map[string]Config{
		"missing mode":     {Port: 8080, Snapshot: &model.Snapshot{}},
		"missing port":     {Mode: gin.TestMode, Snapshot: &model.Snapshot{}},
		"missing snapshot": {Mode: gin.TestMode, Port: 8080},
		"schedule without storage": {
			Mode: gin.TestMode, Port: 8080, Snapshot: &model.Snapshot{},
			Export: ExportConfig{Spec: "@daily"},
		},
	}

	for name, cfg := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := New(log.NewNop(), cfg)
			assert.Error(t, err)
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, Config{})

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Contains(t, w.Body.String(), `"fingerprint":"fp"`)
}

func TestReadyReportsTableSizes(t *testing.T) {
	snap := model.NewSnapshot(
		[]model.LogEntry{{User: "alice"}},
		[]model.ConfigEntry{{Publication: "Pub A", Grid: "G1"}, {Publication: "Pub A", Grid: "G2"}},
		[]model.TeamMember{{User: "alice", TeamGroup: "A"}, {User: "bob", TeamGroup: "B"}, {User: "carol", TeamGroup: "B"}},
		time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC), "fp",
	)
	srv := newTestServer(t, Config{Snapshot: snap})

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"log_rows":1`)
	assert.Contains(t, w.Body.String(), `"config_rows":2`)
	assert.Contains(t, w.Body.String(), `"team_rows":3`)
}

func TestSwaggerDocs(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/api/v1/users/summary"`)
	assert.Contains(t, w.Body.String(), `"/api/v1/exports"`)
}

func TestDomainRoutes(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/overview", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/exports", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicationExportRoute(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/exports/publications?date=all", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="publication_summary.csv"`, w.Header().Get("Content-Disposition"))
}
