package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitlens/internal/config"
	apierrors "recruitlens/internal/errors"
	"recruitlens/internal/services"
)

const trackerCSV = `Recruitment Tracker - FY26
Sr No.,Candidate Name,Recruiter Name,Source,Sub Source,Date of sourcing,Date of screening,Screening Status,Date of interview,Panelist name,Interview Status,Date of feedback shared,Final Status
1,Asha Nair,Sam,Referral,Employee,1-Jan-2025,4-Jan-2025,Cleared,10-Jan-2025,Alice,Cleared,11-Jan-2025,Selected
2,Ravi Kumar,Sam,Naukri,,2-Jan-2025,,,,,,,In progress
`

type testServer struct {
	router  chi.Router
	dataset *services.DatasetService
}

func newTestServer(t *testing.T, load bool) *testServer {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tracker.csv")
	require.NoError(t, os.WriteFile(path, []byte(trackerCSV), 0o644))

	logger := slog.Default()
	dataset := services.NewDatasetService(config.DatasetConfig{Path: path}, nil, logger, nil, nil)
	if load {
		require.NoError(t, dataset.Load(context.Background()))
	}

	dashboard := services.NewDashboardService(dataset, logger)
	handler := NewDashboardHandler(dashboard, dataset, logger, apierrors.NewErrorHandler(logger))

	r := chi.NewRouter()
	r.Mount("/api", handler.Routes())
	return &testServer{router: r, dataset: dataset}
}

func (s *testServer) get(t *testing.T, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestGetPipeline(t *testing.T) {
	srv := newTestServer(t, true)

	rec, body := srv.get(t, "/api/pipeline")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", body["status"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])
	assert.Equal(t, float64(1), data["selected"])
}

func TestGetPipelineDateFilter(t *testing.T) {
	srv := newTestServer(t, true)

	rec, body := srv.get(t, "/api/pipeline?sourcing_from=2025-01-02")
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])
}

func TestGetPipelineBadFilter(t *testing.T) {
	srv := newTestServer(t, true)

	rec, _ := srv.get(t, "/api/pipeline?sourcing_from=2nd-Jan")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPipelineBeforeLoad(t *testing.T) {
	srv := newTestServer(t, false)

	rec, body := srv.get(t, "/api/pipeline")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "DATASET_NOT_FOUND", errObj["error_code"])
}

func TestGetRecruiter(t *testing.T) {
	srv := newTestServer(t, true)

	rec, body := srv.get(t, "/api/recruiters/Sam")
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total_sourced"])
}

func TestGetPanelist(t *testing.T) {
	srv := newTestServer(t, true)

	rec, body := srv.get(t, "/api/panelists/alice")
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total_interviews"])
}

func TestGetSources(t *testing.T) {
	srv := newTestServer(t, true)

	rec, body := srv.get(t, "/api/sources")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["count"])
}

func TestGetAlerts(t *testing.T) {
	srv := newTestServer(t, true)

	for _, kind := range []string{"sourcing", "feedback", "tth", "ttf"} {
		rec, body := srv.get(t, "/api/alerts/"+kind)
		require.Equal(t, http.StatusOK, rec.Code, "kind %s", kind)
		assert.Equal(t, kind, body["kind"])
	}
}

func TestGetAlertsUnknownKind(t *testing.T) {
	srv := newTestServer(t, true)

	rec, _ := srv.get(t, "/api/alerts/bogus")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReload(t *testing.T) {
	srv := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodPost, "/api/reload", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.NotEmpty(t, body["load_id"])
	assert.Len(t, srv.dataset.Records(), 2)
}
