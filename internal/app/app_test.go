package app

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitlens/internal/config"
	"recruitlens/internal/infrastructure"
	"recruitlens/internal/services"
)

const testCSV = `Sr No.,Candidate Name,Recruiter Name,Source
1,Asha Nair,Sam,Referral
`

func newTestApp(t *testing.T) *Application {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tracker.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))

	logger := slog.Default()
	a := &Application{
		Config: &config.Config{
			Server: config.ServerConfig{
				Port:            0,
				ReadTimeout:     5 * time.Second,
				WriteTimeout:    5 * time.Second,
				IdleTimeout:     10 * time.Second,
				ShutdownTimeout: 5 * time.Second,
			},
		},
		Logger:        logger,
		OTelProviders: &infrastructure.OTelProviders{},
	}

	a.DatasetService = services.NewDatasetService(config.DatasetConfig{Path: path}, nil, logger, nil, nil)
	a.DashboardService = services.NewDashboardService(a.DatasetService, logger)
	a.HealthService = services.NewHealthService(a.DatasetService)

	a.setupRouter()
	a.createServer()
	return a
}

func TestRouterHealth(t *testing.T) {
	a := newTestApp(t)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	require.NoError(t, a.DatasetService.Load(context.Background()))

	rec = httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterPipelineBeforeLoad(t *testing.T) {
	a := newTestApp(t)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pipeline", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterUnknownRoute(t *testing.T) {
	a := newTestApp(t)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
