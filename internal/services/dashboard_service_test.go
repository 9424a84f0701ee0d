package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitlens/internal/config"
	"recruitlens/pkg/contracts/domain"
)

func loadedDashboard(t *testing.T) *DashboardService {
	t.Helper()
	path := writeTracker(t, trackerCSV)
	dataset := NewDatasetService(config.DatasetConfig{Path: path}, nil, slog.Default(), nil, nil)
	require.NoError(t, dataset.Load(context.Background()))
	return NewDashboardService(dataset, slog.Default())
}

func TestDashboardPipeline(t *testing.T) {
	svc := loadedDashboard(t)

	m := svc.Pipeline(context.Background(), domain.DateRangeFilter{})
	assert.Equal(t, 2, m.Total)
	assert.Equal(t, 1, m.ScreeningCleared)
	assert.Equal(t, 1, m.Selected)
	assert.Equal(t, 1, m.InProgress)
}

func TestDashboardPipelineDateFiltered(t *testing.T) {
	svc := loadedDashboard(t)

	// Only Ravi Kumar was sourced on or after 2 Jan.
	from := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	m := svc.Pipeline(context.Background(), domain.DateRangeFilter{SourcingFrom: from})
	assert.Equal(t, 1, m.Total)
}

func TestDashboardRecruiter(t *testing.T) {
	svc := loadedDashboard(t)

	m := svc.Recruiter(context.Background(), "sam", domain.DateRangeFilter{})
	assert.Equal(t, "sam", m.Recruiter)
	assert.Equal(t, 2, m.TotalSourced)
	assert.Equal(t, 1, m.ScreeningCleared)
}

func TestDashboardPanelist(t *testing.T) {
	svc := loadedDashboard(t)

	m := svc.Panelist(context.Background(), "Alice", domain.DateRangeFilter{})
	assert.Equal(t, 1, m.TotalInterviews)
	assert.Equal(t, 1, m.Passed)
}

func TestDashboardSources(t *testing.T) {
	svc := loadedDashboard(t)

	items := svc.Sources(context.Background(), domain.DateRangeFilter{})
	require.Len(t, items, 2)
	assert.Equal(t, 50, items[0].Percentage)
}

func TestDashboardAlerts(t *testing.T) {
	svc := loadedDashboard(t)

	for _, kind := range []AlertKind{AlertKindSourcing, AlertKindFeedback, AlertKindTimeToHire, AlertKindTimeToFill} {
		out, err := svc.Alerts(context.Background(), kind, domain.DateRangeFilter{})
		require.NoError(t, err, "kind %s", kind)
		assert.NotNil(t, out)
	}

	_, err := svc.Alerts(context.Background(), AlertKind("bogus"), domain.DateRangeFilter{})
	assert.Error(t, err)
}

func TestHealthService(t *testing.T) {
	path := writeTracker(t, trackerCSV)
	dataset := NewDatasetService(config.DatasetConfig{Path: path}, nil, slog.Default(), nil, nil)
	health := NewHealthService(dataset)

	before := health.Check(context.Background())
	assert.Equal(t, "degraded", before.Status)
	assert.False(t, before.DatasetReady)

	require.NoError(t, dataset.Load(context.Background()))

	after := health.Check(context.Background())
	assert.Equal(t, "ok", after.Status)
	assert.True(t, after.DatasetReady)
	assert.Equal(t, 2, after.Records)
}
