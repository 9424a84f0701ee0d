package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitlens/internal/config"
)

const trackerCSV = `Recruitment Tracker - FY26
Sr No.,Candidate Name,Recruiter Name,Source,Sub Source,Date of sourcing,Date of screening,Screening Status,Date of interview,Panelist name,Interview Status,Date of feedback shared,Final Status
1,Asha Nair,Sam,Referral,Employee,1-Jan-2025,4-Jan-2025,Cleared,10-Jan-2025,Alice,Cleared,11-Jan-2025,Selected
2,Ravi Kumar,Sam,Naukri,,2-Jan-2025,,,,,,,In progress
`

type stubFetcher struct {
	csv string
	err error
}

func (f *stubFetcher) FetchCSV(ctx context.Context) (string, error) {
	return f.csv, f.err
}

func writeTracker(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracker.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDatasetServiceLoadFromFile(t *testing.T) {
	path := writeTracker(t, trackerCSV)
	svc := NewDatasetService(config.DatasetConfig{Path: path}, nil, slog.Default(), nil, nil)

	require.True(t, svc.LoadedAt().IsZero())
	require.NoError(t, svc.Load(context.Background()))

	records := svc.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "Asha Nair", records[0].CandidateName)
	assert.Equal(t, 2, svc.Stats().RowsKept)
	assert.False(t, svc.LoadedAt().IsZero())
	assert.NotEmpty(t, svc.LoadID())
}

func TestDatasetServiceReloadReplaces(t *testing.T) {
	path := writeTracker(t, trackerCSV)
	svc := NewDatasetService(config.DatasetConfig{Path: path}, nil, slog.Default(), nil, nil)
	require.NoError(t, svc.Load(context.Background()))
	firstID := svc.LoadID()

	smaller := `Sr No.,Candidate Name,Recruiter Name
1,Only One,Sam
`
	require.NoError(t, os.WriteFile(path, []byte(smaller), 0o644))
	require.NoError(t, svc.Load(context.Background()))

	require.Len(t, svc.Records(), 1)
	assert.Equal(t, "Only One", svc.Records()[0].CandidateName)
	assert.NotEqual(t, firstID, svc.LoadID())
}

func TestDatasetServiceLoadFromSheet(t *testing.T) {
	fetcher := &stubFetcher{csv: trackerCSV}
	svc := NewDatasetService(config.DatasetConfig{SheetID: "sheet-123"}, fetcher, slog.Default(), nil, nil)

	require.NoError(t, svc.Load(context.Background()))
	assert.Len(t, svc.Records(), 2)
}

func TestDatasetServiceSheetErrors(t *testing.T) {
	t.Run("no fetcher", func(t *testing.T) {
		svc := NewDatasetService(config.DatasetConfig{SheetID: "sheet-123"}, nil, slog.Default(), nil, nil)
		assert.Error(t, svc.Load(context.Background()))
	})

	t.Run("fetch fails", func(t *testing.T) {
		fetcher := &stubFetcher{err: errors.New("quota exceeded")}
		svc := NewDatasetService(config.DatasetConfig{SheetID: "sheet-123"}, fetcher, slog.Default(), nil, nil)
		err := svc.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sheet-123")
	})
}

func TestDatasetServiceLoadErrorKeepsDataset(t *testing.T) {
	path := writeTracker(t, trackerCSV)
	svc := NewDatasetService(config.DatasetConfig{Path: path}, nil, slog.Default(), nil, nil)
	require.NoError(t, svc.Load(context.Background()))

	// A failed reload leaves the previous snapshot in place.
	require.NoError(t, os.WriteFile(path, []byte("no,anchor,here\n"), 0o644))
	require.Error(t, svc.Load(context.Background()))
	assert.Len(t, svc.Records(), 2)
}
