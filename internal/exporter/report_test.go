package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitlens/pkg/contracts/domain"
)

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func sampleRecords() []domain.CandidateRecord {
	r1 := domain.CandidateRecord{
		CandidateName:   "Asha Nair",
		Recruiter:       "Sam",
		Source:          "Referral",
		SourcingDate:    day(1),
		ScreeningDate:   day(4),
		ScreeningStatus: domain.ScreeningCleared,
		FinalStatus:     domain.FinalSelected,
	}
	r1.Rounds[0] = domain.InterviewRound{
		Date:         day(10),
		Panelist:     "Alice",
		Status:       domain.RoundCleared,
		FeedbackDate: day(11),
	}

	r2 := domain.CandidateRecord{
		CandidateName: "Ravi Kumar",
		Recruiter:     "sam",
		Source:        "Naukri",
		SourcingDate:  day(2),
		FinalStatus:   domain.FinalInProgress,
	}
	r2.Rounds[0] = domain.InterviewRound{
		Date:     day(12),
		Panelist: "alice",
		Status:   domain.RoundPendingR1,
	}

	return []domain.CandidateRecord{r1, r2}
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	w := NewReportWriter(dir, nil)

	report, err := w.WriteAll(sampleRecords(), domain.LoadStats{RowsSeen: 2, RowsKept: 2})
	require.NoError(t, err)

	for _, name := range []string{
		"pipeline_summary.csv",
		"recruiter_metrics.csv",
		"panelist_metrics.csv",
		"source_distribution.csv",
		"report.json",
	} {
		_, statErr := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, statErr, name)
	}

	assert.Equal(t, 2, report.Pipeline.Total)
	require.Len(t, report.Recruiters, 1)
	assert.Equal(t, 2, report.Recruiters[0].TotalSourced)
	require.Len(t, report.Panelists, 1)
	assert.Equal(t, 2, report.Panelists[0].TotalInterviews)
	assert.Len(t, report.Sources, 2)

	// Ravi's pending first-round feedback counts as a feedback breach.
	assert.Equal(t, 1, report.Alerts.Feedback)
}

func TestWriteAllJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewReportWriter(dir, nil)

	_, err := w.WriteAll(sampleRecords(), domain.LoadStats{})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "report.json"))
	require.NoError(t, err)

	var report CombinedReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 2, report.Pipeline.Total)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestCSVWriterBOM(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir)

	err := w.WriteCSV("out.csv", WriteOptions{
		Headers:   []string{"A", "B"},
		Records:   [][]string{{"1", "2"}},
		BOMPrefix: true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\xEF\xBB\xBF"))
	assert.Contains(t, string(data), "A,B\n1,2\n")
}

func TestDistinctNames(t *testing.T) {
	records := sampleRecords()

	assert.Equal(t, []string{"Sam"}, distinctRecruiters(records))
	assert.Equal(t, []string{"Alice"}, distinctPanelists(records))
}
