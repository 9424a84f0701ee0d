package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitlens/pkg/contracts/domain"
)

func TestCalculatePanelistMetrics(t *testing.T) {
	interviewed := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	records := []domain.CandidateRecord{
		{
			// Same panelist across two rounds: contributes two interview
			// records.
			CandidateName: "A",
			Rounds: [domain.NumRounds]domain.InterviewRound{
				{
					Date:         interviewed,
					Panelist:     "Alice",
					Status:       domain.RoundCleared,
					FeedbackDate: interviewed.Add(20 * time.Hour),
				},
				{},
				{
					Date:         interviewed.AddDate(0, 0, 5),
					Panelist:     "Alice (lead)",
					Status:       domain.RoundNotCleared,
					FeedbackDate: interviewed.AddDate(0, 0, 5).Add(60 * time.Hour),
				},
			},
		},
		{
			// Pending feedback: interview held, no feedback date, round open.
			CandidateName: "B",
			Rounds: [domain.NumRounds]domain.InterviewRound{
				{Date: interviewed, Panelist: "Alice", Status: domain.RoundPendingR1},
			},
		},
		{
			CandidateName: "C",
			Rounds: [domain.NumRounds]domain.InterviewRound{
				{Date: interviewed, Panelist: "Bob", Status: domain.RoundCleared},
			},
		},
	}

	m := CalculatePanelistMetrics(records, "Alice")

	require.Len(t, m.Interviews, 3)
	assert.Equal(t, 3, m.TotalInterviews)
	assert.Equal(t, [domain.NumRounds]int{2, 0, 1}, m.PerRound)

	assert.Equal(t, 1, m.Passed)
	assert.Equal(t, 1, m.Failed)
	assert.Equal(t, 1, m.Pending)
	assert.InDelta(t, 50.0, m.PassRate, 1e-9)
	assert.InDelta(t, 100.0, m.RoundPassRates[0], 1e-9)
	assert.InDelta(t, 0.0, m.RoundPassRates[2], 1e-9)

	// (20 + 60) / 2
	assert.InDelta(t, 40.0, m.AvgFeedbackHours, 1e-9)

	// One 60h feedback breach plus one pending feedback.
	assert.Equal(t, 2, m.AlertCount)

	var pending *domain.InterviewRecord
	for i := range m.Interviews {
		if m.Interviews[i].CandidateName == "B" {
			pending = &m.Interviews[i]
		}
	}
	require.NotNil(t, pending)
	assert.True(t, pending.PendingFeedback)
	assert.False(t, pending.HasFeedbackHours)
}

func TestCalculatePanelistMetricsPassRateZeroDenominator(t *testing.T) {
	records := []domain.CandidateRecord{
		{
			CandidateName: "A",
			Rounds: [domain.NumRounds]domain.InterviewRound{
				{Date: day(10), Panelist: "Alice", Status: domain.RoundPendingR1},
			},
		},
	}

	m := CalculatePanelistMetrics(records, "Alice")

	// No completed interviews: 0, never NaN.
	assert.Equal(t, 0.0, m.PassRate)
	assert.Equal(t, 1, m.Pending)
}

func TestCalculatePanelistMetricsFeedbackBoundary(t *testing.T) {
	interviewed := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	records := []domain.CandidateRecord{
		{
			CandidateName: "exact",
			Rounds: [domain.NumRounds]domain.InterviewRound{
				{
					Date:         interviewed,
					Panelist:     "Alice",
					Status:       domain.RoundCleared,
					FeedbackDate: interviewed.Add(48 * time.Hour),
				},
			},
		},
	}

	m := CalculatePanelistMetrics(records, "Alice")
	require.Len(t, m.Interviews, 1)
	assert.False(t, m.Interviews[0].Alert)
	assert.Equal(t, 0, m.AlertCount)
}

func TestCalculatePanelistMetricsEmpty(t *testing.T) {
	m := CalculatePanelistMetrics(nil, "Alice")

	assert.Empty(t, m.Interviews)
	assert.Equal(t, 0.0, m.PassRate)
	assert.Equal(t, 0.0, m.AvgFeedbackHours)
}
