package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recruitlens/pkg/contracts/domain"
)

func TestCalculatePipelineMetricsEmpty(t *testing.T) {
	m := CalculatePipelineMetrics(nil)
	assert.Equal(t, 0, m.Total)
	assert.Equal(t, 0, m.Selected)
	assert.Equal(t, 0, m.Rounds[0].Cleared)
}

func TestCalculatePipelineMetrics(t *testing.T) {
	records := []domain.CandidateRecord{
		{
			CandidateName:   "A",
			ScreeningStatus: domain.ScreeningCleared,
			Rounds: [domain.NumRounds]domain.InterviewRound{
				{Status: domain.RoundCleared},
				{Status: domain.RoundCleared},
				{Status: domain.RoundPendingR3},
			},
			FinalStatus: domain.FinalPendingR3,
		},
		{
			CandidateName:   "B",
			ScreeningStatus: domain.ScreeningCleared,
			Rounds: [domain.NumRounds]domain.InterviewRound{
				{Status: domain.RoundNotCleared},
			},
			FinalStatus: domain.FinalRejected,
		},
		{
			CandidateName:   "C",
			ScreeningStatus: domain.ScreeningNotCleared,
			FinalStatus:     domain.FinalRejected,
		},
		{
			CandidateName:   "D",
			ScreeningStatus: domain.ScreeningCleared,
			Rounds: [domain.NumRounds]domain.InterviewRound{
				{Status: domain.RoundCleared},
				{Status: domain.RoundCleared},
				{Status: domain.RoundCleared},
			},
			FinalStatus: domain.FinalSelected,
			OfferDate:   day(20),
			JoiningDate: day(28),
		},
		{
			CandidateName:   "E",
			ScreeningStatus: domain.ScreeningInProgress,
			FinalStatus:     domain.FinalInProgress,
		},
		{
			CandidateName: "F",
			FinalStatus:   domain.FinalOnHold,
		},
		{
			// Unknown everywhere: contributes to Total only.
			CandidateName: "G",
		},
	}

	m := CalculatePipelineMetrics(records)

	assert.Equal(t, 7, m.Total)
	assert.Equal(t, 3, m.ScreeningCleared)
	assert.Equal(t, 1, m.ScreeningNotCleared)
	assert.Equal(t, 1, m.ScreeningInProgress)

	assert.Equal(t, 2, m.Rounds[0].Cleared)
	assert.Equal(t, 1, m.Rounds[0].NotCleared)
	assert.Equal(t, 2, m.Rounds[1].Cleared)
	assert.Equal(t, 1, m.Rounds[2].Cleared)
	assert.Equal(t, 1, m.Rounds[2].Pending)

	assert.Equal(t, 1, m.Offered)
	assert.Equal(t, 1, m.Joined)

	assert.Equal(t, 1, m.Selected)
	assert.Equal(t, 2, m.Rejected)
	// In progress unions the explicit state with pending-at-round.
	assert.Equal(t, 2, m.InProgress)
	assert.Equal(t, 1, m.OnHold)
}

func TestRateZeroDenominator(t *testing.T) {
	assert.Equal(t, 0.0, rate(0, 0))
	assert.Equal(t, 0.0, rate(5, 0))
	assert.Equal(t, 66.7, rate(2, 3))
	assert.Equal(t, 100.0, rate(3, 3))
}
