package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitlens/pkg/contracts/domain"
)

func TestSourcingSLAAlerts(t *testing.T) {
	sourced := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	records := []domain.CandidateRecord{
		{
			CandidateName: "breach",
			Recruiter:     "Sam",
			SourcingDate:  sourced,
			ScreeningDate: sourced.Add(72 * time.Hour),
		},
		{
			CandidateName: "exact-48h",
			SourcingDate:  sourced,
			ScreeningDate: sourced.Add(48 * time.Hour),
		},
		{
			CandidateName: "no-screening",
			SourcingDate:  sourced,
		},
	}

	alerts := SourcingSLAAlerts(records)
	require.Len(t, alerts, 1)
	assert.Equal(t, "breach", alerts[0].CandidateName)
	assert.Equal(t, "Sam", alerts[0].Recruiter)
	assert.InDelta(t, 72.0, alerts[0].ElapsedHours, 1e-9)
}

func TestFeedbackSLAAlerts(t *testing.T) {
	interviewed := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	records := []domain.CandidateRecord{
		{
			CandidateName: "A",
			Rounds: [domain.NumRounds]domain.InterviewRound{
				{
					// Breach: 50h to feedback.
					Date:         interviewed,
					Panelist:     "Alice",
					Status:       domain.RoundCleared,
					FeedbackDate: interviewed.Add(50 * time.Hour),
				},
				{
					// Pending: no feedback, round still open.
					Date:     interviewed.AddDate(0, 0, 3),
					Panelist: "Bob",
					Status:   domain.RoundPendingR2,
				},
				{
					// Completed round without a feedback date: the outcome is
					// recorded, nothing is pending.
					Date:     interviewed.AddDate(0, 0, 6),
					Panelist: "Carol",
					Status:   domain.RoundCleared,
				},
			},
		},
	}

	alerts := FeedbackSLAAlerts(records)
	require.Len(t, alerts, 2)

	assert.Equal(t, 1, alerts[0].Round)
	assert.Equal(t, "Alice", alerts[0].Panelist)
	assert.False(t, alerts[0].Pending)
	assert.InDelta(t, 50.0, alerts[0].ElapsedHours, 1e-9)

	assert.Equal(t, 2, alerts[1].Round)
	assert.True(t, alerts[1].Pending)
}

func TestTimeToHireAlerts(t *testing.T) {
	screened := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	records := []domain.CandidateRecord{
		{
			CandidateName:   "slow",
			Recruiter:       "Sam",
			HiringManager:   "Priya",
			ScreeningDate:   screened,
			OfferAcceptDate: screened.AddDate(0, 0, 45),
		},
		{
			CandidateName:   "exactly-30",
			ScreeningDate:   screened,
			OfferAcceptDate: screened.AddDate(0, 0, 30),
		},
		{
			CandidateName: "no-offer",
			ScreeningDate: screened,
		},
	}

	alerts := TimeToHireAlerts(records)
	require.Len(t, alerts, 1)
	assert.Equal(t, "slow", alerts[0].CandidateName)
	assert.Equal(t, 45, alerts[0].ElapsedDays)
	assert.Equal(t, 30, alerts[0].ExpectedDays)
	assert.Equal(t, 15, alerts[0].OverByDays)
}

func TestTimeToFillAlerts(t *testing.T) {
	raised := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	records := []domain.CandidateRecord{
		{
			CandidateName:   "slow-req",
			RequisitionDate: raised,
			OfferAcceptDate: raised.AddDate(0, 0, 75),
		},
		{
			CandidateName:   "on-time",
			RequisitionDate: raised,
			OfferAcceptDate: raised.AddDate(0, 0, 59),
		},
	}

	alerts := TimeToFillAlerts(records)
	require.Len(t, alerts, 1)
	assert.Equal(t, "slow-req", alerts[0].CandidateName)
	assert.Equal(t, 75, alerts[0].ElapsedDays)
	assert.Equal(t, 60, alerts[0].ExpectedDays)
	assert.Equal(t, 15, alerts[0].OverByDays)
}

func TestAlertsEmptyInput(t *testing.T) {
	assert.Empty(t, SourcingSLAAlerts(nil))
	assert.Empty(t, FeedbackSLAAlerts(nil))
	assert.Empty(t, TimeToHireAlerts(nil))
	assert.Empty(t, TimeToFillAlerts(nil))
}
