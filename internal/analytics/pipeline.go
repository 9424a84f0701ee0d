package analytics

import (
	"math"

	"recruitlens/pkg/contracts/domain"
)

// CalculatePipelineMetrics computes the stage funnel over a record set in
// a single pass. An empty set yields a well-formed zero value; any filter
// combination may legitimately produce zero records.
func CalculatePipelineMetrics(records []domain.CandidateRecord) domain.PipelineMetrics {
	m := domain.PipelineMetrics{Total: len(records)}

	for _, r := range records {
		switch r.ScreeningStatus {
		case domain.ScreeningCleared:
			m.ScreeningCleared++
		case domain.ScreeningNotCleared:
			m.ScreeningNotCleared++
		case domain.ScreeningInProgress:
			m.ScreeningInProgress++
		}

		for i, round := range r.Rounds {
			switch round.Status {
			case domain.RoundCleared:
				m.Rounds[i].Cleared++
			case domain.RoundNotCleared:
				m.Rounds[i].NotCleared++
			case domain.RoundPendingR1, domain.RoundPendingR2, domain.RoundPendingR3:
				m.Rounds[i].Pending++
			}
		}

		if domain.HasDate(r.OfferDate) {
			m.Offered++
		}
		if domain.HasDate(r.JoiningDate) {
			m.Joined++
		}

		// InProgress is the union of the explicit in-progress state and the
		// pending-at-round states; unknown stays out of every bucket.
		switch r.FinalStatus {
		case domain.FinalSelected:
			m.Selected++
		case domain.FinalRejected:
			m.Rejected++
		case domain.FinalOnHold:
			m.OnHold++
		case domain.FinalInProgress, domain.FinalPendingR1, domain.FinalPendingR2, domain.FinalPendingR3:
			m.InProgress++
		}
	}

	return m
}

// rate returns num/den as a percentage rounded to one decimal place.
// A zero denominator yields 0, never NaN.
func rate(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return math.Round(float64(num)/float64(den)*1000) / 10
}
