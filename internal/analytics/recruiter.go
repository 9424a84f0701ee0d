package analytics

import (
	"math"

	"recruitlens/internal/config"
	"recruitlens/internal/dataprocessing"
	"recruitlens/pkg/contracts/domain"
)

// CalculateRecruiterMetrics computes sourcing and screening performance
// for one recruiter. The record set is scoped to the recruiter first, so
// callers pass the full (or date-filtered) dataset.
func CalculateRecruiterMetrics(records []domain.CandidateRecord, recruiter string) domain.RecruiterMetrics {
	scoped := FilterByRecruiter(records, recruiter)

	m := domain.RecruiterMetrics{
		Recruiter:    recruiter,
		TotalSourced: len(scoped),
	}

	var hoursSum float64
	var hoursCount, selected int

	for _, r := range scoped {
		switch r.ScreeningStatus {
		case domain.ScreeningCleared:
			m.ScreeningCleared++
		case domain.ScreeningNotCleared:
			m.ScreeningNotCleared++
		case domain.ScreeningInProgress:
			m.ScreeningInProgress++
		}

		if r.FinalStatus == domain.FinalSelected {
			selected++
		}

		hours, ok := dataprocessing.HoursBetween(r.SourcingDate, r.ScreeningDate)
		if !ok {
			continue
		}
		if hours > config.SourcingSLAHours {
			m.AlertCount++
		}
		// Negative deltas are data-entry artifacts; they breach nothing and
		// would drag the average below zero.
		if hours >= 0 {
			hoursSum += hours
			hoursCount++
		}
	}

	m.ScreeningRate = rate(m.ScreeningCleared, m.TotalSourced)
	m.ConversionRate = rate(selected, m.TotalSourced)
	if hoursCount > 0 {
		m.AvgSourcingToScreeningHours = math.Round(hoursSum/float64(hoursCount)*10) / 10
	}

	return m
}
