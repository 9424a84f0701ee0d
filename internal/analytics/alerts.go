package analytics

import (
	"recruitlens/internal/config"
	"recruitlens/internal/dataprocessing"
	"recruitlens/pkg/contracts/domain"
)

// SourcingSLAAlerts lists candidates whose sourcing→screening elapsed
// time breached the 48-hour recruiter SLA. Exactly 48 hours is not a
// breach; the comparison is strictly greater-than.
func SourcingSLAAlerts(records []domain.CandidateRecord) []domain.SourcingSLAAlert {
	alerts := []domain.SourcingSLAAlert{}
	for _, r := range records {
		hours, ok := dataprocessing.HoursBetween(r.SourcingDate, r.ScreeningDate)
		if !ok || hours <= config.SourcingSLAHours {
			continue
		}
		alerts = append(alerts, domain.SourcingSLAAlert{
			CandidateName: r.CandidateName,
			Recruiter:     r.Recruiter,
			SourcingDate:  r.SourcingDate,
			ScreeningDate: r.ScreeningDate,
			ElapsedHours:  hours,
		})
	}
	return alerts
}

// FeedbackSLAAlerts lists interviews whose panelist feedback breached the
// 48-hour SLA or is indefinitely pending (interview held, no feedback
// date, round still open). Each round of each candidate is checked
// independently.
func FeedbackSLAAlerts(records []domain.CandidateRecord) []domain.FeedbackSLAAlert {
	alerts := []domain.FeedbackSLAAlert{}
	for _, r := range records {
		for i, round := range r.Rounds {
			hours, ok := dataprocessing.HoursBetween(round.Date, round.FeedbackDate)
			breached := ok && hours > config.FeedbackSLAHours
			pending := domain.HasDate(round.Date) &&
				!domain.HasDate(round.FeedbackDate) &&
				round.Status.IsPending()

			if !breached && !pending {
				continue
			}
			alerts = append(alerts, domain.FeedbackSLAAlert{
				CandidateName: r.CandidateName,
				Panelist:      round.Panelist,
				Round:         i + 1,
				InterviewDate: round.Date,
				FeedbackDate:  round.FeedbackDate,
				Status:        round.Status,
				ElapsedHours:  hours,
				Pending:       pending,
			})
		}
	}
	return alerts
}

// TimeToHireAlerts lists candidates whose screening→offer-acceptance span
// exceeded the expected time-to-hire ceiling of 30 calendar days. Both
// endpoint dates must be present; elapsed days are whole wall-clock days.
func TimeToHireAlerts(records []domain.CandidateRecord) []domain.MilestoneAlert {
	alerts := []domain.MilestoneAlert{}
	for _, r := range records {
		days, ok := dataprocessing.DaysBetween(r.ScreeningDate, r.OfferAcceptDate)
		if !ok || days <= config.TimeToHireDays {
			continue
		}
		alerts = append(alerts, domain.MilestoneAlert{
			CandidateName: r.CandidateName,
			Recruiter:     r.Recruiter,
			HiringManager: r.HiringManager,
			StartDate:     r.ScreeningDate,
			EndDate:       r.OfferAcceptDate,
			ElapsedDays:   days,
			ExpectedDays:  config.TimeToHireDays,
			OverByDays:    days - config.TimeToHireDays,
		})
	}
	return alerts
}

// TimeToFillAlerts lists candidates whose requisition→offer-acceptance
// span exceeded the expected time-to-fill ceiling of 60 calendar days.
func TimeToFillAlerts(records []domain.CandidateRecord) []domain.MilestoneAlert {
	alerts := []domain.MilestoneAlert{}
	for _, r := range records {
		days, ok := dataprocessing.DaysBetween(r.RequisitionDate, r.OfferAcceptDate)
		if !ok || days <= config.TimeToFillDays {
			continue
		}
		alerts = append(alerts, domain.MilestoneAlert{
			CandidateName: r.CandidateName,
			Recruiter:     r.Recruiter,
			HiringManager: r.HiringManager,
			StartDate:     r.RequisitionDate,
			EndDate:       r.OfferAcceptDate,
			ElapsedDays:   days,
			ExpectedDays:  config.TimeToFillDays,
			OverByDays:    days - config.TimeToFillDays,
		})
	}
	return alerts
}
