package analytics

import (
	"math"

	"recruitlens/internal/config"
	"recruitlens/internal/dataprocessing"
	"recruitlens/pkg/contracts/domain"
)

// CalculatePanelistMetrics extracts every interview attributed to the
// panelist and aggregates outcome and feedback-timeliness statistics over
// them. Each (candidate, round) pair yields its own InterviewRecord, so a
// candidate interviewed by the same panelist in R1 and R3 contributes two
// records.
func CalculatePanelistMetrics(records []domain.CandidateRecord, panelist string) domain.PanelistMetrics {
	m := domain.PanelistMetrics{Panelist: panelist}

	var feedbackSum float64
	var feedbackCount int
	var roundPassed, roundFailed [domain.NumRounds]int

	for _, r := range records {
		for i, round := range r.Rounds {
			if !PanelistMatches(round.Panelist, panelist) {
				continue
			}

			iv := domain.InterviewRecord{
				CandidateName: r.CandidateName,
				Round:         i + 1,
				InterviewDate: round.Date,
				FeedbackDate:  round.FeedbackDate,
				Status:        round.Status,
			}

			if hours, ok := dataprocessing.HoursBetween(round.Date, round.FeedbackDate); ok {
				iv.FeedbackHours = hours
				iv.HasFeedbackHours = true
				iv.Alert = hours > config.FeedbackSLAHours
				if hours >= 0 {
					feedbackSum += hours
					feedbackCount++
				}
			}
			iv.PendingFeedback = domain.HasDate(round.Date) &&
				!domain.HasDate(round.FeedbackDate) &&
				round.Status.IsPending()

			m.Interviews = append(m.Interviews, iv)
			m.TotalInterviews++
			m.PerRound[i]++

			switch round.Status {
			case domain.RoundCleared:
				m.Passed++
				roundPassed[i]++
			case domain.RoundNotCleared:
				m.Failed++
				roundFailed[i]++
			default:
				// Pending-at-round states and unknown both count as open.
				m.Pending++
			}

			if iv.Alert || iv.PendingFeedback {
				m.AlertCount++
			}
		}
	}

	// Pass rate denominators hold completed interviews only; a panelist
	// with nothing completed reports 0, not NaN.
	m.PassRate = rate(m.Passed, m.Passed+m.Failed)
	for i := 0; i < domain.NumRounds; i++ {
		m.RoundPassRates[i] = rate(roundPassed[i], roundPassed[i]+roundFailed[i])
	}

	if feedbackCount > 0 {
		m.AvgFeedbackHours = math.Round(feedbackSum/float64(feedbackCount)*10) / 10
	}

	return m
}
