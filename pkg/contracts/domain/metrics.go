package domain

import (
	"time"
)

// PipelineMetrics is the funnel summary over a (possibly filtered) record
// set: stage-by-stage counters computed in a single pass.
type PipelineMetrics struct {
	Total int `json:"total"`

	ScreeningCleared    int `json:"screening_cleared"`
	ScreeningNotCleared int `json:"screening_not_cleared"`
	ScreeningInProgress int `json:"screening_in_progress"`

	Rounds [NumRounds]RoundFunnel `json:"rounds"`

	Offered int `json:"offered"`
	Joined  int `json:"joined"`

	Selected   int `json:"selected"`
	Rejected   int `json:"rejected"`
	InProgress int `json:"in_progress"`
	OnHold     int `json:"on_hold"`
}

// RoundFunnel holds outcome counters for one interview round.
type RoundFunnel struct {
	Cleared    int `json:"cleared"`
	NotCleared int `json:"not_cleared"`
	Pending    int `json:"pending"`
}

// RecruiterMetrics summarizes sourcing and screening performance for one
// recruiter over the records scoped to them.
type RecruiterMetrics struct {
	Recruiter    string `json:"recruiter"`
	TotalSourced int    `json:"total_sourced"`

	ScreeningCleared    int `json:"screening_cleared"`
	ScreeningNotCleared int `json:"screening_not_cleared"`
	ScreeningInProgress int `json:"screening_in_progress"`

	// ScreeningRate and ConversionRate are percentages rounded to one
	// decimal place; zero denominators yield 0.
	ScreeningRate  float64 `json:"screening_rate"`
	ConversionRate float64 `json:"conversion_rate"`

	AlertCount                  int     `json:"alert_count"`
	AvgSourcingToScreeningHours float64 `json:"avg_sourcing_to_screening_hours"`
}

// InterviewRecord is one (candidate, round) interview attributed to a
// panelist. A candidate contributes up to one record per round.
type InterviewRecord struct {
	CandidateName string      `json:"candidate_name"`
	Round         int         `json:"round"` // 1-based
	InterviewDate time.Time   `json:"interview_date"`
	FeedbackDate  time.Time   `json:"feedback_date"`
	Status        RoundStatus `json:"status"`

	// FeedbackHours is the elapsed interview→feedback wall-clock hours;
	// valid only when HasFeedbackHours is true.
	FeedbackHours    float64 `json:"feedback_hours"`
	HasFeedbackHours bool    `json:"has_feedback_hours"`

	Alert           bool `json:"alert"`
	PendingFeedback bool `json:"pending_feedback"`
}

// PanelistMetrics summarizes interview outcomes and feedback timeliness
// for one panelist.
type PanelistMetrics struct {
	Panelist   string            `json:"panelist"`
	Interviews []InterviewRecord `json:"interviews"`

	TotalInterviews int            `json:"total_interviews"`
	PerRound        [NumRounds]int `json:"per_round"`

	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Pending int `json:"pending"`

	// PassRate = passed / (passed + failed) as a percentage with one
	// decimal; rounds with no completed outcome leave the denominator
	// untouched, so an all-pending panelist reports 0.
	PassRate       float64          `json:"pass_rate"`
	RoundPassRates [NumRounds]float64 `json:"round_pass_rates"`

	AvgFeedbackHours float64 `json:"avg_feedback_hours"`
	AlertCount       int     `json:"alert_count"`
}

// SourceDistributionItem is one source bucket of the source distribution:
// count, integer-rounded percentage of the total, and the sub-source
// breakdown within the bucket.
type SourceDistributionItem struct {
	Source     string           `json:"source"`
	Count      int              `json:"count"`
	Percentage int              `json:"percentage"`
	SubSources []SubSourceCount `json:"sub_sources"`
}

// SubSourceCount is one sub-source bucket within a source.
type SubSourceCount struct {
	SubSource string `json:"sub_source"`
	Count     int    `json:"count"`
}

// SourcingSLAAlert flags a candidate whose sourcing→screening elapsed time
// breached the 48-hour recruiter SLA.
type SourcingSLAAlert struct {
	CandidateName string    `json:"candidate_name"`
	Recruiter     string    `json:"recruiter"`
	SourcingDate  time.Time `json:"sourcing_date"`
	ScreeningDate time.Time `json:"screening_date"`
	ElapsedHours  float64   `json:"elapsed_hours"`
}

// FeedbackSLAAlert flags an interview whose feedback breached the 48-hour
// panelist SLA, or whose feedback is indefinitely pending.
type FeedbackSLAAlert struct {
	CandidateName string      `json:"candidate_name"`
	Panelist      string      `json:"panelist"`
	Round         int         `json:"round"`
	InterviewDate time.Time   `json:"interview_date"`
	FeedbackDate  time.Time   `json:"feedback_date"`
	Status        RoundStatus `json:"status"`
	ElapsedHours  float64     `json:"elapsed_hours"`
	Pending       bool        `json:"pending"`
}

// MilestoneAlert flags a candidate whose elapsed days between two
// milestone dates exceeded the expected ceiling. Used for both
// time-to-hire (screening→offer acceptance, 30 days) and time-to-fill
// (requisition→offer acceptance, 60 days).
type MilestoneAlert struct {
	CandidateName string    `json:"candidate_name"`
	Recruiter     string    `json:"recruiter"`
	HiringManager string    `json:"hiring_manager"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	ElapsedDays   int       `json:"elapsed_days"`
	ExpectedDays  int       `json:"expected_days"`
	OverByDays    int       `json:"over_by_days"`
}

// DateRangeFilter bounds records on up to three date dimensions. Each
// bound is inclusive and applies only to records that carry a value for
// that dimension; records with an absent date are never excluded by a
// bound on it.
type DateRangeFilter struct {
	RequisitionFrom time.Time `json:"requisition_from"`
	RequisitionTo   time.Time `json:"requisition_to"`
	SourcingFrom    time.Time `json:"sourcing_from"`
	SourcingTo      time.Time `json:"sourcing_to"`
	ScreeningFrom   time.Time `json:"screening_from"`
	ScreeningTo     time.Time `json:"screening_to"`
}

// IsZero reports whether no bound is set.
func (f DateRangeFilter) IsZero() bool {
	return f.RequisitionFrom.IsZero() && f.RequisitionTo.IsZero() &&
		f.SourcingFrom.IsZero() && f.SourcingTo.IsZero() &&
		f.ScreeningFrom.IsZero() && f.ScreeningTo.IsZero()
}

// LoadStats reports what the loader did with the raw sheet: how many rows
// it saw, kept and skipped, and how many tokens failed primitive parsing.
// Skipped rows and unparsed tokens are not errors (tolerant parsing is the
// design goal); stats exist so data-quality drift is visible in logs and
// metrics.
type LoadStats struct {
	RowsSeen       int `json:"rows_seen"`
	RowsKept       int `json:"rows_kept"`
	RowsSkipped    int `json:"rows_skipped"`
	UnparsedDates  int `json:"unparsed_dates"`
	UnparsedNumbers int `json:"unparsed_numbers"`

	// PanelistColumns is the number of "Panelist name" occurrences seen in
	// the header row. Anything other than NumRounds means the sheet layout
	// drifted from the expected three round groups.
	PanelistColumns int `json:"panelist_columns"`
}
