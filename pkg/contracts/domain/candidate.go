package domain

import (
	"time"
)

// CandidateRecord represents one row of the recruitment pipeline: a single
// candidate tracked against a single requisition. Records are immutable
// after load; a fresh load replaces the dataset wholesale.
type CandidateRecord struct {
	// Identity / requisition context
	SrNo            int       `json:"sr_no"`
	RequisitionDate time.Time `json:"requisition_date"`
	HiringManager   string    `json:"hiring_manager"`
	Skill           string    `json:"skill"`
	Designation     string    `json:"designation"`
	PostingLocation string    `json:"posting_location"`
	Openings        int       `json:"openings"`

	// Candidate and sourcing
	CandidateName string    `json:"candidate_name" validate:"required"`
	Recruiter     string    `json:"recruiter"`
	Source        string    `json:"source"`
	SubSource     string    `json:"sub_source"`
	SourcingDate  time.Time `json:"sourcing_date"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Gender        string    `json:"gender,omitempty"`
	CurrentCompany  string  `json:"current_company,omitempty"`
	CurrentLocation string  `json:"current_location,omitempty"`
	TotalExperience float64 `json:"total_experience,omitempty"`
	CurrentCTC      float64 `json:"current_ctc,omitempty"`
	ExpectedCTC     float64 `json:"expected_ctc,omitempty"`
	NoticePeriod    string  `json:"notice_period,omitempty"`

	// Screening stage
	ScreeningDate   time.Time       `json:"screening_date"`
	ScreeningStatus ScreeningStatus `json:"screening_status"`

	// Interview rounds. Rounds is indexed 0..2 for R1..R3; each round is
	// independent, a candidate may have only R1 populated.
	Rounds [NumRounds]InterviewRound `json:"rounds"`

	// Outcome stage
	FinalStatus     FinalStatus `json:"final_status"`
	RejectionReason string      `json:"rejection_reason,omitempty"`
	OfferDate       time.Time   `json:"offer_date"`
	OfferAcceptDate time.Time   `json:"offer_accept_date"`
	JoiningDate     time.Time   `json:"joining_date"`

	// TTH/TTF columns as they appear in the source sheet. These are known
	// to be inconsistent and are recomputed from milestone dates; kept only
	// for reference output.
	SourceTTH float64 `json:"source_tth,omitempty"`
	SourceTTF float64 `json:"source_ttf,omitempty"`
}

// NumRounds is the number of interview rounds tracked per candidate.
const NumRounds = 3

// InterviewRound holds one interview stage of a candidate. All fields may
// be absent (zero) independently of the other rounds.
type InterviewRound struct {
	Date         time.Time   `json:"date"`
	Panelist     string      `json:"panelist"`
	Status       RoundStatus `json:"status"`
	FeedbackDate time.Time   `json:"feedback_date"`
}

// ScreeningStatus is the normalized outcome of the screening stage.
// Free text from the source sheet is normalized into one of these members;
// anything unrecognized stays ScreeningUnknown.
type ScreeningStatus string

const (
	ScreeningUnknown    ScreeningStatus = ""
	ScreeningCleared    ScreeningStatus = "Cleared"
	ScreeningNotCleared ScreeningStatus = "Not Cleared"
	ScreeningInProgress ScreeningStatus = "In progress"
)

// RoundStatus is the normalized outcome of a single interview round.
type RoundStatus string

const (
	RoundUnknown    RoundStatus = ""
	RoundCleared    RoundStatus = "Cleared"
	RoundNotCleared RoundStatus = "Not Cleared"
	RoundPendingR1  RoundStatus = "Pending at R1"
	RoundPendingR2  RoundStatus = "Pending at R2"
	RoundPendingR3  RoundStatus = "Pending at R3"
)

// IsPending reports whether the round outcome is still open: any pending
// state or an unknown/blank status.
func (s RoundStatus) IsPending() bool {
	switch s {
	case RoundPendingR1, RoundPendingR2, RoundPendingR3, RoundUnknown:
		return true
	}
	return false
}

// FinalStatus is the normalized end-state of a candidate in the pipeline.
type FinalStatus string

const (
	FinalUnknown    FinalStatus = ""
	FinalSelected   FinalStatus = "Selected"
	FinalRejected   FinalStatus = "Rejected"
	FinalInProgress FinalStatus = "In progress"
	FinalOnHold     FinalStatus = "Req on hold"
	FinalPendingR1  FinalStatus = "Pending at R1"
	FinalPendingR2  FinalStatus = "Pending at R2"
	FinalPendingR3  FinalStatus = "Pending at R3"
)

// IsOpen reports whether the candidate is still active in the pipeline:
// explicitly in progress, pending at any round, or unknown.
func (s FinalStatus) IsOpen() bool {
	switch s {
	case FinalInProgress, FinalPendingR1, FinalPendingR2, FinalPendingR3, FinalUnknown:
		return true
	}
	return false
}

// HasDate reports whether t carries a real calendar date. The zero value
// is the "absent" state for every date field on CandidateRecord.
func HasDate(t time.Time) bool {
	return !t.IsZero()
}
