package config

import "time"

// Application constants for the RecruitLens dashboard backend.
const (
	AppName    = "RecruitLens"
	AppVersion = "1.2.0"

	// EnvPrefix is the envconfig prefix for all environment overrides.
	EnvPrefix = "RECRUITLENS"

	// HeaderAnchor is the cell text that marks the real header row inside
	// the source sheet. Exports carry instructional/title rows above it.
	HeaderAnchor = "Sr No."

	// HeaderScanLimit is how many leading lines are scanned for the anchor.
	HeaderScanLimit = 10

	// PlaceholderRowText marks template rows that must never become
	// candidate records.
	PlaceholderRowText = "insert new row"

	// SLA ceilings. Hour-based ceilings use strictly-greater-than
	// semantics: exactly 48h is not a breach.
	SourcingSLAHours = 48.0
	FeedbackSLAHours = 48.0
	TimeToHireDays   = 30
	TimeToFillDays   = 60

	// Network defaults
	DefaultHTTPTimeout = 30 * time.Second
	SheetsFetchTimeout = 45 * time.Second

	// Rate limiting
	DefaultRateLimit = 100 // requests per second
	DefaultBurstSize = 50

	// File paths (relative to working directory)
	DefaultDataDir    = "data"
	DefaultLogsDir    = "logs"
	DefaultReportsDir = "data/reports"
)

// Column header labels as they appear in the source spreadsheet. The
// parser depends on exact text matches after trimming.
const (
	ColSrNo            = "Sr No."
	ColRequisitionDate = "Date of requisition raised"
	ColHiringManager   = "Hiring Manager"
	ColSkill           = "Skill"
	ColDesignation     = "Designation"
	ColPostingLocation = "Position Location"
	ColOpenings        = "No. of Openings"
	ColCandidateName   = "Candidate Name"
	ColRecruiter       = "Recruiter Name"
	ColSource          = "Source"
	ColSubSource       = "Sub Source"
	ColSourcingDate    = "Date of sourcing"
	ColEmail           = "Email ID"
	ColPhone           = "Contact No."
	ColGender          = "Gender"
	ColCurrentCompany  = "Current Company"
	ColCurrentLocation = "Current Location"
	ColTotalExperience = "Total Experience"
	ColCurrentCTC      = "Current CTC"
	ColExpectedCTC     = "Expected CTC"
	ColNoticePeriod    = "Notice Period"
	ColScreeningDate   = "Date of screening"
	ColScreeningStatus = "Screening Status"
	ColFinalStatus     = "Final Status"
	ColRejectionReason = "Reason for Rejection"
	ColOfferDate       = "Date of offer released"
	ColOfferAcceptDate = "Date of offer acceptance"
	ColJoiningDate     = "Date of joining"
	ColTTH             = "TTH"
	ColTTF             = "TTF"

	// Repeated once per interview round, disambiguated by column order:
	// the Nth occurrence belongs to round N.
	ColInterviewDate = "Date of interview"
	ColPanelistName  = "Panelist name"
	ColRoundStatus   = "Interview Status"
	ColFeedbackDate  = "Date of feedback shared"
)

// DateFormats is the ordered list of calendar-date layouts tried by the
// tolerant date parser. Order is load-bearing: the first layout that
// yields a structurally valid date wins, so ambiguous tokens like
// "01/02/2025" resolve day-first.
var DateFormats = []string{
	"2-Jan-2006",
	"2-Jan-06",
	"2006-01-02",
	"2/1/06",
	"2/1/2006",
	"1/2/2006",
}

// FallbackDateFormats are general-purpose layouts tried only after every
// entry in DateFormats fails; a fallback parse is accepted only when the
// resulting year is after MinFallbackYear.
var FallbackDateFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"2 January 2006",
	"2006/01/02",
}

// MinFallbackYear guards against nonsense low-precision fallback parses.
const MinFallbackYear = 1990
