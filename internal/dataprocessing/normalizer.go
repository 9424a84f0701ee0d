package dataprocessing

import (
	"log/slog"
	"strings"
	"time"

	"recruitlens/internal/config"
	"recruitlens/pkg/contracts/domain"
)

// headerMap resolves column header text to column positions for one
// dataset. Labels that repeat once per interview round are kept as
// ordered occurrence lists: the Nth occurrence of "Panelist name" belongs
// to round N. This ordinal assignment mirrors the sheet layout, which
// repeats column groups instead of naming them uniquely; reordering the
// round groups or inserting a fourth occurrence silently shifts data, so
// the loader warns when the occurrence count is not exactly NumRounds.
type headerMap struct {
	single map[string]int

	interviewDates []int
	panelists      []int
	roundStatuses  []int
	feedbackDates  []int
}

// newHeaderMap builds the column index from the trimmed header row,
// walking in column order so repeated labels land in occurrence order.
func newHeaderMap(headers []string) *headerMap {
	hm := &headerMap{single: make(map[string]int, len(headers))}

	for i, h := range headers {
		label := strings.TrimSpace(h)
		switch label {
		case config.ColInterviewDate:
			hm.interviewDates = append(hm.interviewDates, i)
		case config.ColPanelistName:
			hm.panelists = append(hm.panelists, i)
		case config.ColRoundStatus:
			hm.roundStatuses = append(hm.roundStatuses, i)
		case config.ColFeedbackDate:
			hm.feedbackDates = append(hm.feedbackDates, i)
		default:
			if _, seen := hm.single[label]; !seen {
				hm.single[label] = i
			}
		}
	}

	return hm
}

// roundCell returns the cell for the given round (0-based) from an
// occurrence list, or "" when the sheet has no such column.
func roundCell(row []string, occurrences []int, round int) string {
	if round >= len(occurrences) {
		return ""
	}
	return cellAt(row, occurrences[round])
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Normalizer turns raw sheet rows into CandidateRecords, accumulating
// data-quality counters into stats as it goes.
type Normalizer struct {
	headers *headerMap
	logger  *slog.Logger
	stats   *domain.LoadStats
}

// NewNormalizer creates a normalizer for one dataset's header row.
func NewNormalizer(headers []string, logger *slog.Logger, stats *domain.LoadStats) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	if stats == nil {
		stats = &domain.LoadStats{}
	}
	hm := newHeaderMap(headers)
	stats.PanelistColumns = len(hm.panelists)
	return &Normalizer{headers: hm, logger: logger, stats: stats}
}

// NormalizeRow maps one raw row to a CandidateRecord. The second return
// is false when the row is rejected: placeholder rows, repeated header
// rows, trailing blanks, and rows without a candidate name are spreadsheet
// noise, not candidates.
func (n *Normalizer) NormalizeRow(row []string) (domain.CandidateRecord, bool) {
	if len(row) == 0 {
		return domain.CandidateRecord{}, false
	}

	first := strings.TrimSpace(row[0])
	if first == "" || first == config.HeaderAnchor ||
		strings.Contains(strings.ToLower(first), config.PlaceholderRowText) {
		return domain.CandidateRecord{}, false
	}

	name := n.cell(row, config.ColCandidateName)
	if name == "" {
		return domain.CandidateRecord{}, false
	}

	rec := domain.CandidateRecord{
		CandidateName:   name,
		HiringManager:   n.cell(row, config.ColHiringManager),
		Skill:           n.cell(row, config.ColSkill),
		Designation:     n.cell(row, config.ColDesignation),
		PostingLocation: n.cell(row, config.ColPostingLocation),
		Recruiter:       n.cell(row, config.ColRecruiter),
		Source:          n.cell(row, config.ColSource),
		SubSource:       n.cell(row, config.ColSubSource),
		Email:           n.cell(row, config.ColEmail),
		Phone:           n.cell(row, config.ColPhone),
		Gender:          n.cell(row, config.ColGender),
		CurrentCompany:  n.cell(row, config.ColCurrentCompany),
		CurrentLocation: n.cell(row, config.ColCurrentLocation),
		NoticePeriod:    n.cell(row, config.ColNoticePeriod),
		RejectionReason: n.cell(row, config.ColRejectionReason),
	}

	rec.SrNo = int(n.number(row, config.ColSrNo))
	rec.Openings = int(n.number(row, config.ColOpenings))
	rec.TotalExperience = n.number(row, config.ColTotalExperience)
	rec.CurrentCTC = n.number(row, config.ColCurrentCTC)
	rec.ExpectedCTC = n.number(row, config.ColExpectedCTC)
	rec.SourceTTH = n.number(row, config.ColTTH)
	rec.SourceTTF = n.number(row, config.ColTTF)

	rec.RequisitionDate = n.date(row, config.ColRequisitionDate)
	rec.SourcingDate = n.date(row, config.ColSourcingDate)
	rec.ScreeningDate = n.date(row, config.ColScreeningDate)
	rec.OfferDate = n.date(row, config.ColOfferDate)
	rec.OfferAcceptDate = n.date(row, config.ColOfferAcceptDate)
	rec.JoiningDate = n.date(row, config.ColJoiningDate)

	rec.ScreeningStatus = NormalizeScreeningStatus(n.cell(row, config.ColScreeningStatus))
	rec.FinalStatus = NormalizeFinalStatus(n.cell(row, config.ColFinalStatus))

	for r := 0; r < domain.NumRounds; r++ {
		rec.Rounds[r] = domain.InterviewRound{
			Date:         n.parseDate(roundCell(row, n.headers.interviewDates, r)),
			Panelist:     roundCell(row, n.headers.panelists, r),
			Status:       NormalizeRoundStatus(roundCell(row, n.headers.roundStatuses, r)),
			FeedbackDate: n.parseDate(roundCell(row, n.headers.feedbackDates, r)),
		}
	}

	return rec, true
}

// cell returns the trimmed cell under the given header label, "" when the
// column is missing.
func (n *Normalizer) cell(row []string, label string) string {
	idx, ok := n.headers.single[label]
	if !ok {
		return ""
	}
	return cellAt(row, idx)
}

func (n *Normalizer) number(row []string, label string) float64 {
	token := n.cell(row, label)
	if token == "" {
		return 0
	}
	v, ok := ParseNumber(token)
	if !ok {
		n.stats.UnparsedNumbers++
	}
	return v
}

func (n *Normalizer) date(row []string, label string) time.Time {
	return n.parseDate(n.cell(row, label))
}

func (n *Normalizer) parseDate(token string) time.Time {
	if token == "" || token == "-" {
		return time.Time{}
	}
	t, ok := ParseDate(token)
	if !ok {
		n.stats.UnparsedDates++
	}
	return t
}

// NormalizeScreeningStatus maps free screening-status text onto the
// closed enumeration. Unrecognized text stays ScreeningUnknown; it is
// never rejected, downstream metrics bucket it separately.
func NormalizeScreeningStatus(raw string) domain.ScreeningStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cleared":
		return domain.ScreeningCleared
	case "not cleared":
		return domain.ScreeningNotCleared
	case "in progress":
		return domain.ScreeningInProgress
	}
	return domain.ScreeningUnknown
}

// NormalizeRoundStatus maps free round-outcome text onto the closed
// enumeration.
func NormalizeRoundStatus(raw string) domain.RoundStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cleared":
		return domain.RoundCleared
	case "not cleared":
		return domain.RoundNotCleared
	case "pending at r1":
		return domain.RoundPendingR1
	case "pending at r2":
		return domain.RoundPendingR2
	case "pending at r3":
		return domain.RoundPendingR3
	}
	return domain.RoundUnknown
}

// NormalizeFinalStatus maps free final-status text onto the closed
// enumeration. Rejection and on-hold match on substring because the sheet
// carries variants like "Rejected at R2" and "Req on hold - budget".
func NormalizeFinalStatus(raw string) domain.FinalStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "":
		return domain.FinalUnknown
	case strings.Contains(s, "reject"):
		return domain.FinalRejected
	case strings.Contains(s, "hold"):
		return domain.FinalOnHold
	case s == "pending at r1":
		return domain.FinalPendingR1
	case s == "pending at r2":
		return domain.FinalPendingR2
	case s == "pending at r3":
		return domain.FinalPendingR3
	case s == "yes", s == "selected":
		return domain.FinalSelected
	case s == "in progress":
		return domain.FinalInProgress
	}
	return domain.FinalUnknown
}
