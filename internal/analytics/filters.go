package analytics

import (
	"strings"
	"time"

	"recruitlens/pkg/contracts/domain"
)

// FilterByHiringManager selects records whose hiring-manager field
// matches name, ignoring case and surrounding whitespace.
func FilterByHiringManager(records []domain.CandidateRecord, name string) []domain.CandidateRecord {
	return filterExact(records, name, func(r domain.CandidateRecord) string { return r.HiringManager })
}

// FilterByRecruiter selects records whose recruiter field matches name,
// ignoring case and surrounding whitespace.
func FilterByRecruiter(records []domain.CandidateRecord, name string) []domain.CandidateRecord {
	return filterExact(records, name, func(r domain.CandidateRecord) string { return r.Recruiter })
}

// FilterByPanelist selects records where the panelist appears in any of
// the three interview rounds. Matching is case-insensitive substring, not
// exact: panelist cells carry annotation text ("John Doe (backup)") that
// exact matching would miss.
func FilterByPanelist(records []domain.CandidateRecord, name string) []domain.CandidateRecord {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}

	var out []domain.CandidateRecord
	for _, r := range records {
		for _, round := range r.Rounds {
			if strings.Contains(strings.ToLower(round.Panelist), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// PanelistMatches reports whether the panelist cell refers to name, using
// the same loose matching as FilterByPanelist.
func PanelistMatches(cell, name string) bool {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(cell), needle)
}

// FilterByDateRange applies up to three inclusive date-dimension bounds.
// A record with an absent date on a bounded dimension is NOT excluded by
// that bound; only a present, out-of-range value excludes it. Absence of
// data must not hide records from date-filtered views.
func FilterByDateRange(records []domain.CandidateRecord, f domain.DateRangeFilter) []domain.CandidateRecord {
	if f.IsZero() {
		return records
	}

	var out []domain.CandidateRecord
	for _, r := range records {
		if !withinBounds(r.RequisitionDate, f.RequisitionFrom, f.RequisitionTo) {
			continue
		}
		if !withinBounds(r.SourcingDate, f.SourcingFrom, f.SourcingTo) {
			continue
		}
		if !withinBounds(r.ScreeningDate, f.ScreeningFrom, f.ScreeningTo) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// withinBounds checks one date dimension against optional inclusive
// bounds. Absent values pass unconditionally.
func withinBounds(value, from, to time.Time) bool {
	if value.IsZero() {
		return true
	}
	if !from.IsZero() && value.Before(from) {
		return false
	}
	if !to.IsZero() && value.After(to) {
		return false
	}
	return true
}

func filterExact(records []domain.CandidateRecord, name string, field func(domain.CandidateRecord) string) []domain.CandidateRecord {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}

	var out []domain.CandidateRecord
	for _, r := range records {
		if strings.ToLower(strings.TrimSpace(field(r))) == needle {
			out = append(out, r)
		}
	}
	return out
}
