package dataprocessing

import (
	"strconv"
	"strings"
	"time"

	"recruitlens/internal/config"
)

// ParseDate parses an arbitrary date token from the sheet. It tries the
// configured calendar layouts in order; the first layout that yields a
// structurally valid date wins, which is how ambiguous tokens like
// "01/02/2025" resolve day-first. Tokens failing every layout go through
// the general-purpose fallback layouts and are accepted only when the
// resulting year is after 1990.
//
// Returns the zero time and false for anything unparseable. Never errors:
// a bad token is an absent value, not a failure.
func ParseDate(token string) (time.Time, bool) {
	token = strings.TrimSpace(token)
	if token == "" || token == "-" {
		return time.Time{}, false
	}

	// A leading minus followed by digits is a corrupted spreadsheet serial
	// date, not a real date.
	if isNegativeSerial(token) {
		return time.Time{}, false
	}

	for _, layout := range config.DateFormats {
		if t, err := time.Parse(layout, token); err == nil {
			return t, true
		}
	}

	for _, layout := range config.FallbackDateFormats {
		if t, err := time.Parse(layout, token); err == nil {
			if t.Year() > config.MinFallbackYear {
				return t, true
			}
			return time.Time{}, false
		}
	}

	return time.Time{}, false
}

// isNegativeSerial reports whether the token is a minus sign followed by
// digits only.
func isNegativeSerial(token string) bool {
	if len(token) < 2 || token[0] != '-' {
		return false
	}
	for _, r := range token[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseNumber parses a numeric token tolerantly: every character that is
// not a digit, decimal point, or leading minus sign is stripped before
// parsing, so currency symbols, thousands separators and unit suffixes
// ("₹12,00,000", "4.5 LPA") do not matter. Returns 0 and false when
// nothing parseable remains.
func ParseNumber(token string) (float64, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, false
	}

	var b strings.Builder
	for i, r := range token {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && i == 0:
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// HoursBetween returns the wall-clock hours elapsed from start to end.
// Absent (zero) endpoints yield false. This is the single elapsed-time
// primitive behind every SLA computation; there is no business-hours or
// calendar-day adjustment.
func HoursBetween(start, end time.Time) (float64, bool) {
	if start.IsZero() || end.IsZero() {
		return 0, false
	}
	return end.Sub(start).Hours(), true
}

// DaysBetween returns whole elapsed calendar days (truncated) from start
// to end, false when either endpoint is absent.
func DaysBetween(start, end time.Time) (int, bool) {
	hours, ok := HoursBetween(start, end)
	if !ok {
		return 0, false
	}
	return int(hours / 24), true
}
