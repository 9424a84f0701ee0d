package dataprocessing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"recruitlens/internal/config"
	"recruitlens/pkg/contracts/domain"
)

// ErrHeaderNotFound is returned when no row containing the header anchor
// token appears within the first HeaderScanLimit lines of the input.
var ErrHeaderNotFound = errors.New("no header row found: anchor \"" + config.HeaderAnchor + "\" not present in leading lines")

// LoaderOptions control how tolerant the loader is about the sheet shape.
type LoaderOptions struct {
	// LenientHeader parses from line 0 when the header anchor is missing
	// instead of failing with ErrHeaderNotFound.
	LenientHeader bool
}

// Loader turns the raw text of a candidate sheet export into an ordered
// slice of normalized records. Row order is preserved from the source;
// it is never re-sorted.
type Loader struct {
	logger *slog.Logger
	opts   LoaderOptions
}

// NewLoader creates a loader with the given options.
func NewLoader(logger *slog.Logger, opts LoaderOptions) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, opts: opts}
}

// LoadCSV parses the full text content of a CSV export. Leading
// instructional/title rows above the header anchor are discarded; data
// rows are normalized one by one, dropping placeholder and blank rows.
func (l *Loader) LoadCSV(content string) ([]domain.CandidateRecord, domain.LoadStats, error) {
	lines := splitLines(content)

	start, found := findHeaderLine(lines)
	if !found {
		if !l.opts.LenientHeader {
			return nil, domain.LoadStats{}, ErrHeaderNotFound
		}
		l.logger.Warn("header anchor not found, parsing from first line",
			slog.String("anchor", config.HeaderAnchor))
		start = 0
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines[start:], "\n")))
	reader.FieldsPerRecord = -1 // exports pad rows unevenly
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, domain.LoadStats{}, ErrHeaderNotFound
		}
		return nil, domain.LoadStats{}, fmt.Errorf("read header row: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	return l.loadRows(header, func() ([]string, error) { return reader.Read() })
}

// loadRows drives the normalizer over a row source until EOF.
func (l *Loader) loadRows(header []string, next func() ([]string, error)) ([]domain.CandidateRecord, domain.LoadStats, error) {
	stats := domain.LoadStats{}
	normalizer := NewNormalizer(header, l.logger, &stats)

	if stats.PanelistColumns != domain.NumRounds {
		l.logger.Warn("unexpected panelist column count, round data may be misaligned",
			slog.Int("want", domain.NumRounds),
			slog.Int("got", stats.PanelistColumns))
	}

	var records []domain.CandidateRecord
	for {
		row, err := next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A single malformed line is sheet noise, not a failure.
			stats.RowsSeen++
			stats.RowsSkipped++
			continue
		}

		stats.RowsSeen++
		rec, ok := normalizer.NormalizeRow(row)
		if !ok {
			stats.RowsSkipped++
			continue
		}
		stats.RowsKept++
		records = append(records, rec)
	}

	l.logger.Info("dataset loaded",
		slog.Int("rows_seen", stats.RowsSeen),
		slog.Int("rows_kept", stats.RowsKept),
		slog.Int("rows_skipped", stats.RowsSkipped),
		slog.Int("unparsed_dates", stats.UnparsedDates),
		slog.Int("unparsed_numbers", stats.UnparsedNumbers))

	return records, stats, nil
}

// findHeaderLine scans the leading lines for the header anchor token.
func findHeaderLine(lines []string) (int, bool) {
	limit := config.HeaderScanLimit
	if len(lines) < limit {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		if strings.Contains(lines[i], config.HeaderAnchor) {
			return i, true
		}
	}
	return 0, false
}

func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(content, "\n")
}
