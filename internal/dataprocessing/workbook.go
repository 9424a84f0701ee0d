package dataprocessing

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"recruitlens/internal/config"
	"recruitlens/pkg/contracts/domain"
)

// LoadWorkbook parses an .xlsx export of the candidate sheet. The sheet
// holding candidate data is located by scanning each sheet's leading rows
// for the header anchor; row semantics past that point are identical to
// the CSV path.
func (l *Loader) LoadWorkbook(path string) ([]domain.CandidateRecord, domain.LoadStats, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, domain.LoadStats{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, sheetName, err := l.findCandidateSheet(f)
	if err != nil {
		return nil, domain.LoadStats{}, err
	}

	l.logger.Info("found candidate data sheet",
		slog.String("sheet_name", sheetName),
		slog.Int("total_rows", len(rows)))

	headerIdx, found := findHeaderRow(rows)
	if !found {
		if !l.opts.LenientHeader {
			return nil, domain.LoadStats{}, ErrHeaderNotFound
		}
		l.logger.Warn("header anchor not found in sheet, parsing from first row",
			slog.String("sheet_name", sheetName))
		headerIdx = 0
	}

	if headerIdx >= len(rows) {
		return nil, domain.LoadStats{}, ErrHeaderNotFound
	}

	header := rows[headerIdx]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	next := rowIterator(rows[headerIdx+1:])
	return l.loadRows(header, next)
}

// LoadWorkbookReader is the stream variant of LoadWorkbook for callers
// that already hold the workbook bytes.
func (l *Loader) LoadWorkbookReader(r io.Reader) ([]domain.CandidateRecord, domain.LoadStats, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, domain.LoadStats{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, sheetName, err := l.findCandidateSheet(f)
	if err != nil {
		return nil, domain.LoadStats{}, err
	}

	l.logger.Info("found candidate data sheet",
		slog.String("sheet_name", sheetName),
		slog.Int("total_rows", len(rows)))

	headerIdx, found := findHeaderRow(rows)
	if !found && !l.opts.LenientHeader {
		return nil, domain.LoadStats{}, ErrHeaderNotFound
	}
	if headerIdx >= len(rows) {
		return nil, domain.LoadStats{}, ErrHeaderNotFound
	}

	header := rows[headerIdx]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	return l.loadRows(header, rowIterator(rows[headerIdx+1:]))
}

// findCandidateSheet returns the rows of the first sheet whose leading
// rows contain the header anchor, falling back to the first sheet.
func (l *Loader) findCandidateSheet(f *excelize.File) ([][]string, string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, "", fmt.Errorf("workbook has no sheets")
	}

	for _, name := range sheets {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		if _, found := findHeaderRow(rows); found {
			return rows, name, nil
		}
	}

	// No sheet carries the anchor; hand the first sheet to the caller so
	// the lenient/fail-fast decision stays in one place.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, "", fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, sheets[0], nil
}

// findHeaderRow scans the leading rows of a sheet for the anchor cell.
func findHeaderRow(rows [][]string) (int, bool) {
	limit := config.HeaderScanLimit
	if len(rows) < limit {
		limit = len(rows)
	}
	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			if strings.Contains(cell, config.HeaderAnchor) {
				return i, true
			}
		}
	}
	return 0, false
}

// rowIterator adapts a materialized row slice to the loader's row source.
func rowIterator(rows [][]string) func() ([]string, error) {
	i := 0
	return func() ([]string, error) {
		if i >= len(rows) {
			return nil, io.EOF
		}
		row := rows[i]
		i++
		return row, nil
	}
}
