// Package ingest fetches the candidate tracker from Google Sheets so
// the loader can consume it the same way it consumes a local CSV export.
package ingest

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"recruitlens/internal/config"
)

// SheetsClient reads a spreadsheet range through the Sheets API and
// renders it as CSV text. It implements services.SheetFetcher.
type SheetsClient struct {
	cfg    config.DatasetConfig
	svc    *sheets.Service
	logger *slog.Logger
}

// NewSheetsClient creates a Sheets API client. Authentication follows the
// dataset config: an API key if one is set, otherwise a service account
// key file, otherwise application default credentials.
func NewSheetsClient(ctx context.Context, cfg config.DatasetConfig, logger *slog.Logger) (*SheetsClient, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var opts []option.ClientOption
	switch {
	case cfg.APIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	case cfg.CredentialsFile != "":
		opts = append(opts,
			option.WithCredentialsFile(cfg.CredentialsFile),
			option.WithScopes(sheets.SpreadsheetsReadonlyScope))
	default:
		opts = append(opts, option.WithScopes(sheets.SpreadsheetsReadonlyScope))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &SheetsClient{
		cfg:    cfg,
		svc:    svc,
		logger: logger.With(slog.String("component", "sheets_client")),
	}, nil
}

// FetchCSV reads the configured range and returns it as CSV text.
func (c *SheetsClient) FetchCSV(ctx context.Context) (string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.cfg.SheetID, c.cfg.SheetRange).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("read sheet %s range %s: %w", c.cfg.SheetID, c.cfg.SheetRange, err)
	}

	c.logger.InfoContext(ctx, "sheet fetched",
		slog.String("sheet_id", c.cfg.SheetID),
		slog.Int("rows", len(resp.Values)))

	return valuesToCSV(resp.Values)
}

// valuesToCSV renders a Sheets value grid as CSV. Cells come back as
// interface{} (strings under FORMATTED_VALUE, numbers otherwise), so
// everything is stringified before encoding.
func valuesToCSV(values [][]interface{}) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	for _, row := range values {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprint(cell)
		}
		if err := w.Write(cells); err != nil {
			return "", fmt.Errorf("encode sheet row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
