package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"recruitlens/internal/config"
	"recruitlens/internal/dataprocessing"
	"recruitlens/internal/infrastructure"
	"recruitlens/pkg/contracts/domain"
)

// SheetFetcher retrieves the candidate sheet from a remote source as CSV
// text. Implemented by the Google Sheets ingest client.
type SheetFetcher interface {
	FetchCSV(ctx context.Context) (string, error)
}

// DatasetService owns the in-memory candidate dataset. A load replaces
// the dataset wholesale; records are immutable once loaded and every
// consumer reads through the same snapshot until the next reload.
type DatasetService struct {
	cfg     config.DatasetConfig
	loader  *dataprocessing.Loader
	fetcher SheetFetcher
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *infrastructure.DatasetMetrics

	mu       sync.RWMutex
	records  []domain.CandidateRecord
	stats    domain.LoadStats
	loadedAt time.Time
	loadID   string
}

// NewDatasetService creates the dataset service. fetcher may be nil when
// the dataset comes from a local file; tracer and metrics may be nil in
// tests and CLI use.
func NewDatasetService(cfg config.DatasetConfig, fetcher SheetFetcher, logger *slog.Logger, tracer trace.Tracer, metrics *infrastructure.DatasetMetrics) *DatasetService {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("dataset")
	}

	return &DatasetService{
		cfg:     cfg,
		loader:  dataprocessing.NewLoader(logger, dataprocessing.LoaderOptions{LenientHeader: cfg.LenientHeader}),
		fetcher: fetcher,
		logger:  logger.With(slog.String("component", "dataset_service")),
		tracer:  tracer,
		metrics: metrics,
	}
}

// Load reads the configured source and replaces the current dataset.
func (s *DatasetService) Load(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "dataset.load")
	defer span.End()

	start := time.Now()
	loadID := infrastructure.GenerateTraceID()

	records, stats, err := s.loadSource(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	s.mu.Lock()
	s.records = records
	s.stats = stats
	s.loadedAt = time.Now()
	s.loadID = loadID
	s.mu.Unlock()

	duration := time.Since(start)
	span.SetAttributes(
		attribute.Int("rows_kept", stats.RowsKept),
		attribute.Int("rows_skipped", stats.RowsSkipped),
	)

	if s.metrics != nil {
		s.metrics.LoadsTotal.Add(ctx, 1)
		s.metrics.LoadDuration.Record(ctx, duration.Seconds())
		s.metrics.RowsKept.Add(ctx, int64(stats.RowsKept))
		s.metrics.RowsSkipped.Add(ctx, int64(stats.RowsSkipped))
		s.metrics.UnparsedTokens.Add(ctx, int64(stats.UnparsedDates+stats.UnparsedNumbers))
	}

	s.logger.InfoContext(ctx, "dataset replaced",
		slog.String("load_id", loadID),
		slog.Int("records", len(records)),
		slog.Duration("duration", duration))

	return nil
}

// loadSource dispatches on the configured source kind.
func (s *DatasetService) loadSource(ctx context.Context) ([]domain.CandidateRecord, domain.LoadStats, error) {
	if s.cfg.SheetID != "" {
		if s.fetcher == nil {
			return nil, domain.LoadStats{}, fmt.Errorf("sheet_id configured but no sheet fetcher available")
		}
		content, err := s.fetcher.FetchCSV(ctx)
		if err != nil {
			return nil, domain.LoadStats{}, fmt.Errorf("fetch sheet %s: %w", s.cfg.SheetID, err)
		}
		return s.loader.LoadCSV(content)
	}

	switch strings.ToLower(filepath.Ext(s.cfg.Path)) {
	case ".xlsx", ".xlsm":
		return s.loader.LoadWorkbook(s.cfg.Path)
	default:
		data, err := os.ReadFile(s.cfg.Path)
		if err != nil {
			return nil, domain.LoadStats{}, fmt.Errorf("read dataset file: %w", err)
		}
		return s.loader.LoadCSV(string(data))
	}
}

// Records returns the current dataset snapshot. Callers must treat the
// slice as read-only; it is shared until the next reload.
func (s *DatasetService) Records() []domain.CandidateRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Stats returns the load statistics of the current dataset.
func (s *DatasetService) Stats() domain.LoadStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// LoadedAt returns when the current dataset was loaded; zero when no
// load has completed yet.
func (s *DatasetService) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// LoadID returns the identifier of the current load.
func (s *DatasetService) LoadID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadID
}
