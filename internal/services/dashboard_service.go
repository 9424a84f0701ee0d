package services

import (
	"context"
	"fmt"
	"log/slog"

	"recruitlens/internal/analytics"
	"recruitlens/pkg/contracts/domain"
)

// AlertKind names one of the four SLA alert lists.
type AlertKind string

const (
	AlertKindSourcing   AlertKind = "sourcing"
	AlertKindFeedback   AlertKind = "feedback"
	AlertKindTimeToHire AlertKind = "tth"
	AlertKindTimeToFill AlertKind = "ttf"
)

// DashboardService computes role-specific views over the current
// dataset. All computation is pure and per-request: the service reads a
// dataset snapshot, applies the requested filters and recomputes; nothing
// is cached between calls.
type DashboardService struct {
	dataset *DatasetService
	logger  *slog.Logger
}

// NewDashboardService creates a dashboard service over the dataset.
func NewDashboardService(dataset *DatasetService, logger *slog.Logger) *DashboardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{
		dataset: dataset,
		logger:  logger.With(slog.String("component", "dashboard_service")),
	}
}

// scoped returns the current dataset narrowed by the date-range filter.
func (s *DashboardService) scoped(filter domain.DateRangeFilter) []domain.CandidateRecord {
	return analytics.FilterByDateRange(s.dataset.Records(), filter)
}

// Pipeline returns the funnel metrics over the date-filtered dataset.
func (s *DashboardService) Pipeline(ctx context.Context, filter domain.DateRangeFilter) domain.PipelineMetrics {
	return analytics.CalculatePipelineMetrics(s.scoped(filter))
}

// HiringManagerPipeline returns the funnel scoped to one hiring manager.
func (s *DashboardService) HiringManagerPipeline(ctx context.Context, name string, filter domain.DateRangeFilter) domain.PipelineMetrics {
	records := analytics.FilterByHiringManager(s.scoped(filter), name)
	return analytics.CalculatePipelineMetrics(records)
}

// Recruiter returns per-recruiter metrics over the date-filtered dataset.
func (s *DashboardService) Recruiter(ctx context.Context, name string, filter domain.DateRangeFilter) domain.RecruiterMetrics {
	return analytics.CalculateRecruiterMetrics(s.scoped(filter), name)
}

// Panelist returns per-panelist metrics over the date-filtered dataset.
func (s *DashboardService) Panelist(ctx context.Context, name string, filter domain.DateRangeFilter) domain.PanelistMetrics {
	return analytics.CalculatePanelistMetrics(s.scoped(filter), name)
}

// Sources returns the source distribution over the date-filtered dataset.
func (s *DashboardService) Sources(ctx context.Context, filter domain.DateRangeFilter) []domain.SourceDistributionItem {
	return analytics.CalculateSourceDistribution(s.scoped(filter))
}

// Alerts returns one of the four SLA alert lists over the date-filtered
// dataset. The concrete element type depends on the kind.
func (s *DashboardService) Alerts(ctx context.Context, kind AlertKind, filter domain.DateRangeFilter) (interface{}, error) {
	records := s.scoped(filter)

	switch kind {
	case AlertKindSourcing:
		return analytics.SourcingSLAAlerts(records), nil
	case AlertKindFeedback:
		return analytics.FeedbackSLAAlerts(records), nil
	case AlertKindTimeToHire:
		return analytics.TimeToHireAlerts(records), nil
	case AlertKindTimeToFill:
		return analytics.TimeToFillAlerts(records), nil
	default:
		return nil, fmt.Errorf("unknown alert kind %q", kind)
	}
}
