package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"recruitlens/internal/analytics"
	"recruitlens/pkg/contracts/domain"
)

// ReportWriter generates the batch report set for a loaded dataset: a
// pipeline summary, per-recruiter and per-panelist metric CSVs, a source
// distribution CSV and a combined JSON report.
type ReportWriter struct {
	csv    *CSVWriter
	logger *slog.Logger
}

// NewReportWriter creates a report writer rooted at baseDir.
func NewReportWriter(baseDir string, logger *slog.Logger) *ReportWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportWriter{
		csv:    NewCSVWriter(baseDir),
		logger: logger.With(slog.String("component", "report_writer")),
	}
}

// CombinedReport is the JSON report bundling every metric view.
type CombinedReport struct {
	GeneratedAt time.Time                       `json:"generated_at"`
	Stats       domain.LoadStats                `json:"stats"`
	Pipeline    domain.PipelineMetrics          `json:"pipeline"`
	Recruiters  []domain.RecruiterMetrics       `json:"recruiters"`
	Panelists   []domain.PanelistMetrics        `json:"panelists"`
	Sources     []domain.SourceDistributionItem `json:"sources"`
	Alerts      AlertCounts                     `json:"alerts"`
}

// AlertCounts summarizes the four SLA alert lists.
type AlertCounts struct {
	Sourcing   int `json:"sourcing"`
	Feedback   int `json:"feedback"`
	TimeToHire int `json:"time_to_hire"`
	TimeToFill int `json:"time_to_fill"`
}

// WriteAll generates the full report set and returns the combined report.
func (w *ReportWriter) WriteAll(records []domain.CandidateRecord, stats domain.LoadStats) (*CombinedReport, error) {
	report := &CombinedReport{
		GeneratedAt: time.Now().UTC(),
		Stats:       stats,
		Pipeline:    analytics.CalculatePipelineMetrics(records),
		Sources:     analytics.CalculateSourceDistribution(records),
		Alerts: AlertCounts{
			Sourcing:   len(analytics.SourcingSLAAlerts(records)),
			Feedback:   len(analytics.FeedbackSLAAlerts(records)),
			TimeToHire: len(analytics.TimeToHireAlerts(records)),
			TimeToFill: len(analytics.TimeToFillAlerts(records)),
		},
	}

	for _, name := range distinctRecruiters(records) {
		report.Recruiters = append(report.Recruiters, analytics.CalculateRecruiterMetrics(records, name))
	}
	for _, name := range distinctPanelists(records) {
		report.Panelists = append(report.Panelists, analytics.CalculatePanelistMetrics(records, name))
	}

	if err := w.writePipeline(report.Pipeline); err != nil {
		return nil, err
	}
	if err := w.writeRecruiters(report.Recruiters); err != nil {
		return nil, err
	}
	if err := w.writePanelists(report.Panelists); err != nil {
		return nil, err
	}
	if err := w.writeSources(report.Sources); err != nil {
		return nil, err
	}
	if err := w.writeJSON(report); err != nil {
		return nil, err
	}

	w.logger.Info("report set generated",
		slog.Int("recruiters", len(report.Recruiters)),
		slog.Int("panelists", len(report.Panelists)))

	return report, nil
}

func (w *ReportWriter) writePipeline(m domain.PipelineMetrics) error {
	rows := [][]string{
		{"Total", itoa(m.Total)},
		{"Screening Cleared", itoa(m.ScreeningCleared)},
		{"Screening Not Cleared", itoa(m.ScreeningNotCleared)},
		{"Screening In Progress", itoa(m.ScreeningInProgress)},
	}
	for i, round := range m.Rounds {
		label := fmt.Sprintf("Round %d", i+1)
		rows = append(rows,
			[]string{label + " Cleared", itoa(round.Cleared)},
			[]string{label + " Not Cleared", itoa(round.NotCleared)},
			[]string{label + " Pending", itoa(round.Pending)},
		)
	}
	rows = append(rows,
		[]string{"Offered", itoa(m.Offered)},
		[]string{"Joined", itoa(m.Joined)},
		[]string{"Selected", itoa(m.Selected)},
		[]string{"Rejected", itoa(m.Rejected)},
		[]string{"In Progress", itoa(m.InProgress)},
		[]string{"On Hold", itoa(m.OnHold)},
	)

	return w.csv.WriteCSV("pipeline_summary.csv", WriteOptions{
		Headers:   []string{"Stage", "Count"},
		Records:   rows,
		BOMPrefix: true,
	})
}

func (w *ReportWriter) writeRecruiters(metrics []domain.RecruiterMetrics) error {
	rows := make([][]string, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, []string{
			m.Recruiter,
			itoa(m.TotalSourced),
			itoa(m.ScreeningCleared),
			itoa(m.ScreeningNotCleared),
			itoa(m.ScreeningInProgress),
			ftoa(m.ScreeningRate),
			ftoa(m.ConversionRate),
			itoa(m.AlertCount),
			ftoa(m.AvgSourcingToScreeningHours),
		})
	}

	return w.csv.WriteCSV("recruiter_metrics.csv", WriteOptions{
		Headers: []string{"Recruiter", "Total Sourced", "Screening Cleared",
			"Screening Not Cleared", "Screening In Progress", "Screening Rate %",
			"Conversion Rate %", "SLA Alerts", "Avg Sourcing To Screening Hours"},
		Records:   rows,
		BOMPrefix: true,
	})
}

func (w *ReportWriter) writePanelists(metrics []domain.PanelistMetrics) error {
	rows := make([][]string, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, []string{
			m.Panelist,
			itoa(m.TotalInterviews),
			itoa(m.Passed),
			itoa(m.Failed),
			itoa(m.Pending),
			ftoa(m.PassRate),
			ftoa(m.AvgFeedbackHours),
			itoa(m.AlertCount),
		})
	}

	return w.csv.WriteCSV("panelist_metrics.csv", WriteOptions{
		Headers: []string{"Panelist", "Interviews", "Passed", "Failed",
			"Pending", "Pass Rate %", "Avg Feedback Hours", "SLA Alerts"},
		Records:   rows,
		BOMPrefix: true,
	})
}

func (w *ReportWriter) writeSources(items []domain.SourceDistributionItem) error {
	var rows [][]string
	for _, item := range items {
		rows = append(rows, []string{item.Source, "", itoa(item.Count), itoa(item.Percentage)})
		for _, sub := range item.SubSources {
			rows = append(rows, []string{item.Source, sub.SubSource, itoa(sub.Count), ""})
		}
	}

	return w.csv.WriteCSV("source_distribution.csv", WriteOptions{
		Headers:   []string{"Source", "Sub Source", "Count", "Percentage"},
		Records:   rows,
		BOMPrefix: true,
	})
}

func (w *ReportWriter) writeJSON(report *CombinedReport) error {
	fullPath := filepath.Join(w.csv.baseDir, "report.json")
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return os.WriteFile(fullPath, data, 0644)
}

// distinctRecruiters returns each recruiter once, first-seen casing,
// sorted. Records with no recruiter are skipped.
func distinctRecruiters(records []domain.CandidateRecord) []string {
	return distinct(records, func(r domain.CandidateRecord) []string {
		if strings.TrimSpace(r.Recruiter) == "" {
			return nil
		}
		return []string{r.Recruiter}
	})
}

// distinctPanelists returns every panelist appearing in any round slot.
func distinctPanelists(records []domain.CandidateRecord) []string {
	return distinct(records, func(r domain.CandidateRecord) []string {
		var names []string
		for _, round := range r.Rounds {
			if strings.TrimSpace(round.Panelist) != "" {
				names = append(names, round.Panelist)
			}
		}
		return names
	})
}

func distinct(records []domain.CandidateRecord, extract func(domain.CandidateRecord) []string) []string {
	seen := make(map[string]string)
	for _, r := range records {
		for _, name := range extract(r) {
			key := strings.ToLower(strings.TrimSpace(name))
			if _, ok := seen[key]; !ok {
				seen[key] = strings.TrimSpace(name)
			}
		}
	}

	out := make([]string, 0, len(seen))
	for _, name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }
