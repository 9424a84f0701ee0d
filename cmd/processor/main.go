package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"recruitlens/internal/config"
	"recruitlens/internal/exporter"
	"recruitlens/internal/infrastructure"
	"recruitlens/internal/services"
)

func main() {
	inPath := flag.String("in", "data/candidates.csv", "input candidate tracker (.csv, .xlsx)")
	outDir := flag.String("out", "data/reports", "output directory for report files")
	lenient := flag.Bool("lenient", false, "parse from the first line when no header anchor is found")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := infrastructure.InitializeLogger(config.LoggingConfig{
		Level:  *logLevel,
		Format: "text",
		Output: "console",
	})
	if err != nil {
		slog.Error("Failed to initialize logger", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dataset := services.NewDatasetService(config.DatasetConfig{
		Path:          *inPath,
		LenientHeader: *lenient,
	}, nil, logger, nil, nil)

	if err := dataset.Load(ctx); err != nil {
		logger.Error("Failed to load dataset",
			slog.String("path", *inPath),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	stats := dataset.Stats()
	logger.Info("Dataset loaded",
		slog.Int("rows_seen", stats.RowsSeen),
		slog.Int("rows_kept", stats.RowsKept),
		slog.Int("rows_skipped", stats.RowsSkipped))

	writer := exporter.NewReportWriter(*outDir, logger)
	report, err := writer.WriteAll(dataset.Records(), stats)
	if err != nil {
		logger.Error("Failed to write reports", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Processed %d candidates: %d recruiters, %d panelists, %d sources\n",
		report.Pipeline.Total, len(report.Recruiters), len(report.Panelists), len(report.Sources))
	fmt.Printf("Reports written to %s\n", *outDir)
}
