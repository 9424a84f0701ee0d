// Package exporter generates the batch report set for a loaded candidate
// dataset.
//
// CSVWriter provides the core CSV writing with UTF-8 BOM support for
// Excel compatibility. ReportWriter builds on it to produce the pipeline
// summary, per-recruiter and per-panelist metric files, the source
// distribution file and a combined JSON report.
package exporter
