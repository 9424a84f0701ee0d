// Package services implements the business logic layer between the HTTP
// handlers and the analytics engine.
//
// DatasetService owns the in-memory candidate dataset: it drives the
// loader against the configured source (local CSV/XLSX export or Google
// Sheets) and replaces the dataset wholesale on each load. Readers share
// one immutable snapshot until the next reload.
//
// DashboardService computes role-scoped metric views on demand; nothing
// is cached between requests. HealthService reports readiness, which
// tracks whether a dataset load has succeeded.
package services
