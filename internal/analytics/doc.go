// Package analytics computes dashboard metrics from normalized candidate
// records: role-scoped filters, the pipeline funnel, recruiter and
// panelist performance, source distribution, and the four SLA alert
// kinds.
//
// Every function is a pure, single-pass transformation of its input
// slice. There is no shared state and no I/O; callers pass the already
// filtered record set explicitly and recompute on every filter change.
// Empty inputs produce well-formed zero results, and every rate with a
// zero denominator evaluates to 0.
package analytics
