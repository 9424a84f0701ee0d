// Package dataprocessing turns the raw candidate sheet export into typed,
// analyzable records.
//
// The pipeline is strictly tolerant: unparseable date and number tokens
// become absent values, placeholder and blank rows are dropped, and free
// status text normalizes to closed enumerations with an explicit unknown
// member. Nothing in this package errors for data-quality problems; the
// only failure modes are an unreadable input and (by default) a sheet
// whose header anchor row cannot be located.
//
// The sheet repeats the interview-round column group three times with
// identical header labels, so the normalizer assigns repeated labels to
// rounds strictly by column order. See headerMap for the fragility notes.
package dataprocessing
