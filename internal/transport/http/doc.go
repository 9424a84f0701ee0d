// Package http implements the HTTP request handlers for the recruitment
// analytics service. Handlers stay thin: they parse and validate the
// request, delegate to the service layer, and render JSON responses via
// chi/render, converting service errors to structured API errors.
//
// Every metric endpoint accepts the same optional date-range query
// parameters (requisition_from, requisition_to, sourcing_from,
// sourcing_to, screening_from, screening_to) in 2006-01-02 format and
// recomputes its view from the current in-memory dataset snapshot.
package http
