package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "recruitlens/internal/errors"
	"recruitlens/internal/services"
	"recruitlens/pkg/contracts/domain"
)

// filterDateFormat is the query-parameter date format for range bounds.
const filterDateFormat = "2006-01-02"

// DashboardHandler serves the metric endpoints consumed by the dashboard
// frontend. Every metric endpoint accepts the same date-range query
// parameters and recomputes from the current dataset snapshot.
type DashboardHandler struct {
	dashboard    *services.DashboardService
	dataset      *services.DatasetService
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboard *services.DashboardService, dataset *services.DatasetService, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DashboardHandler {
	return &DashboardHandler{
		dashboard:    dashboard,
		dataset:      dataset,
		logger:       logger.With(slog.String("component", "dashboard_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the dashboard routes.
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/pipeline", h.GetPipeline)
	r.Get("/sources", h.GetSources)
	r.Get("/alerts/{kind}", h.GetAlerts)

	r.Route("/recruiters/{name}", func(r chi.Router) {
		r.Use(h.NameCtx)
		r.Get("/", h.GetRecruiter)
	})
	r.Route("/panelists/{name}", func(r chi.Router) {
		r.Use(h.NameCtx)
		r.Get("/", h.GetPanelist)
	})

	r.Post("/reload", h.Reload)

	return r
}

// NameCtx middleware validates the name parameter.
func (h *DashboardHandler) NameCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if strings.TrimSpace(name) == "" {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("name", "Name is required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// parseFilter reads the date-range bounds from the query string. Absent
// parameters leave the corresponding bound open.
func parseFilter(r *http.Request) (domain.DateRangeFilter, error) {
	var filter domain.DateRangeFilter

	bounds := []struct {
		param string
		dst   *time.Time
	}{
		{"requisition_from", &filter.RequisitionFrom},
		{"requisition_to", &filter.RequisitionTo},
		{"sourcing_from", &filter.SourcingFrom},
		{"sourcing_to", &filter.SourcingTo},
		{"screening_from", &filter.ScreeningFrom},
		{"screening_to", &filter.ScreeningTo},
	}

	for _, b := range bounds {
		raw := r.URL.Query().Get(b.param)
		if raw == "" {
			continue
		}
		t, err := time.Parse(filterDateFormat, raw)
		if err != nil {
			return filter, apierrors.ErrValidation(b.param, fmt.Sprintf("Expected %s date, got %q", filterDateFormat, raw))
		}
		*b.dst = t
	}

	return filter, nil
}

// requireDataset rejects metric requests until the first load succeeds.
func (h *DashboardHandler) requireDataset(w http.ResponseWriter, r *http.Request) bool {
	if h.dataset.LoadedAt().IsZero() {
		h.errorHandler.HandleError(w, r, apierrors.ErrDatasetNotFound)
		return false
	}
	return true
}

// GetPipeline handles GET /api/pipeline. An optional hiring_manager
// query parameter scopes the funnel to one hiring manager.
func (h *DashboardHandler) GetPipeline(w http.ResponseWriter, r *http.Request) {
	if !h.requireDataset(w, r) {
		return
	}
	filter, err := parseFilter(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	var metrics domain.PipelineMetrics
	if manager := r.URL.Query().Get("hiring_manager"); manager != "" {
		metrics = h.dashboard.HiringManagerPipeline(r.Context(), manager, filter)
	} else {
		metrics = h.dashboard.Pipeline(r.Context(), filter)
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   metrics,
	})
}

// GetRecruiter handles GET /api/recruiters/{name}.
func (h *DashboardHandler) GetRecruiter(w http.ResponseWriter, r *http.Request) {
	if !h.requireDataset(w, r) {
		return
	}
	filter, err := parseFilter(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	metrics := h.dashboard.Recruiter(r.Context(), chi.URLParam(r, "name"), filter)
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   metrics,
	})
}

// GetPanelist handles GET /api/panelists/{name}.
func (h *DashboardHandler) GetPanelist(w http.ResponseWriter, r *http.Request) {
	if !h.requireDataset(w, r) {
		return
	}
	filter, err := parseFilter(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	metrics := h.dashboard.Panelist(r.Context(), chi.URLParam(r, "name"), filter)
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   metrics,
	})
}

// GetSources handles GET /api/sources.
func (h *DashboardHandler) GetSources(w http.ResponseWriter, r *http.Request) {
	if !h.requireDataset(w, r) {
		return
	}
	filter, err := parseFilter(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	items := h.dashboard.Sources(r.Context(), filter)
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   items,
		"count":  len(items),
	})
}

// GetAlerts handles GET /api/alerts/{kind}.
func (h *DashboardHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	if !h.requireDataset(w, r) {
		return
	}
	filter, err := parseFilter(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	kind := services.AlertKind(chi.URLParam(r, "kind"))
	alerts, err := h.dashboard.Alerts(r.Context(), kind, filter)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("kind",
			"Alert kind must be one of: sourcing, feedback, tth, ttf"))
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"kind":   string(kind),
		"data":   alerts,
	})
}

// Reload handles POST /api/reload: re-reads the configured source and
// replaces the dataset wholesale.
func (h *DashboardHandler) Reload(w http.ResponseWriter, r *http.Request) {
	h.logger.InfoContext(r.Context(), "dataset reload requested")

	if err := h.dataset.Load(r.Context()); err != nil {
		h.logger.ErrorContext(r.Context(), "dataset reload failed",
			slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, apierrors.DatasetLoadError(err))
		return
	}

	stats := h.dataset.Stats()
	render.JSON(w, r, map[string]interface{}{
		"status":  "success",
		"load_id": h.dataset.LoadID(),
		"stats":   stats,
	})
}
