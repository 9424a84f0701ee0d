package services

import (
	"context"
	"time"
)

// HealthStatus reports service readiness and dataset freshness.
type HealthStatus struct {
	Status       string    `json:"status"`
	DatasetReady bool      `json:"dataset_ready"`
	Records      int       `json:"records"`
	LoadedAt     time.Time `json:"loaded_at,omitempty"`
	LoadID       string    `json:"load_id,omitempty"`
	Uptime       string    `json:"uptime"`
	Timestamp    time.Time `json:"timestamp"`
}

// HealthService answers readiness probes. The service is degraded until
// the first dataset load succeeds.
type HealthService struct {
	dataset *DatasetService
	started time.Time
}

func NewHealthService(dataset *DatasetService) *HealthService {
	return &HealthService{dataset: dataset, started: time.Now()}
}

// Check returns the current health snapshot.
func (s *HealthService) Check(ctx context.Context) HealthStatus {
	records := s.dataset.Records()
	loadedAt := s.dataset.LoadedAt()
	ready := !loadedAt.IsZero()

	status := "ok"
	if !ready {
		status = "degraded"
	}

	return HealthStatus{
		Status:       status,
		DatasetReady: ready,
		Records:      len(records),
		LoadedAt:     loadedAt,
		LoadID:       s.dataset.LoadID(),
		Uptime:       time.Since(s.started).Round(time.Second).String(),
		Timestamp:    time.Now().UTC(),
	}
}
