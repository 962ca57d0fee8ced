// Package usecase contains the application services sitting between the
// HTTP layer and the repository port.
package usecase

import (
	"context"
	"log/slog"

	"beerfactory/src/core/ports"
)

// HealthService reports the health of the service and its dependencies.
type HealthService struct {
	repo ports.BeerRepository
	log  *slog.Logger
}

func NewHealthService(repo ports.BeerRepository, log *slog.Logger) *HealthService {
	return &HealthService{repo: repo, log: log}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check pings the critical dependencies and reports overall status.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth),
	}

	if s.repo != nil {
		if err := s.repo.Health(ctx); err != nil {
			s.log.Warn("database health check failed", "error", err)
			status.Status = "degraded"
			status.Components["database"] = ComponentHealth{Status: "unhealthy", Message: err.Error()}
		} else {
			status.Components["database"] = ComponentHealth{Status: "healthy"}
		}
	}

	return status
}
