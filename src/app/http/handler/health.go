// Package handler contains the HTTP handlers for the API. Handlers parse
// and validate requests, call use case methods, and shape responses.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"beerfactory/src/core/usecase"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	healthService *usecase.HealthService
}

func NewHealthHandler(healthService *usecase.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// HealthResponse is the response for the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health returns a plain liveness signal.
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// DetailedHealth returns health status including component checks.
// GET /health/detailed
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthService.Check(c.Request.Context()))
}
