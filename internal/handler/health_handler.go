package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/blacklane/ai-content-generator-for-contentful/internal/service"
)

type HealthHandler struct {
	service service.HealthService
}

func NewHealthHandler(service service.HealthService) *HealthHandler {
	return &HealthHandler{service: service}
}

type healthResponse struct {
	Status    string            `json:"status"`
	Services  map[string]string `json:"services"`
	Errors    map[string]string `json:"errors,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// RegisterRoutes registers the public health route.
func (h *HealthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.Check)
}

// Check reports dependency connectivity.
// @Summary Health check
// @Description Probe the AI endpoint and Contentful in parallel and report per-service status
// @Tags health
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c echo.Context) error {
	status := h.service.Check(c.Request().Context())

	return jsonNoCache(c, http.StatusOK, healthResponse{
		Status:    status.Status,
		Services:  status.Services,
		Errors:    status.Errors,
		Timestamp: status.Timestamp,
	})
}
