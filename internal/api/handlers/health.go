package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ReadinessChecker reports whether the service can reach its dependencies.
type ReadinessChecker interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	checker ReadinessChecker
}

// NewHealthHandler creates a new HealthHandler. A nil checker means the
// service is always ready.
func NewHealthHandler(c ReadinessChecker) *HealthHandler {
	return &HealthHandler{checker: c}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if the last onOffice probe succeeded, 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if h.checker != nil {
		if err := h.checker.Ping(c.Request().Context()); err != nil {
			return c.JSON(
				http.StatusServiceUnavailable,
				StatusResponse{Status: "unavailable"},
			)
		}
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
