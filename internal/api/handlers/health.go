// Package handlers provides HTTP handlers for the API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedui/collection-service/internal/api/dto"
	"github.com/unifiedui/collection-service/internal/api/middleware"
	"github.com/unifiedui/collection-service/internal/core/docdb"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	driver docdb.Driver
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(driver docdb.Driver) *HealthHandler {
	return &HealthHandler{
		driver: driver,
	}
}

// Health handles the /health endpoint.
// @Summary Health check
// @Description Returns the overall health status and component statuses
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service healthy"
// @Failure 503 {object} dto.HealthResponse "Service unhealthy"
// @Router /api/v1/collection-service/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	components := make(map[string]string)
	status := "healthy"
	statusCode := http.StatusOK

	if err := h.driver.Ping(c.Request.Context()); err != nil {
		logger := middleware.GetRequestLogger(c)
		logger.Warn().Err(err).Msg("docdb health check failed")
		components["docdb"] = "unhealthy"
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	} else {
		components["docdb"] = "healthy"
	}

	c.JSON(statusCode, dto.HealthResponse{
		Status:     status,
		Components: components,
	})
}

// Ready handles the /ready endpoint.
// @Summary Readiness check
// @Description Returns 200 with the selected server if a primary is available to serve requests
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Service ready"
// @Failure 503 {object} map[string]string "Service not ready"
// @Router /api/v1/collection-service/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	srv, err := h.driver.SelectServer(c.Request.Context(), docdb.Primary())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "no primary available",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"server": srv.Address(),
	})
}

// Live handles the /live endpoint.
// @Summary Liveness check
// @Description Returns 200 if the service is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Service alive"
// @Router /api/v1/collection-service/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
