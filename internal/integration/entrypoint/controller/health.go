// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports whether the billing API can serve requests.
type HealthController struct {
	dbHealthChecker func() bool
}

// HealthResponse is the payload returned by GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Database  string `json:"database"`
	CheckedAt string `json:"checked_at"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
	}
}

// Check handles GET /health requests. Every operation in the API needs the
// database, so a failed ping degrades the whole service and the endpoint
// answers 503 for load balancers and uptime monitors.
func (h *HealthController) Check(c *gin.Context) {
	dbUp := h.dbHealthChecker != nil && h.dbHealthChecker()

	response := HealthResponse{
		Status:    "available",
		Service:   "receber-inter-api",
		Database:  "up",
		CheckedAt: time.Now().UTC().Format(time.RFC3339),
	}

	statusCode := http.StatusOK
	if !dbUp {
		response.Status = "degraded"
		response.Database = "down"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
