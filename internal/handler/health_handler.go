package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appErrors "github.com/liceo-connect/liceo-api/pkg/errors"
	"github.com/liceo-connect/liceo-api/pkg/response"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler serves liveness, readiness and metrics probes.
type HealthHandler struct {
	store   pinger
	metrics http.Handler
	timeout time.Duration
}

// NewHealthHandler builds a probe handler. metrics may be nil when disabled.
func NewHealthHandler(store pinger, metrics http.Handler) *HealthHandler {
	return &HealthHandler{store: store, metrics: metrics, timeout: 2 * time.Second}
}

// Health godoc
// @Summary Liveness check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response.OK(c, gin.H{"status": "ok"})
}

// Ready godoc
// @Summary Readiness check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} response.ErrorBody
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.store.PingContext(ctx); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "database unavailable"))
		return
	}
	response.OK(c, gin.H{"status": "ready"})
}

// Metrics exposes the Prometheus registry.
func (h *HealthHandler) Metrics(c *gin.Context) {
	if h.metrics == nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	h.metrics.ServeHTTP(c.Writer, c.Request)
}
