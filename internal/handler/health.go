package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is what a readiness Check calls. repository.Pinger satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Check names one readiness dependency (database, cache).
type Check struct {
	Name   string
	Pinger Pinger
}

const readinessTimeout = 2 * time.Second

// HealthHandler exposes liveness and readiness endpoints.
type HealthHandler struct {
	checks []Check
}

func NewHealthHandler(checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Liveness responds OK if the process is up; it doesn't check dependencies.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readiness pings every registered dependency and reports the first failure.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	for _, chk := range h.checks {
		if chk.Pinger == nil {
			continue
		}
		if err := chk.Pinger.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "unavailable",
				"dependency": chk.Name,
				"error":      err.Error(),
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
