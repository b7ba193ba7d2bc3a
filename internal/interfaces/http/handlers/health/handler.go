package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reqtrack/reqtrack/internal/shared/logger"
	"github.com/reqtrack/reqtrack/internal/shared/utils"
)

const checkTimeout = 2 * time.Second

// Pinger reports whether a backing service is reachable.
type Pinger func(ctx context.Context) error

type Handler struct {
	checks map[string]Pinger
	logger logger.Interface
}

// NewHandler takes named checks; a nil Pinger is skipped.
func NewHandler(checks map[string]Pinger, logger logger.Interface) *Handler {
	return &Handler{checks: checks, logger: logger}
}

// Check handles GET /health
// @Summary Liveness and dependency check
// @Tags health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /health [get]
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	status := make(map[string]string, len(h.checks))
	healthy := true
	for name, ping := range h.checks {
		if ping == nil {
			continue
		}
		if err := ping(ctx); err != nil {
			h.logger.Warnw("health check failed", "component", name, "error", err)
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "up"
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, utils.APIResponse{
			Success: false,
			Message: "unhealthy",
			Data:    status,
		})
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ok", status)
}
