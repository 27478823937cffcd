package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const healthPingTimeout = 2 * time.Second

type HealthHandler struct {
	ping func(ctx context.Context) error
	now  func() time.Time
	log  zerolog.Logger
}

func NewHealthHandler(ping func(ctx context.Context) error, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, now: time.Now, log: log}
}

// Health informa si el proceso está vivo y si la base de datos responde
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	now := h.now().UTC().Format(time.RFC3339)

	if err := h.ping(ctx); err != nil {
		h.log.Warn().Err(err).Msg("⚠️ database ping failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"time":     now,
			"database": "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"time":     now,
		"database": "connected",
	})
}
