package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"eaglegym/internal/api"
	"eaglegym/internal/cache"
	"eaglegym/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const healthTimeout = 2 * time.Second

// Pinger is satisfied by *sqlx.DB and *cache.Store.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports on the content store and the result cache. Branch
// pages cannot render without the store; without the cache they are only
// slower.
type HealthHandler struct {
	store Pinger
	cache Pinger
}

func NewHealthHandler(store, cache Pinger) *HealthHandler {
	return &HealthHandler{store: store, cache: cache}
}

// @Summary      Health check
// @Description  Pings the content store and the cache. 503 when the store is unreachable.
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Failure      503 {object} api.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	resp := api.HealthResponse{Status: "ok"}
	code := http.StatusOK

	if h.store != nil {
		if err := h.store.PingContext(ctx); err != nil {
			logger.WithError(err).Error("Health check: content store unreachable")
			resp.SetCheck("store", "unavailable")
			resp.Status = "unavailable"
			code = http.StatusServiceUnavailable
		} else {
			resp.SetCheck("store", "ok")
		}
	}

	if h.cache != nil {
		switch err := h.cache.PingContext(ctx); {
		case err == nil:
			resp.SetCheck("cache", "ok")
		case errors.Is(err, cache.ErrDisabled):
			resp.SetCheck("cache", "disabled")
		default:
			logger.WithError(err).Warn("Health check: cache unreachable")
			resp.SetCheck("cache", "unavailable")
			if resp.Status == "ok" {
				resp.Status = "degraded"
			}
		}
	}

	c.JSON(code, resp)
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
