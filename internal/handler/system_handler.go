package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sample-hr/employee-admin/internal/metrics"
	"github.com/sample-hr/employee-admin/internal/response"
)

const healthTimeout = 2 * time.Second

// SystemHandler reports liveness of the process and its backing stores.
type SystemHandler struct {
	db        *sqlx.DB
	rdb       redis.UniversalClient
	metrics   *metrics.Metrics
	startTime time.Time
	log       zerolog.Logger
}

// NewSystemHandler creates a SystemHandler. rdb may be nil when sessions do
// not live in Redis.
func NewSystemHandler(db *sqlx.DB, rdb redis.UniversalClient, m *metrics.Metrics, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		db:        db,
		rdb:       rdb,
		metrics:   m,
		startTime: time.Now(),
		log:       log.With().Str("component", "system_handler").Logger(),
	}
}

// Health godoc
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	checks := gin.H{"database": "ok"}
	healthy := true

	if err := h.db.PingContext(ctx); err != nil {
		h.log.Warn().Err(err).Msg("database ping failed")
		checks["database"] = "unavailable"
		healthy = false
	}
	if h.rdb != nil {
		checks["redis"] = "ok"
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			h.log.Warn().Err(err).Msg("redis ping failed")
			checks["redis"] = "unavailable"
			healthy = false
		}
	}

	status, code := "ok", http.StatusOK
	if !healthy {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	response.Success(c, code, gin.H{
		"status": status,
		"checks": checks,
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Metrics godoc
// GET /metrics
func (h *SystemHandler) Metrics(c *gin.Context) {
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}
