package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/pathlight/corpsite-backend/internal/response"
)

// SystemHandler serves liveness and readiness probes.
type SystemHandler struct {
	pool      *pgxpool.Pool
	rdb       *redis.Client
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(pool *pgxpool.Pool, rdb *redis.Client) *SystemHandler {
	return &SystemHandler{pool: pool, rdb: rdb, startTime: time.Now()}
}

// Health godoc
// GET /health
// Reports dependency reachability. Any failed dependency turns the probe
// 503 so the load balancer rotates the instance out.
func (h *SystemHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	status := http.StatusOK
	deps := gin.H{"postgres": "ok", "redis": "ok"}

	if err := h.pool.Ping(ctx); err != nil {
		deps["postgres"] = "unreachable"
		status = http.StatusServiceUnavailable
	}
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		deps["redis"] = "unreachable"
		status = http.StatusServiceUnavailable
	}

	if status != http.StatusOK {
		response.Fail(c, status, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
		"deps":   deps,
	})
}
