package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"real-estate-publications/internal/ratelimit"
	"real-estate-publications/internal/scheduler"

	"github.com/gin-gonic/gin"
)

// Counter reports how many rows the store holds
type Counter interface {
	Counts(ctx context.Context) (publications int64, images int64, err error)
}

// Reindexer is the part of the scheduler the admin endpoints drive
type Reindexer interface {
	RunNow() error
	GetStatus() scheduler.Status
}

// Pinger checks database connectivity
type Pinger interface {
	Ping(ctx context.Context) error
}

// AdminHandler handles admin-related requests
type AdminHandler struct {
	counter   Counter
	reindexer Reindexer
	limiter   *ratelimit.RateLimiter
	logger    *slog.Logger
}

// NewAdminHandler creates a new admin handler. reindexer is nil when the
// search mirror is disabled.
func NewAdminHandler(counter Counter, reindexer Reindexer, limiter *ratelimit.RateLimiter, logger *slog.Logger) *AdminHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminHandler{
		counter:   counter,
		reindexer: reindexer,
		limiter:   limiter,
		logger:    logger,
	}
}

// Register mounts the admin routes on rg
func (h *AdminHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/ratelimit/stats", h.GetRateLimitStats)
	rg.POST("/ratelimit/reset", h.ResetRateLimit)

	admin := rg.Group("/admin")
	admin.GET("/stats", h.GetStats)
	admin.POST("/reindex", h.TriggerReindex)
	admin.GET("/reindex/status", h.GetReindexStatus)
}

// GetStats returns system statistics
// @Summary Publication and image counts
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	publications, images, err := h.counter.Counts(c.Request.Context())
	if err != nil {
		h.logger.Error("admin: failed to count rows", "err", err)
		writeProblem(c, http.StatusInternalServerError, "Unexpected error", "an unexpected error occurred.")
		return
	}

	stats := gin.H{
		"publications": publications,
		"images":       images,
	}
	if h.reindexer != nil {
		stats["reindex"] = h.reindexer.GetStatus()
	}
	c.JSON(http.StatusOK, stats)
}

// TriggerReindex starts a full rebuild of the search index in the background
// @Summary Rebuild the search index
// @Tags admin
// @Produce json
// @Success 202 {object} map[string]string
// @Failure 409 {object} Problem
// @Failure 503 {object} Problem
// @Router /admin/reindex [post]
func (h *AdminHandler) TriggerReindex(c *gin.Context) {
	if h.reindexer == nil {
		writeProblem(c, http.StatusServiceUnavailable, "Unavailable", "search index is not configured.")
		return
	}
	if h.reindexer.GetStatus().Running {
		writeProblem(c, http.StatusConflict, "Conflict", "a reindex is already running.")
		return
	}

	h.logger.Info("admin: manual reindex requested")

	// Run in goroutine to avoid blocking
	go func() {
		if err := h.reindexer.RunNow(); err != nil {
			if errors.Is(err, scheduler.ErrAlreadyRunning) {
				h.logger.Info("admin: reindex skipped, another run is in progress")
				return
			}
			h.logger.Error("admin: manual reindex failed", "err", err)
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Reindex started",
		"status":  "running",
	})
}

// GetReindexStatus returns the state of the last reindex
// @Summary Last reindex run
// @Tags admin
// @Produce json
// @Success 200 {object} scheduler.Status
// @Failure 503 {object} Problem
// @Router /admin/reindex/status [get]
func (h *AdminHandler) GetReindexStatus(c *gin.Context) {
	if h.reindexer == nil {
		writeProblem(c, http.StatusServiceUnavailable, "Unavailable", "search index is not configured.")
		return
	}
	c.JSON(http.StatusOK, h.reindexer.GetStatus())
}

// GetRateLimitStats returns the write rate limiter counters
// @Summary Rate limiter counters
// @Tags admin
// @Produce json
// @Success 200 {object} ratelimit.Stats
// @Router /ratelimit/stats [get]
func (h *AdminHandler) GetRateLimitStats(c *gin.Context) {
	if h.limiter == nil {
		c.JSON(http.StatusOK, ratelimit.Stats{Enabled: false})
		return
	}
	c.JSON(http.StatusOK, h.limiter.GetStats())
}

// ResetRateLimit clears the write rate limiter counters
// @Summary Reset the rate limiter
// @Tags admin
// @Produce json
// @Success 200 {object} ratelimit.Stats
// @Router /ratelimit/reset [post]
func (h *AdminHandler) ResetRateLimit(c *gin.Context) {
	if h.limiter == nil {
		writeProblem(c, http.StatusServiceUnavailable, "Unavailable", "rate limiter is not configured.")
		return
	}
	h.limiter.Reset()
	h.logger.Info("admin: rate limiter reset")
	c.JSON(http.StatusOK, h.limiter.GetStats())
}

// Health reports liveness and database connectivity
func Health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unavailable",
				"database": err.Error(),
				"time":     time.Now().UTC(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"database": "ok",
			"time":     time.Now().UTC(),
		})
	}
}
