package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"sales-analytics/internal/database"
	"sales-analytics/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db           *database.DB
	redis        *redis.Client
	cacheEnabled bool
}

// NewHealthCheckHandler creates a new health check handler. redisClient is
// nil when the cache is disabled or could not be reached at startup; the
// cacheEnabled flag tells the two apart.
func NewHealthCheckHandler(db *database.DB, redisClient *redis.Client, cacheEnabled bool) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, redis: redisClient, cacheEnabled: cacheEnabled}
}

// HealthCheck reports API, database and cache connectivity
//
// Method: GET /health
//
// Success Response: 200 OK
//   - status: "healthy"
//   - time: RFC 3339 timestamp
//   - cache: "up", "down" or "disabled"
//
// Error Responses:
//   - 503: SYSTEM_003 when the database cannot be reached
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		slog.Error("health check database ping failed", "error", err)
		traceID := getTraceIDFromContext(c)
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			traceID,
			errors.WithDetails("Database connection failed"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	// cache outages do not fail the check
	cacheStatus := "disabled"
	switch {
	case !h.cacheEnabled:
	case h.redis == nil:
		cacheStatus = "down"
	default:
		cacheStatus = "up"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			slog.Warn("health check redis ping failed", "error", err)
			cacheStatus = "down"
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
		"cache":  cacheStatus,
	})
}

// Helper to get trace ID from context
func getTraceIDFromContext(c echo.Context) string {
	traceID := c.Response().Header().Get("X-Trace-ID")
	if traceID == "" {
		traceID = getTraceID(c)
	}
	if traceID == "" {
		traceID = "unknown"
	}
	return traceID
}
