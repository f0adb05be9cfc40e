package handlers

import (
	"log/slog"
	"net/http"

	"sales-analytics/internal/dto"
	"sales-analytics/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSeedCount = 100
	maxSeedCount     = 1000
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	salesService services.SalesServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(salesService services.SalesServiceInterface) *DevHandler {
	return &DevHandler{salesService: salesService}
}

// SeedSales stores generated sale records
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Query parameters:
//   - count: Number of sales to generate (default: 100, max: 1000)
//
// Success Response: 201 Created
//   - data.inserted: Number of sales stored
//
// Error Responses:
//   - 500: Internal server error
func (h *DevHandler) SeedSales(c echo.Context) error {
	count := clampInt(getIntParam(c, "count", defaultSeedCount), 1, maxSeedCount)

	inserted, err := h.salesService.SeedSales(c.Request().Context(), count)
	if err != nil {
		return SendSystemError(c, err)
	}

	slog.Info("development sales seeded", "inserted", inserted)

	return SendSuccess(c, http.StatusCreated, dto.SeedResponse{Inserted: inserted})
}

// ResetSales removes every stored sale
//
// Method: DELETE /api/v1/dev/sales
// Environment: Development only
//
// Success Response: 200 OK
//   - data.deleted: Number of sales deleted
func (h *DevHandler) ResetSales(c echo.Context) error {
	deleted, err := h.salesService.ResetSales(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.ResetResponse{Deleted: deleted})
}
