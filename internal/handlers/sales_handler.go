package handlers

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"sales-analytics/internal/dto"
	"sales-analytics/internal/errors"
	"sales-analytics/internal/models"
	"sales-analytics/internal/services"
	"sales-analytics/internal/validation"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
)

// SalesHandler handles sales ingestion and category totals requests
type SalesHandler struct {
	salesService services.SalesServiceInterface
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesService services.SalesServiceInterface) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// CreateSales stores a batch of sale records
//
// Method: POST /api/v1/sales
// Authentication: Required when a JWT secret is configured
//
// Request body: {"records": [{"category": "...", "price": 1.5, "quantity": 2}]}
//
// Success Response: 201 Created
//   - data.inserted: number of records stored
//
// Error Responses:
//   - 400: VALIDATION_001 malformed body or SALES_002 empty batch
//   - 413: SALES_003 batch too large
//   - 422: SALES_001 record missing category, price or quantity
//   - 500: SYSTEM_001 storage failure
func (h *SalesHandler) CreateSales(c echo.Context) error {
	req, errResp := bindSalesRequest(c)
	if errResp != nil {
		return c.JSON(errResp.GetHTTPStatus(), errResp)
	}

	inserted, err := h.salesService.RecordSales(c.Request().Context(), req.ToModels())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	slog.Info("sales batch stored",
		"trace_id", getTraceID(c),
		"client_ip", getClientIP(c),
		"inserted", inserted,
	)

	return SendSuccess(c, http.StatusCreated, dto.CreateSalesResponse{Inserted: inserted})
}

// ListSales returns stored sales, newest first
//
// Method: GET /api/v1/sales?offset=0&limit=20
//
// Success Response: 200 OK with dto.ListSalesResponse
func (h *SalesHandler) ListSales(c echo.Context) error {
	query := dto.ListSalesQuery{
		Offset: getIntParam(c, "offset", 0),
		Limit:  getIntParam(c, "limit", defaultPageLimit),
	}
	if query.Limit == 0 {
		query.Limit = defaultPageLimit
	}
	if err := c.Validate(&query); err != nil {
		return sendValidationError(c, err)
	}

	sales, total, err := h.salesService.ListSales(c.Request().Context(), query.Offset, query.Limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewListSalesResponse(sales, query.Offset, query.Limit, total))
}

// GetCategoryTotals returns revenue per category
//
// Method: GET /api/v1/sales/category-totals?source=memory|database
//
// Success Response: 200 OK
//   - data: models.CategoryTotalsReport
//
// Error Responses:
//   - 400: SALES_005 unknown source
//   - 500: SALES_006 a stored record is incomplete under the reject policy
//   - 500: SYSTEM_001 storage failure
func (h *SalesHandler) GetCategoryTotals(c echo.Context) error {
	query := dto.CategoryTotalsQuery{Source: c.QueryParam("source")}
	if err := c.Validate(&query); err != nil {
		return SendError(c, errors.SalesInvalidSource, errors.WithDetails("source must be one of memory, database"))
	}

	report, err := h.salesService.GetCategoryTotals(c.Request().Context(), strings.ToLower(query.Source))
	if err != nil {
		return h.handleTotalsError(c, err)
	}

	return SendSuccess(c, http.StatusOK, report)
}

// GetCategorySales returns the total of a single category
//
// Method: GET /api/v1/sales/category-totals/:category
//
// Error Responses:
//   - 404: SALES_004 no sales recorded for the category
func (h *SalesHandler) GetCategorySales(c echo.Context) error {
	category := c.Param("category")
	if category == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("category: is required"))
	}

	total, err := h.salesService.GetCategorySales(c.Request().Context(), category)
	if err != nil {
		return h.handleTotalsError(c, err)
	}

	return SendSuccess(c, http.StatusOK, total)
}

// AggregateSales aggregates the posted records without storing them
//
// Method: POST /api/v1/sales/aggregate?policy=reject|skip
//
// Success Response: 200 OK
//   - data: dto.AggregateResponse
//
// Error Responses:
//   - 400: VALIDATION_001 malformed body or SALES_007 unknown policy
//   - 422: SALES_001 record missing a field under the reject policy
func (h *SalesHandler) AggregateSales(c echo.Context) error {
	query := dto.AggregateQuery{Policy: c.QueryParam("policy")}
	if err := c.Validate(&query); err != nil {
		return SendError(c, errors.SalesInvalidPolicy, errors.WithDetails(policyDetail))
	}

	// an empty policy leaves the configured one in place
	var policy services.InvalidRecordPolicy
	if query.Policy != "" {
		parsed, err := services.ParseInvalidRecordPolicy(query.Policy)
		if err != nil {
			return h.handleServiceError(c, err)
		}
		policy = parsed
	}

	req, errResp := bindSalesRequest(c)
	if errResp != nil {
		return c.JSON(errResp.GetHTTPStatus(), errResp)
	}

	result, err := h.salesService.AggregateRecords(req.ToModels(), policy)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, newAggregateResponse(result))
}

// bindSalesRequest decodes and validates a sales batch, returning the error
// response to send when the body is unusable
func bindSalesRequest(c echo.Context) (*dto.CreateSalesRequest, *errors.ErrorResponse) {
	var req dto.CreateSalesRequest
	if err := c.Bind(&req); err != nil {
		return nil, errors.NewErrorResponse(errors.ValidationGeneral, getTraceID(c), errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return nil, validationErrorResponse(c, err)
	}

	return &req, nil
}

func validationErrorResponse(c echo.Context, err error) *errors.ErrorResponse {
	fields := validation.FieldErrors(err)
	if len(fields) == 0 {
		return errors.NewErrorResponse(errors.ValidationGeneral, getTraceID(c), errors.WithDetails(err.Error()))
	}
	return errors.NewValidationError(fields, getTraceID(c))
}

func sendValidationError(c echo.Context, err error) error {
	errorResponse := validationErrorResponse(c, err)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

const policyDetail = "policy: must be one of reject, skip"

// handleServiceError maps service failures onto API error codes
func (h *SalesHandler) handleServiceError(c echo.Context, err error) error {
	var recordErr *services.InvalidRecordError
	switch {
	case stderrors.As(err, &recordErr):
		if stderrors.Is(err, models.ErrCategoryTooLong) {
			return SendError(c, errors.ValidationOutOfRange,
				errors.WithDetails(fmt.Sprintf("records[%d].%s: is too long", recordErr.Index, recordErr.Field)))
		}
		errorResponse := errors.NewInvalidRecordError(recordErr.Index, recordErr.Field, getTraceID(c))
		return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
	case stderrors.Is(err, services.ErrEmptyBatch):
		return SendError(c, errors.SalesEmptyBatch)
	case stderrors.Is(err, services.ErrBatchTooLarge):
		return SendError(c, errors.SalesBatchTooLarge, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrCategoryNotFound):
		return SendError(c, errors.SalesCategoryNotFound)
	case stderrors.Is(err, services.ErrUnknownSource):
		return SendError(c, errors.SalesInvalidSource, errors.WithDetails("source must be one of memory, database"))
	case stderrors.Is(err, services.ErrUnknownRecordPolicy):
		return SendError(c, errors.SalesInvalidPolicy, errors.WithDetails(policyDetail))
	}
	return SendSystemError(c, err)
}

// handleTotalsError reports incomplete stored records as an aggregation
// failure rather than a client error
func (h *SalesHandler) handleTotalsError(c echo.Context, err error) error {
	var recordErr *services.InvalidRecordError
	if stderrors.As(err, &recordErr) {
		slog.Error("stored sale record cannot be aggregated",
			"trace_id", getTraceID(c),
			"index", recordErr.Index,
			"field", recordErr.Field,
		)
		return SendError(c, errors.SalesAggregationFailed,
			errors.WithDetails(fmt.Sprintf("stored record %d is missing %s", recordErr.Index, recordErr.Field)))
	}
	return h.handleServiceError(c, err)
}

func newAggregateResponse(result *services.AggregationResult) dto.AggregateResponse {
	skipped := make([]dto.RecordIssueResponse, 0, len(result.Skipped))
	for _, issue := range result.Skipped {
		skipped = append(skipped, dto.RecordIssueResponse{
			Index:  issue.Index,
			Field:  issue.Field,
			Reason: issue.Reason,
		})
	}
	return dto.AggregateResponse{
		Totals:    result.Totals,
		Processed: result.Processed,
		Skipped:   skipped,
	}
}
