package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sales-analytics/internal/dto"
	"sales-analytics/internal/errors"
	"sales-analytics/internal/models"
	"sales-analytics/internal/services"
	"sales-analytics/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// SalesHandlerSuite defines the test suite for SalesHandler
type SalesHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockSalesServiceInterface
	handler     *SalesHandler
	echo        *echo.Echo
}

func (s *SalesHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockSalesServiceInterface(s.ctrl)
	s.handler = NewSalesHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *SalesHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSalesHandlerSuite(t *testing.T) {
	suite.Run(t, new(SalesHandlerSuite))
}

func (s *SalesHandlerSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-123")
	return c, rec
}

func (s *SalesHandlerSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *SalesHandlerSuite) decodeData(rec *httptest.ResponseRecorder, out interface{}) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	s.Require().NoError(json.Unmarshal(envelope.Data, out))
}

func (s *SalesHandlerSuite) TestCreateSales_Success() {
	body := `{"records":[{"category":"A","price":10,"quantity":2},{"category":"B","price":"5.50","quantity":3}]}`

	s.mockService.EXPECT().
		RecordSales(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []models.SaleRecord) (int, error) {
			s.Require().Len(records, 2)
			s.Equal("A", records[0].Category)
			s.True(records[0].Price.Decimal.Equal(decimal.NewFromInt(10)))
			s.True(records[1].Price.Decimal.Equal(decimal.RequireFromString("5.50")))
			s.True(records[1].Quantity.Valid)
			return len(records), nil
		})

	c, rec := s.newContext(http.MethodPost, "/api/v1/sales", body)

	s.NoError(s.handler.CreateSales(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.CreateSalesResponse
	s.decodeData(rec, &resp)
	s.Equal(2, resp.Inserted)
}

func (s *SalesHandlerSuite) TestCreateSales_MissingFieldReachesServiceAsMissing() {
	body := `{"records":[{"category":"A","price":10,"quantity":2},{"category":"B","quantity":1}]}`

	s.mockService.EXPECT().
		RecordSales(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []models.SaleRecord) (int, error) {
			s.False(records[1].Price.Valid)
			return 0, &services.InvalidRecordError{Index: 1, Field: models.SaleFieldPrice, Err: models.ErrMissingPrice}
		})

	c, rec := s.newContext(http.MethodPost, "/api/v1/sales", body)

	s.NoError(s.handler.CreateSales(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	resp := s.decodeError(rec)
	s.Equal(string(errors.SalesInvalidRecord), resp.Error.Code)
	s.Equal([]string{"records[1].price: is required"}, resp.Error.Details)
	s.Equal("trace-123", resp.Error.TraceID)
}

func (s *SalesHandlerSuite) TestCreateSales_MalformedBody() {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{"records":`},
		{"non numeric price", `{"records":[{"category":"A","price":"ten","quantity":1}]}`},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, rec := s.newContext(http.MethodPost, "/api/v1/sales", tt.body)

			s.NoError(s.handler.CreateSales(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(string(errors.ValidationGeneral), s.decodeError(rec).Error.Code)
		})
	}
}

func (s *SalesHandlerSuite) TestCreateSales_CategoryTooLong() {
	body := fmt.Sprintf(`{"records":[{"category":%q,"price":1,"quantity":1}]}`, strings.Repeat("c", 101))

	c, rec := s.newContext(http.MethodPost, "/api/v1/sales", body)

	s.NoError(s.handler.CreateSales(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	resp := s.decodeError(rec)
	s.Equal(string(errors.ValidationGeneral), resp.Error.Code)
	s.Equal([]string{"records[0].category: must be at most 100 printable characters"}, resp.Error.Details)
}

func (s *SalesHandlerSuite) TestCreateSales_ServiceErrors() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   errors.ErrorCode
	}{
		{"empty batch", services.ErrEmptyBatch, http.StatusBadRequest, errors.SalesEmptyBatch},
		{"batch too large", fmt.Errorf("%w: 5 records, limit 3", services.ErrBatchTooLarge), http.StatusRequestEntityTooLarge, errors.SalesBatchTooLarge},
		{"storage failure", fmt.Errorf("failed to store sales: %w", errConnectionReset), http.StatusInternalServerError, errors.SystemInternalError},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockService.EXPECT().RecordSales(gomock.Any(), gomock.Any()).Return(0, tt.err)

			c, rec := s.newContext(http.MethodPost, "/api/v1/sales", `{"records":[]}`)

			s.NoError(s.handler.CreateSales(c))
			s.Equal(tt.wantStatus, rec.Code)
			s.Equal(string(tt.wantCode), s.decodeError(rec).Error.Code)
		})
	}
}

var errConnectionReset = fmt.Errorf("connection reset")

func (s *SalesHandlerSuite) TestListSales() {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	sales := []models.SaleRecord{
		{ID: uuid.New(), Category: "A", Price: decimal.NewNullDecimal(decimal.NewFromInt(10)), Quantity: decimal.NewNullDecimal(decimal.NewFromInt(2)), CreatedAt: createdAt},
	}
	s.mockService.EXPECT().ListSales(gomock.Any(), 5, 1).Return(sales, int64(7), nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/sales?offset=5&limit=1", "")

	s.NoError(s.handler.ListSales(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListSalesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Sales, 1)
	s.True(resp.Sales[0].LineTotal.Equal(decimal.NewFromInt(20)))
	s.Equal(dto.PaginationInfo{Offset: 5, Limit: 1, Total: 7, HasMore: true}, resp.Pagination)
}

func (s *SalesHandlerSuite) TestListSales_DefaultsAndBounds() {
	s.Run("defaults", func() {
		s.mockService.EXPECT().ListSales(gomock.Any(), 0, defaultPageLimit).Return([]models.SaleRecord{}, int64(0), nil)

		c, rec := s.newContext(http.MethodGet, "/api/v1/sales", "")

		s.NoError(s.handler.ListSales(c))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("limit above maximum", func() {
		c, rec := s.newContext(http.MethodGet, "/api/v1/sales?limit=1000", "")

		s.NoError(s.handler.ListSales(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal([]string{"limit: must be at most 100"}, s.decodeError(rec).Error.Details)
	})
}

func (s *SalesHandlerSuite) TestGetCategoryTotals() {
	report := &models.CategoryTotalsReport{
		Totals: []models.CategoryTotal{
			{Category: "A", TotalSales: decimal.NewFromInt(27)},
			{Category: "B", TotalSales: decimal.NewFromInt(15)},
		},
		GrandTotal:  decimal.NewFromInt(42),
		RecordCount: 3,
		Source:      models.AggregationSourceDatabase,
	}
	s.mockService.EXPECT().GetCategoryTotals(gomock.Any(), models.AggregationSourceDatabase).Return(report, nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/sales/category-totals?source=Database", "")

	s.NoError(s.handler.GetCategoryTotals(c))
	s.Equal(http.StatusOK, rec.Code)

	var got models.CategoryTotalsReport
	s.decodeData(rec, &got)
	s.Require().Len(got.Totals, 2)
	s.Equal("A", got.Totals[0].Category)
	s.True(got.Totals[0].TotalSales.Equal(decimal.NewFromInt(27)))
	s.True(got.GrandTotal.Equal(decimal.NewFromInt(42)))
	s.Contains(rec.Body.String(), `"totalSales":"27"`)
}

func (s *SalesHandlerSuite) TestGetCategoryTotals_DefaultSource() {
	s.mockService.EXPECT().GetCategoryTotals(gomock.Any(), "").Return(&models.CategoryTotalsReport{Totals: []models.CategoryTotal{}}, nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/sales/category-totals", "")

	s.NoError(s.handler.GetCategoryTotals(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"totals":[]`)
}

func (s *SalesHandlerSuite) TestGetCategoryTotals_UnknownSource() {
	c, rec := s.newContext(http.MethodGet, "/api/v1/sales/category-totals?source=mongo", "")

	s.NoError(s.handler.GetCategoryTotals(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.SalesInvalidSource), s.decodeError(rec).Error.Code)
}

func (s *SalesHandlerSuite) TestGetCategoryTotals_IncompleteStoredRecord() {
	s.mockService.EXPECT().
		GetCategoryTotals(gomock.Any(), models.AggregationSourceMemory).
		Return(nil, &services.InvalidRecordError{Index: 4, Field: models.SaleFieldQuantity, Err: models.ErrMissingQuantity})

	c, rec := s.newContext(http.MethodGet, "/api/v1/sales/category-totals?source=memory", "")

	s.NoError(s.handler.GetCategoryTotals(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	resp := s.decodeError(rec)
	s.Equal(string(errors.SalesAggregationFailed), resp.Error.Code)
	s.Equal([]string{"stored record 4 is missing quantity"}, resp.Error.Details)
}

func (s *SalesHandlerSuite) TestGetCategorySales() {
	s.Run("found", func() {
		s.mockService.EXPECT().
			GetCategorySales(gomock.Any(), "Books").
			Return(&models.CategoryTotal{Category: "Books", TotalSales: decimal.NewFromInt(15)}, nil)

		c, rec := s.newContext(http.MethodGet, "/api/v1/sales/category-totals/Books", "")
		c.SetParamNames("category")
		c.SetParamValues("Books")

		s.NoError(s.handler.GetCategorySales(c))
		s.Equal(http.StatusOK, rec.Code)

		var total models.CategoryTotal
		s.decodeData(rec, &total)
		s.Equal("Books", total.Category)
	})

	s.Run("not found", func() {
		s.mockService.EXPECT().
			GetCategorySales(gomock.Any(), "Nothing").
			Return(nil, fmt.Errorf("%w: %q", services.ErrCategoryNotFound, "Nothing"))

		c, rec := s.newContext(http.MethodGet, "/api/v1/sales/category-totals/Nothing", "")
		c.SetParamNames("category")
		c.SetParamValues("Nothing")

		s.NoError(s.handler.GetCategorySales(c))
		s.Equal(http.StatusNotFound, rec.Code)
		s.Equal(string(errors.SalesCategoryNotFound), s.decodeError(rec).Error.Code)
	})
}

func (s *SalesHandlerSuite) TestAggregateSales_SkipPolicy() {
	body := `{"records":[{"category":"A","price":10,"quantity":2},{"price":1,"quantity":1}]}`

	s.mockService.EXPECT().
		AggregateRecords(gomock.Len(2), services.InvalidRecordPolicySkip).
		Return(&services.AggregationResult{
			Totals:    []models.CategoryTotal{{Category: "A", TotalSales: decimal.NewFromInt(20)}},
			Processed: 1,
			Skipped:   []services.RecordIssue{{Index: 1, Field: models.SaleFieldCategory, Reason: models.ErrMissingCategory.Error()}},
		}, nil)

	c, rec := s.newContext(http.MethodPost, "/api/v1/sales/aggregate?policy=skip", body)

	s.NoError(s.handler.AggregateSales(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.AggregateResponse
	s.decodeData(rec, &resp)
	s.Equal(1, resp.Processed)
	s.Equal([]dto.RecordIssueResponse{{Index: 1, Field: "category", Reason: "sale category is required"}}, resp.Skipped)
}

func (s *SalesHandlerSuite) TestAggregateSales_ConfiguredPolicyWhenOmitted() {
	s.mockService.EXPECT().
		AggregateRecords(gomock.Any(), services.InvalidRecordPolicy("")).
		Return(&services.AggregationResult{Totals: []models.CategoryTotal{}}, nil)

	c, rec := s.newContext(http.MethodPost, "/api/v1/sales/aggregate", `{"records":[]}`)

	s.NoError(s.handler.AggregateSales(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"skipped":[]`)
}

func (s *SalesHandlerSuite) TestAggregateSales_RejectedRecord() {
	s.mockService.EXPECT().
		AggregateRecords(gomock.Any(), services.InvalidRecordPolicyReject).
		Return(nil, &services.InvalidRecordError{Index: 0, Field: models.SaleFieldQuantity, Err: models.ErrMissingQuantity})

	c, rec := s.newContext(http.MethodPost, "/api/v1/sales/aggregate?policy=reject", `{"records":[{"category":"A","price":1}]}`)

	s.NoError(s.handler.AggregateSales(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal([]string{"records[0].quantity: is required"}, s.decodeError(rec).Error.Details)
}

func (s *SalesHandlerSuite) TestAggregateSales_UnknownPolicy() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/sales/aggregate?policy=zero", `{"records":[]}`)

	s.NoError(s.handler.AggregateSales(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	resp := s.decodeError(rec)
	s.Equal(string(errors.SalesInvalidPolicy), resp.Error.Code)
	s.Equal([]string{"policy: must be one of reject, skip"}, resp.Error.Details)
}

func (s *SalesHandlerSuite) TestHandleServiceError_UnknownPolicy() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/sales/aggregate", "")

	s.NoError(s.handler.handleServiceError(c, fmt.Errorf("%w: %q", services.ErrUnknownRecordPolicy, "zero")))
	s.Equal(http.StatusBadRequest, rec.Code)
	resp := s.decodeError(rec)
	s.Equal(string(errors.SalesInvalidPolicy), resp.Error.Code)
	s.NotEqual(string(errors.SalesInvalidSource), resp.Error.Code)
}
