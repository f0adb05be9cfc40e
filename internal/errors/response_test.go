package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(SalesEmptyBatch, s.traceID)

	s.NotNil(response)
	s.Equal("SALES_002", response.Error.Code)
	s.Equal("At least one sale record is required", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithMultipleOptions() {
	response := NewErrorResponse(
		SalesCategoryNotFound,
		s.traceID,
		WithMessage("Custom message"),
		WithDetails("category: Books"),
	)

	s.Equal("SALES_004", response.Error.Code)
	s.Equal("Custom message", response.Error.Message)
	s.Equal([]string{"category: Books"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWithDetails_LastInvocationWins() {
	response := NewErrorResponse(
		ValidationGeneral,
		s.traceID,
		WithDetails("detail1", "detail2"),
		WithDetails("detail3"),
	)

	s.Equal([]string{"detail3"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_SortedDetails() {
	fieldErrors := map[string]string{
		"records[0].quantity": "is required",
		"records[0].category": "is required",
		"records[0].price":    "is required",
	}

	response := NewValidationError(fieldErrors, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{
		"records[0].category: is required",
		"records[0].price: is required",
		"records[0].quantity: is required",
	}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_EmptyFieldErrors() {
	response := NewValidationError(map[string]string{}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationErrorFromList() {
	details := []string{"records: must contain at least 1 item"}

	response := NewValidationErrorFromList(details, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal(details, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewInvalidRecordError() {
	response := NewInvalidRecordError(2, "price", s.traceID)

	s.Equal("SALES_001", response.Error.Code)
	s.Equal([]string{"records[2].price: is required"}, response.Error.Details)
	s.Equal(http.StatusUnprocessableEntity, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestWrapSystemError_NoInternalDetailsExposed() {
	internalErr := errors.New("SQL error: relation \"sales\" does not exist")

	response, originalErr := WrapSystemError(internalErr, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "SQL")
	s.Empty(response.Error.Details)
	s.Equal(internalErr, originalErr)
}

func (s *ResponseTestSuite) TestWrapDatabaseError() {
	dbErr := errors.New("connection pool exhausted")

	response, originalErr := WrapDatabaseError(dbErr, s.traceID)

	s.Equal("SYSTEM_002", response.Error.Code)
	s.Equal("Database connection error", response.Error.Message)
	s.Equal(dbErr, originalErr)
}

func (s *ResponseTestSuite) TestToJSON_EmptyDetailsOmitted() {
	jsonBytes, err := NewErrorResponse(AuthMissingToken, s.traceID).ToJSON()
	s.NoError(err)

	var jsonMap map[string]interface{}
	s.NoError(json.Unmarshal(jsonBytes, &jsonMap))

	errorMap := jsonMap["error"].(map[string]interface{})
	_, hasDetails := errorMap["details"]
	s.False(hasDetails, "Empty details should be omitted from JSON")
	s.Equal(s.traceID, errorMap["trace_id"])
}

func (s *ResponseTestSuite) TestGetHTTPStatus_AllErrorCodes() {
	testCases := []struct {
		code           ErrorCode
		expectedStatus int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationRequiredField, http.StatusBadRequest},
		{SalesEmptyBatch, http.StatusBadRequest},
		{SalesInvalidSource, http.StatusBadRequest},
		{SalesInvalidPolicy, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthExpiredToken, http.StatusUnauthorized},
		{AuthInvalidTokenFormat, http.StatusUnauthorized},
		{SalesCategoryNotFound, http.StatusNotFound},
		{SystemNotFound, http.StatusNotFound},
		{SalesBatchTooLarge, http.StatusRequestEntityTooLarge},
		{SalesInvalidRecord, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemDatabaseError, http.StatusInternalServerError},
		{SalesAggregationFailed, http.StatusInternalServerError},
		{"UNKNOWN_999", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expectedStatus, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientAndServerErrors() {
	client := NewErrorResponse(SalesInvalidRecord, s.traceID)
	s.True(client.IsClientError())
	s.False(client.IsServerError())

	server := NewErrorResponse(SystemDatabaseError, s.traceID)
	s.True(server.IsServerError())
	s.False(server.IsClientError())
}

func (s *ResponseTestSuite) TestString_FormatsCorrectly() {
	str := NewErrorResponse(SalesCategoryNotFound, s.traceID).String()

	s.Contains(str, "SALES_004")
	s.Contains(str, "No sales recorded for this category")
	s.Contains(str, s.traceID)
}
