package errors

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_DefaultMessage() {
	response := NewErrorResponse(TransactionInvalidRecord, s.traceID)

	s.Equal("TRANSACTION_001", response.Error.Code)
	s.Equal("Transaction record is invalid", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	response := NewErrorResponse(
		SimulationInvalidHorizon,
		s.traceID,
		WithMessage("months must be between 1 and 600"),
		WithDetails("months: 9000"),
	)

	s.Equal("SIMULATION_001", response.Error.Code)
	s.Equal("months must be between 1 and 600", response.Error.Message)
	s.Equal([]string{"months: 9000"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_LastOptionWins() {
	response := NewErrorResponse(
		ValidationGeneral,
		s.traceID,
		WithDetails("transactions: is required"),
		WithDetails("months: must be at most 600"),
		WithMessage("first"),
		WithMessage("second"),
	)

	s.Equal([]string{"months: must be at most 600"}, response.Error.Details)
	s.Equal("second", response.Error.Message)
}

func (s *ResponseTestSuite) TestNewValidationError_SortedFieldDetails() {
	response := NewValidationError(TransactionInvalidAccountType, map[string]string{
		"transactions[1].account_type": "must be one of checking, credit, savings, income",
		"months":                       "must be at most 600",
		"transactions[0].date":         "is required",
	}, s.traceID)

	s.Equal("TRANSACTION_002", response.Error.Code)
	s.Equal("Invalid account type (checking, credit, savings, income)", response.Error.Message)
	s.Equal([]string{
		"months: must be at most 600",
		"transactions[0].date: is required",
		"transactions[1].account_type: must be one of checking, credit, savings, income",
	}, response.Error.Details)
	s.Equal(http.StatusBadRequest, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestNewValidationError_NoFields() {
	response := NewValidationError(ValidationGeneral, nil, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewInternalError() {
	testCases := []struct {
		name     string
		code     ErrorCode
		wantCode string
		wantMsg  string
		status   int
	}{
		{"internal", SystemInternalError, "SYSTEM_001", "An unexpected error occurred. Please contact support with trace ID", http.StatusInternalServerError},
		{"audit store", SystemDatabaseError, "SYSTEM_002", "Audit store is unavailable", http.StatusInternalServerError},
		{"unavailable", SystemServiceUnavailable, "SYSTEM_003", "Service temporarily unavailable", http.StatusServiceUnavailable},
		{"client code falls back", ValidationGeneral, "SYSTEM_001", "An unexpected error occurred. Please contact support with trace ID", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			response := NewInternalError(tc.code, s.traceID)
			s.Equal(tc.wantCode, response.Error.Code)
			s.Equal(tc.wantMsg, response.Error.Message)
			s.Equal(s.traceID, response.Error.TraceID)
			s.Empty(response.Error.Details)
			s.Equal(tc.status, response.GetHTTPStatus())
		})
	}
}

func (s *ResponseTestSuite) TestGetHTTPStatus_AllErrorCodes() {
	testCases := []struct {
		code           ErrorCode
		expectedStatus int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationRequiredField, http.StatusBadRequest},
		{ValidationInvalidFormat, http.StatusBadRequest},
		{ValidationOutOfRange, http.StatusBadRequest},
		{ValidationInvalidDate, http.StatusBadRequest},
		{ValidationInvalidAmount, http.StatusBadRequest},
		{TransactionInvalidRecord, http.StatusBadRequest},
		{TransactionInvalidAccountType, http.StatusBadRequest},
		{SystemNotFound, http.StatusNotFound},
		{TransactionTooMany, http.StatusRequestEntityTooLarge},
		{SimulationInvalidHorizon, http.StatusUnprocessableEntity},
		{SimulationInvalidInput, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemDatabaseError, http.StatusInternalServerError},
		{SystemUnexpectedError, http.StatusInternalServerError},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{"UNKNOWN_999", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expectedStatus, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestJSONShape() {
	raw, err := json.Marshal(NewErrorResponse(ValidationInvalidDate, s.traceID, WithDetails("transactions[0].date: is required")))
	s.Require().NoError(err)
	s.JSONEq(`{"error": {
		"code": "VALIDATION_005",
		"message": "Invalid date format or range",
		"details": ["transactions[0].date: is required"],
		"trace_id": "550e8400-e29b-41d4-a716-446655440000"
	}}`, string(raw))

	raw, err = json.Marshal(NewInternalError(SystemDatabaseError, s.traceID))
	s.Require().NoError(err)
	s.NotContains(string(raw), "details")
}
