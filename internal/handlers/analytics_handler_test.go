package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"financial-coach/internal/dto"
	"financial-coach/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func newJSONContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return c, rec
}

func decodeError(s *suite.Suite, rec *httptest.ResponseRecorder) ErrorResponse {
	var body ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

type AnalyticsHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	handler *AnalyticsHandler
}

func TestAnalyticsHandlerSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}

func (s *AnalyticsHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.handler = NewAnalyticsHandler(
		services.NewTransactionNormalizer(),
		services.NewSpendAnalysisService(),
		services.NewNoopMetricsRecorder(),
	)
}

const subscriptionHistory = `{"transactions": [
	{"date": "2025-01-05", "amount": -15.99, "merchant": "Netflix", "category": "Entertainment", "account_type": "credit"},
	{"date": "2025-02-04", "amount": -15.99, "merchant": "Netflix", "category": "Entertainment", "account_type": "credit"},
	{"date": "2025-03-06", "amount": -15.99, "merchant": "Netflix", "category": "Entertainment", "account_type": "credit"},
	{"date": "2025-03-07", "amount": -4.50, "merchant": "Corner Cafe", "category": "Dining", "account_type": "checking"},
	{"date": "2025-03-08", "amount": -5.25, "merchant": "Corner Cafe", "category": "Dining", "account_type": "checking"},
	{"date": "2025-03-01", "amount": 4200, "merchant": "Employer", "category": "Salary", "account_type": "income"}
]}`

func (s *AnalyticsHandlerTestSuite) TestDetectSubscriptions_Success() {
	c, rec := newJSONContext(s.echo, http.MethodPost, "/ai/subscriptions/detect", subscriptionHistory)

	s.Require().NoError(s.handler.DetectSubscriptions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SubscriptionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Subscriptions, 1)
	group := resp.Subscriptions[0]
	s.Equal("Netflix", group.Merchant)
	s.Equal(-15.99, group.AvgAmount)
	s.Equal(30.0, group.AvgCadenceDays)
	s.Equal(0.0, group.VarianceDays)
	s.Equal(3, group.Count)
	s.False(group.Probable)
}

func (s *AnalyticsHandlerTestSuite) TestEmptyHistoryReturnsEmptyLists() {
	testCases := []struct {
		name    string
		call    func(echo.Context) error
		wantKey string
	}{
		{"insights", s.handler.DetectSpikes, `"spikes":[]`},
		{"movers", s.handler.RankMovers, `"movers":[]`},
		{"subscriptions", s.handler.DetectSubscriptions, `"subscriptions":[]`},
		{"overview", s.handler.Overview, `"subscriptions":[]`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := newJSONContext(s.echo, http.MethodPost, "/ai/spend", `{"transactions": []}`)

			s.Require().NoError(tc.call(c))
			s.Equal(http.StatusOK, rec.Code)
			s.Contains(rec.Body.String(), tc.wantKey)
		})
	}
}

func (s *AnalyticsHandlerTestSuite) TestOverview_RunsAllDetectors() {
	c, rec := newJSONContext(s.echo, http.MethodPost, "/ai/spend/overview", subscriptionHistory)

	s.Require().NoError(s.handler.Overview(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Contains(resp, "subscriptions")
	s.Contains(resp, "spikes")
	s.Contains(resp, "movers")
	s.Contains(string(resp["subscriptions"]), "Netflix")
}

func (s *AnalyticsHandlerTestSuite) TestInvalidBody() {
	c, rec := newJSONContext(s.echo, http.MethodPost, "/ai/spend/insights", `{"transactions": [`)

	s.Require().NoError(s.handler.DetectSpikes(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	body := decodeError(&s.Suite, rec)
	s.Equal("VALIDATION_001", body.Error.Code)
	s.Equal([]string{"Invalid request body"}, body.Error.Details)
	s.Equal("test-trace-id", body.Error.TraceID)
}

func (s *AnalyticsHandlerTestSuite) TestUnknownAccountTypeFailsValidation() {
	body := `{"transactions": [{"date": "2025-01-05", "amount": -10, "merchant": "A", "category": "B", "account_type": "brokerage"}]}`
	c, _ := newJSONContext(s.echo, http.MethodPost, "/ai/spend/movers", body)

	err := s.handler.RankMovers(c)

	var validationErrs validator.ValidationErrors
	s.Require().ErrorAs(err, &validationErrs)
	s.Equal("account_type", validationErrs[0].Tag())
}

func (s *AnalyticsHandlerTestSuite) TestUnparseableDateFailsValidation() {
	body := `{"transactions": [{"date": "March 5th", "amount": -10, "merchant": "A", "category": "B", "account_type": "checking"}]}`
	c, _ := newJSONContext(s.echo, http.MethodPost, "/ai/spend/insights", body)

	err := s.handler.DetectSpikes(c)

	var validationErrs validator.ValidationErrors
	s.Require().ErrorAs(err, &validationErrs)
	s.Equal("iso_date", validationErrs[0].Tag())
}

func (s *AnalyticsHandlerTestSuite) TestTooManyTransactions() {
	var b strings.Builder
	b.WriteString(`{"transactions": [`)
	for i := 0; i <= dto.MaxTransactionsPerRequest; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"date": "2025-01-01", "amount": -1, "account_type": "checking"}`)
	}
	b.WriteString(`]}`)

	c, rec := newJSONContext(s.echo, http.MethodPost, "/ai/spend/insights", b.String())

	s.Require().NoError(s.handler.DetectSpikes(c))
	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	s.Equal("TRANSACTION_003", decodeError(&s.Suite, rec).Error.Code)
}
