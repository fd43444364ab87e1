package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"financial-coach/internal/dto"
	"financial-coach/internal/models"
	"financial-coach/internal/services"
	"financial-coach/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type NarrativeHandlerTestSuite struct {
	suite.Suite
	echo         *echo.Echo
	ctrl         *gomock.Controller
	mockNarrator *service_mocks.MockNarratorServiceInterface
	handler      *NarrativeHandler
}

func TestNarrativeHandlerSuite(t *testing.T) {
	suite.Run(t, new(NarrativeHandlerTestSuite))
}

func (s *NarrativeHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockNarrator = service_mocks.NewMockNarratorServiceInterface(s.ctrl)
	s.handler = NewNarrativeHandler(s.mockNarrator, services.NewNoopMetricsRecorder())
}

func (s *NarrativeHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *NarrativeHandlerTestSuite) TestNarrate_PassesRecognizedMetrics() {
	body := `{"metrics": {"top_spike_category": "Dining", "subscriptions_count": 4, "favorite_color": "blue"}}`
	c, rec := newJSONContext(s.echo, http.MethodPost, "/ai/narrative", body)

	s.mockNarrator.EXPECT().
		Narrate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, metrics models.NarrativeMetrics) models.GeneratedText {
			s.Require().NotNil(metrics.TopSpikeCategory)
			s.Equal("Dining", *metrics.TopSpikeCategory)
			s.Require().NotNil(metrics.SubscriptionsCount)
			s.Equal(4, *metrics.SubscriptionsCount)
			s.Nil(metrics.UntouchablePct)
			return models.GeneratedText{Text: "Nice week.", Source: models.NarrativeSourceLLM}
		})

	s.Require().NoError(s.handler.Narrate(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"narrative": "Nice week.", "source": "llm"}`, rec.Body.String())
}

func (s *NarrativeHandlerTestSuite) TestNarrate_MissingMetrics() {
	c, _ := newJSONContext(s.echo, http.MethodPost, "/ai/narrative", `{}`)

	s.Error(s.handler.Narrate(c))
}

// offlineHandler serves narratives with an unconfigured collaborator, so every
// response is the deterministic fallback
func (s *NarrativeHandlerTestSuite) offlineHandler() *NarrativeHandler {
	completer := service_mocks.NewMockTextCompleterInterface(s.ctrl)
	completer.EXPECT().IsConfigured().Return(false).AnyTimes()

	narrator := services.NewNarratorService(
		completer,
		services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig()),
		nil,
		services.NewNoopMetricsRecorder(),
		services.NewCollaboratorLogger(slog.Default()),
	)
	return NewNarrativeHandler(narrator, services.NewNoopMetricsRecorder())
}

func (s *NarrativeHandlerTestSuite) TestNarrate_FallbackWithoutCollaborator() {
	handler := s.offlineHandler()

	body := `{"metrics": {"top_spike_category": "Dining", "subscriptions_count": 4}}`
	c, rec := newJSONContext(s.echo, http.MethodPost, "/ai/narrative", body)

	s.Require().NoError(handler.Narrate(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.NarrativeResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(models.NarrativeSourceFallback, resp.Source)
	s.Equal("Spending in Dining was higher than usual. 4 recurring charges on file. Tiny action: review one subscription.", resp.Narrative)
}

func (s *NarrativeHandlerTestSuite) TestNarrate_UtilizationKeepsWireForm() {
	tests := []struct {
		body string
		want string
	}{
		{`{"metrics": {"credit_utilization": 42}}`, "Credit utilization: 42%."},
		{`{"metrics": {"credit_utilization": 42.0}}`, "Credit utilization: 42.0%."},
		{`{"metrics": {"credit_utilization": 31.25}}`, "Credit utilization: 31.25%."},
	}

	for _, tt := range tests {
		s.Run(tt.body, func() {
			c, rec := newJSONContext(s.echo, http.MethodPost, "/ai/narrative", tt.body)
			s.Require().NoError(s.offlineHandler().Narrate(c))

			var resp dto.NarrativeResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			s.Contains(resp.Narrative, tt.want)
		})
	}
}

func (s *NarrativeHandlerTestSuite) TestExplainUntouchable() {
	body := `{"monthly_income": 4000, "baseline_spend": 3000, "chosen_pct": 0.1, "suggested_pct": 0.05, "first_month_buffer": 1000}`
	c, rec := newJSONContext(s.echo, http.MethodPost, "/ai/explain/untouchable", body)

	s.mockNarrator.EXPECT().
		ExplainUntouchable(gomock.Any(), models.ExplainUntouchableParams{
			MonthlyIncome:    4000,
			BaselineSpend:    3000,
			ChosenPct:        0.1,
			SuggestedPct:     0.05,
			FirstMonthBuffer: 1000,
		}).
		Return(models.GeneratedText{Text: "Explained.", Source: models.NarrativeSourceFallback})

	s.Require().NoError(s.handler.ExplainUntouchable(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"explanation": "Explained.", "source": "fallback"}`, rec.Body.String())
}

func (s *NarrativeHandlerTestSuite) TestExplainCredit_OptionalFieldsStayNil() {
	body := `{"balance": 1200, "apr_annual": 24, "plus_months": 14, "utilization": 60}`
	c, rec := newJSONContext(s.echo, http.MethodPost, "/ai/explain/credit", body)

	s.mockNarrator.EXPECT().
		ExplainCredit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, params models.ExplainCreditParams) models.GeneratedText {
			s.Equal(1200.0, params.Balance)
			s.Nil(params.MinMonths)
			s.Nil(params.MinInterest)
			s.Require().NotNil(params.PlusMonths)
			s.Equal(14, *params.PlusMonths)
			return models.GeneratedText{Text: "Credit explained.", Source: models.NarrativeSourceLLM}
		})

	s.Require().NoError(s.handler.ExplainCredit(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Credit explained.")
}

func (s *NarrativeHandlerTestSuite) TestCollaboratorHealth_AlwaysOK() {
	errText := "timeout"
	c, rec := newJSONContext(s.echo, http.MethodGet, "/ai/llm/health", "")

	s.mockNarrator.EXPECT().
		HealthCheck(gomock.Any()).
		Return(models.CollaboratorHealth{OK: false, HasKey: true, Error: &errText})

	s.Require().NoError(s.handler.CollaboratorHealth(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"ok": false, "has_key": true, "error": "timeout"}`, rec.Body.String())
}

func (s *NarrativeHandlerTestSuite) TestRecentCalls_FiltersAndLimit() {
	c, rec := newJSONContext(s.echo, http.MethodGet, "/ai/llm/calls?operation=narrative&outcome=fallback&limit=500", "")

	calls := []*models.CollaboratorCall{{ID: uuid.New(), Operation: "narrative", Outcome: models.CollaboratorOutcomeFallback}}
	s.mockNarrator.EXPECT().
		RecentCalls(gomock.Any(), dto.CollaboratorCallFilters{Operation: "narrative", Outcome: "fallback"}, 500).
		Return(calls, int64(7), nil)

	s.Require().NoError(s.handler.RecentCalls(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.CollaboratorCallsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Calls, 1)
	s.Equal(int64(7), resp.Total)
	s.Equal(services.MaxRecentCallsLimit, resp.Limit)
}

func (s *NarrativeHandlerTestSuite) TestRecentCalls_InvalidParams() {
	testCases := []struct {
		name  string
		query string
	}{
		{"non-numeric limit", "?limit=ten"},
		{"unknown outcome", "?outcome=failed"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := newJSONContext(s.echo, http.MethodGet, "/ai/llm/calls"+tc.query, "")

			s.Require().NoError(s.handler.RecentCalls(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("VALIDATION_003", decodeError(&s.Suite, rec).Error.Code)
		})
	}
}

func (s *NarrativeHandlerTestSuite) TestRecentCalls_StoreError() {
	c, rec := newJSONContext(s.echo, http.MethodGet, "/ai/llm/calls", "")

	s.mockNarrator.EXPECT().
		RecentCalls(gomock.Any(), dto.CollaboratorCallFilters{}, services.DefaultRecentCallsLimit).
		Return(nil, int64(0), errors.New("database is locked"))

	s.Require().NoError(s.handler.RecentCalls(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "database is locked")

	body := decodeError(&s.Suite, rec)
	s.Equal("SYSTEM_002", body.Error.Code)
	s.Equal("Audit store is unavailable", body.Error.Message)
	s.Equal("test-trace-id", body.Error.TraceID)
	s.Empty(body.Error.Details)
}
