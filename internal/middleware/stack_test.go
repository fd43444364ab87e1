package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"financial-coach/internal/database"
	"financial-coach/internal/handlers"
	"financial-coach/internal/models"
	"financial-coach/internal/repositories"
	"financial-coach/internal/services"

	"github.com/labstack/echo/v4"
)

// offlineCompleter stands in for a collaborator with no API key
type offlineCompleter struct{}

func (offlineCompleter) Complete(context.Context, models.Prompt) (string, error) {
	return "", errors.New("collaborator is not configured")
}

func (offlineCompleter) IsConfigured() bool { return false }

// coachServer is the service's middleware chain and routes over an in-memory audit store
type coachServer struct {
	echo  *echo.Echo
	db    *database.DB
	calls repositories.CollaboratorCallRepositoryInterface
}

func newCoachServer(t *testing.T) *coachServer {
	t.Helper()

	db := database.SetupTestDB(t)
	calls := repositories.NewCollaboratorCallRepository(db.DB)
	metrics := services.NewNoopMetricsRecorder()

	narrator := services.NewNarratorService(
		offlineCompleter{},
		services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig()),
		calls,
		metrics,
		services.NewCollaboratorLogger(slog.Default()),
	)

	e := echo.New()
	e.HTTPErrorHandler = CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	e.Use(RequestID())
	e.Use(PanicRecovery())
	e.Use(SecurityHeaders())

	handlers.RegisterRoutes(e, &handlers.Handlers{
		Health: handlers.NewHealthCheckHandler(db),
		Analytics: handlers.NewAnalyticsHandler(
			services.NewTransactionNormalizer(),
			services.NewSpendAnalysisService(),
			metrics,
		),
		Simulation: handlers.NewSimulationHandler(
			services.NewCashflowSimulator(),
			services.NewCreditSimulator(),
			services.NewInsuranceAdvisor(),
			metrics,
		),
		Narrative: handlers.NewNarrativeHandler(narrator, metrics),
	})

	return &coachServer{echo: e, db: db, calls: calls}
}

// do serves one request; a non-empty traceID is sent as X-Trace-ID
func (s *coachServer) do(method, path, body, traceID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if traceID != "" {
		req.Header.Set(TraceIDHeader, traceID)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

const spendHistoryBody = `{"transactions": [
	{"date": "2025-01-05", "amount": -100, "merchant": "Grocer", "category": "Groceries", "account_type": "checking"},
	{"date": "2025-02-05", "amount": -120, "merchant": "Grocer", "category": "Groceries", "account_type": "checking"},
	{"date": "2025-03-05", "amount": -400, "merchant": "Grocer", "category": "Groceries", "account_type": "credit"}
]}`
