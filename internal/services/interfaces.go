package services

import (
	"context"
	"time"

	"financial-coach/internal/dto"
	"financial-coach/internal/models"
)

// TransactionNormalizerInterface turns raw records into the views detectors read
type TransactionNormalizerInterface interface {
	Normalize(inputs []dto.TransactionInput) (*models.NormalizedTransactions, error)
}

// SpendAnalysisServiceInterface runs the statistical detectors over one normalized set
type SpendAnalysisServiceInterface interface {
	// DetectRecurring groups spend by merchant and returns at most 6 recurring charges
	DetectRecurring(txns *models.NormalizedTransactions) []models.RecurringChargeGroup

	// DetectSpikes scores each category's latest month against its history
	DetectSpikes(txns *models.NormalizedTransactions) []models.AnomalySpike

	// RankMovers reports the largest signed changes against the historical average
	RankMovers(txns *models.NormalizedTransactions) []models.CategoryMover

	// Overview runs all three detectors side by side
	Overview(ctx context.Context, txns *models.NormalizedTransactions) (*models.SpendOverview, error)
}

// CashflowSimulatorInterface projects savings under a fixed untouchable policy
type CashflowSimulatorInterface interface {
	Simulate(params models.CashflowParams) (*models.CashflowForecast, error)
}

// CreditSimulatorInterface amortizes a credit balance and evaluates utilization
type CreditSimulatorInterface interface {
	SimulatePayoff(params models.CreditParams) (*models.CreditPayoffSimulation, error)
	Guardrails(balance, creditLimit float64) models.UtilizationGuardrails
	Plan(params models.CreditParams) (*models.CreditRepaymentPlan, error)
}

// InsuranceAdvisorInterface applies the insurance nudge rule table
type InsuranceAdvisorInterface interface {
	Suggest(profile models.InsuranceProfile) []models.InsuranceSuggestion
}

// NarratorServiceInterface produces coaching text. Every method succeeds; collaborator
// failures fall back to deterministic text.
type NarratorServiceInterface interface {
	Narrate(ctx context.Context, metrics models.NarrativeMetrics) models.GeneratedText
	ExplainUntouchable(ctx context.Context, params models.ExplainUntouchableParams) models.GeneratedText
	ExplainCredit(ctx context.Context, params models.ExplainCreditParams) models.GeneratedText
	HealthCheck(ctx context.Context) models.CollaboratorHealth
	RecentCalls(ctx context.Context, filters dto.CollaboratorCallFilters, limit int) ([]*models.CollaboratorCall, int64, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CollaboratorLoggerInterface interface {
	LogCallSucceeded(ctx context.Context, operation string, durationMs int64)
	LogCallFailed(ctx context.Context, operation, errorKind, errorMsg string, durationMs int64)
	LogCallSkipped(ctx context.Context, operation, reason string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogAuditWriteFailed(ctx context.Context, operation, errorMsg string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
