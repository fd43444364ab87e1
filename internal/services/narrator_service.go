package services

import (
	"context"
	"strings"
	"time"

	"financial-coach/internal/dto"
	"financial-coach/internal/llm"
	"financial-coach/internal/models"
	"financial-coach/internal/repositories"
)

const (
	collaboratorServiceName = "llm"

	skipReasonNotConfigured = "not_configured"
	skipReasonCircuitOpen   = "circuit_open"

	DefaultRecentCallsLimit = 50
	MaxRecentCallsLimit     = 200
)

type narratorService struct {
	completer TextCompleterInterface
	breaker   CircuitBreakerInterface
	callRepo  repositories.CollaboratorCallRepositoryInterface
	metrics   MetricsRecorderInterface
	logger    CollaboratorLoggerInterface
}

// NewNarratorService wires the text collaborator behind a circuit breaker. callRepo may
// be nil, in which case call outcomes are only logged and counted.
func NewNarratorService(
	completer TextCompleterInterface,
	breaker CircuitBreakerInterface,
	callRepo repositories.CollaboratorCallRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger CollaboratorLoggerInterface,
) NarratorServiceInterface {
	return &narratorService{
		completer: completer,
		breaker:   breaker,
		callRepo:  callRepo,
		metrics:   metrics,
		logger:    logger,
	}
}

func (s *narratorService) Narrate(ctx context.Context, metrics models.NarrativeMetrics) models.GeneratedText {
	return s.generate(ctx, models.CollaboratorOperationNarrative, narrativePrompt(metrics), FallbackNarrative(metrics))
}

func (s *narratorService) ExplainUntouchable(ctx context.Context, params models.ExplainUntouchableParams) models.GeneratedText {
	base := UntouchableExplanation(params)
	return s.generate(ctx, models.CollaboratorOperationExplainUntouchable, untouchablePrompt(base), base)
}

func (s *narratorService) ExplainCredit(ctx context.Context, params models.ExplainCreditParams) models.GeneratedText {
	base := CreditExplanation(params)
	return s.generate(ctx, models.CollaboratorOperationExplainCredit, creditPrompt(base, params.Utilization), base)
}

// generate asks the collaborator to produce text and returns fallback on any failure.
// It never returns an error.
func (s *narratorService) generate(ctx context.Context, operation string, prompt models.Prompt, fallback string) models.GeneratedText {
	fallbackText := models.GeneratedText{Text: fallback, Source: models.NarrativeSourceFallback}

	if !s.completer.IsConfigured() {
		s.skip(ctx, operation, skipReasonNotConfigured)
		return fallbackText
	}

	before := s.breaker.GetState()
	if s.breaker.IsOpen() {
		s.skip(ctx, operation, skipReasonCircuitOpen)
		return fallbackText
	}
	s.observeBreaker(ctx, before)

	start := time.Now()
	text, err := s.complete(ctx, prompt)
	duration := time.Since(start)

	before = s.breaker.GetState()
	if err != nil {
		s.breaker.RecordFailure()
		s.observeBreaker(ctx, before)

		kind := string(llm.KindOf(err))
		s.logger.LogCallFailed(ctx, operation, kind, err.Error(), duration.Milliseconds())
		s.recordCall(ctx, &models.CollaboratorCall{
			Operation:  operation,
			Outcome:    models.CollaboratorOutcomeFallback,
			ErrorKind:  kind,
			ErrorText:  err.Error(),
			DurationMs: duration.Milliseconds(),
		}, duration)
		return fallbackText
	}

	s.breaker.RecordSuccess()
	s.observeBreaker(ctx, before)

	s.logger.LogCallSucceeded(ctx, operation, duration.Milliseconds())
	s.recordCall(ctx, &models.CollaboratorCall{
		Operation:  operation,
		Outcome:    models.CollaboratorOutcomeOK,
		DurationMs: duration.Milliseconds(),
	}, duration)

	return models.GeneratedText{Text: text, Source: models.NarrativeSourceLLM}
}

// complete trims the reply and treats blank text as a failure
func (s *narratorService) complete(ctx context.Context, prompt models.Prompt) (string, error) {
	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", llm.NewEmptyCompletionError()
	}
	return text, nil
}

func (s *narratorService) skip(ctx context.Context, operation, reason string) {
	s.logger.LogCallSkipped(ctx, operation, reason)
	s.recordCall(ctx, &models.CollaboratorCall{
		Operation: operation,
		Outcome:   models.CollaboratorOutcomeSkipped,
		ErrorKind: reason,
	}, 0)
}

func (s *narratorService) observeBreaker(ctx context.Context, before models.CircuitBreakerState) {
	after := s.breaker.GetState()
	if after == before {
		return
	}
	s.logger.LogCircuitBreakerStateChange(ctx, collaboratorServiceName, before.String(), after.String())
	s.metrics.RecordGauge(MetricCircuitBreakerState, float64(after), map[string]string{
		"service": collaboratorServiceName,
	})
}

// recordCall counts the outcome and writes the audit record. A failed write is
// logged and otherwise ignored.
func (s *narratorService) recordCall(ctx context.Context, call *models.CollaboratorCall, duration time.Duration) {
	s.metrics.IncrementCounter(MetricCollaboratorCall, map[string]string{
		"operation": call.Operation,
		"outcome":   call.Outcome,
	})
	if call.Outcome != models.CollaboratorOutcomeSkipped {
		s.metrics.RecordProcessingTime(MetricCollaboratorCall, duration)
	}

	if s.callRepo == nil {
		return
	}

	call.TraceID = TraceIDFromContext(ctx)
	if err := s.callRepo.Create(context.WithoutCancel(ctx), call); err != nil {
		s.logger.LogAuditWriteFailed(ctx, call.Operation, err.Error())
	}
}

// HealthCheck sends the fixed PONG probe. It bypasses the circuit breaker so an
// operator can see whether the collaborator has recovered.
func (s *narratorService) HealthCheck(ctx context.Context) models.CollaboratorHealth {
	if !s.completer.IsConfigured() {
		s.skip(ctx, models.CollaboratorOperationHealthProbe, skipReasonNotConfigured)
		return models.CollaboratorHealth{
			OK:     false,
			HasKey: false,
			Reason: llm.ErrNotConfigured.Message,
		}
	}

	start := time.Now()
	text, err := s.complete(ctx, healthProbePrompt())
	duration := time.Since(start)

	if err != nil {
		kind := string(llm.KindOf(err))
		errText := err.Error()
		s.logger.LogCallFailed(ctx, models.CollaboratorOperationHealthProbe, kind, errText, duration.Milliseconds())
		s.recordCall(ctx, &models.CollaboratorCall{
			Operation:  models.CollaboratorOperationHealthProbe,
			Outcome:    models.CollaboratorOutcomeFallback,
			ErrorKind:  kind,
			ErrorText:  errText,
			DurationMs: duration.Milliseconds(),
		}, duration)
		return models.CollaboratorHealth{
			OK:     false,
			HasKey: true,
			Error:  &errText,
		}
	}

	s.logger.LogCallSucceeded(ctx, models.CollaboratorOperationHealthProbe, duration.Milliseconds())
	s.recordCall(ctx, &models.CollaboratorCall{
		Operation:  models.CollaboratorOperationHealthProbe,
		Outcome:    models.CollaboratorOutcomeOK,
		DurationMs: duration.Milliseconds(),
	}, duration)

	return models.CollaboratorHealth{
		OK:     text == healthProbeExpected,
		HasKey: true,
		Sample: &text,
	}
}

// RecentCalls lists audit records newest first. Without an audit store it reports none.
func (s *narratorService) RecentCalls(ctx context.Context, filters dto.CollaboratorCallFilters, limit int) ([]*models.CollaboratorCall, int64, error) {
	limit = ClampRecentCallsLimit(limit)

	if s.callRepo == nil {
		return []*models.CollaboratorCall{}, 0, nil
	}

	return s.callRepo.List(ctx, filters, 0, limit)
}

// ClampRecentCallsLimit applies the default for non-positive limits and caps the rest
func ClampRecentCallsLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultRecentCallsLimit
	case limit > MaxRecentCallsLimit:
		return MaxRecentCallsLimit
	default:
		return limit
	}
}
