package services

import (
	"context"
	"log/slog"
	"time"
)

type CollaboratorLogger struct {
	logger *slog.Logger
}

func NewCollaboratorLogger(logger *slog.Logger) CollaboratorLoggerInterface {
	return &CollaboratorLogger{
		logger: logger,
	}
}

func (cl *CollaboratorLogger) LogCallSucceeded(ctx context.Context, operation string, durationMs int64) {
	cl.logger.InfoContext(ctx, "collaborator call succeeded",
		slog.String("event_type", "collaborator_call_succeeded"),
		slog.String("operation", operation),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogCallFailed is logged at warn: the caller still gets fallback text
func (cl *CollaboratorLogger) LogCallFailed(ctx context.Context, operation, errorKind, errorMsg string, durationMs int64) {
	cl.logger.WarnContext(ctx, "collaborator call failed, using fallback text",
		slog.String("event_type", "collaborator_call_failed"),
		slog.String("operation", operation),
		slog.String("error_kind", errorKind),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (cl *CollaboratorLogger) LogCallSkipped(ctx context.Context, operation, reason string) {
	cl.logger.DebugContext(ctx, "collaborator call skipped",
		slog.String("event_type", "collaborator_call_skipped"),
		slog.String("operation", operation),
		slog.String("reason", reason),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (cl *CollaboratorLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	cl.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (cl *CollaboratorLogger) LogAuditWriteFailed(ctx context.Context, operation, errorMsg string) {
	cl.logger.ErrorContext(ctx, "failed to record collaborator call",
		slog.String("event_type", "collaborator_audit_write_failed"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}
