package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CollaboratorOperationNarrative          = "narrative"
	CollaboratorOperationExplainUntouchable = "explain_untouchable"
	CollaboratorOperationExplainCredit      = "explain_credit"
	CollaboratorOperationHealthProbe        = "health_probe"

	CollaboratorOutcomeOK       = "ok"
	CollaboratorOutcomeFallback = "fallback"
	CollaboratorOutcomeSkipped  = "skipped"
)

// CollaboratorCall is a diagnostic record of one text-completion attempt. It holds
// no transaction data or prompt text.
type CollaboratorCall struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Operation  string    `gorm:"type:varchar(50);not null;index" json:"operation"`
	Outcome    string    `gorm:"type:varchar(20);not null;index" json:"outcome"`
	ErrorKind  string    `gorm:"type:varchar(30)" json:"error_kind,omitempty"`
	ErrorText  string    `gorm:"type:text" json:"error_text,omitempty"`
	DurationMs int64     `gorm:"not null;default:0" json:"duration_ms"`
	TraceID    string    `gorm:"type:varchar(64)" json:"trace_id,omitempty"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`
}

func (cc *CollaboratorCall) TableName() string {
	return "collaborator_calls"
}

func (cc *CollaboratorCall) BeforeCreate(tx *gorm.DB) error {
	if cc.ID == uuid.Nil {
		cc.ID = uuid.New()
	}

	if cc.CreatedAt.IsZero() {
		cc.CreatedAt = time.Now()
	}
	return nil
}

// IsValidCallOutcome checks an outcome filter against the recorded outcomes
func IsValidCallOutcome(outcome string) bool {
	switch outcome {
	case CollaboratorOutcomeOK, CollaboratorOutcomeFallback, CollaboratorOutcomeSkipped:
		return true
	default:
		return false
	}
}

// IsFailure reports whether the call fell back to deterministic text
func (cc *CollaboratorCall) IsFailure() bool {
	return cc.Outcome == CollaboratorOutcomeFallback
}

func (cc *CollaboratorCall) String() string {
	return fmt.Sprintf("CollaboratorCall[Operation: %s, Outcome: %s, Duration: %dms, Trace: %s, Time: %s]",
		cc.Operation, cc.Outcome, cc.DurationMs, cc.TraceID, cc.CreatedAt.Format(time.RFC3339))
}
