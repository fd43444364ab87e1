package services

import (
	"context"

	"financial-coach/internal/models"
)

// TextCompleterInterface is the text-generation collaborator. Complete returns an
// error, never an empty string, when no usable text was produced.
type TextCompleterInterface interface {
	Complete(ctx context.Context, prompt models.Prompt) (string, error)
	IsConfigured() bool
}
