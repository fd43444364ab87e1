package repositories

import (
	"context"
	"time"

	"financial-coach/internal/dto"
	"financial-coach/internal/models"

	"github.com/google/uuid"
)

// CollaboratorCallRepositoryInterface stores diagnostic records of collaborator calls
type CollaboratorCallRepositoryInterface interface {
	Create(ctx context.Context, call *models.CollaboratorCall) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CollaboratorCall, error)
	List(ctx context.Context, filters dto.CollaboratorCallFilters, offset, limit int) ([]*models.CollaboratorCall, int64, error)
	CountByOutcome(ctx context.Context, since time.Time) (map[string]int64, error)
	DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error)
}
