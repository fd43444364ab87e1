package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"financial-coach/internal/dto"
	"financial-coach/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCollaboratorCallNotFound = errors.New("collaborator call not found")

const (
	DefaultCallListLimit = 50
	MaxCallListLimit     = 500
)

// CollaboratorCallRepository handles database operations for collaborator call records
type CollaboratorCallRepository struct {
	db *gorm.DB
}

// NewCollaboratorCallRepository creates a new collaborator call repository
func NewCollaboratorCallRepository(db *gorm.DB) CollaboratorCallRepositoryInterface {
	return &CollaboratorCallRepository{
		db: db,
	}
}

// Create stores a new collaborator call record
func (r *CollaboratorCallRepository) Create(ctx context.Context, call *models.CollaboratorCall) error {
	if call == nil {
		return errors.New("collaborator call cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(call).Error; err != nil {
		return fmt.Errorf("failed to create collaborator call: %w", err)
	}

	return nil
}

// GetByID retrieves a collaborator call by its ID
func (r *CollaboratorCallRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CollaboratorCall, error) {
	call := &models.CollaboratorCall{}
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(call).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollaboratorCallNotFound
		}
		return nil, fmt.Errorf("failed to get collaborator call by ID: %w", err)
	}

	return call, nil
}

// List returns the newest records first, optionally filtered by operation and outcome
func (r *CollaboratorCallRepository) List(ctx context.Context, filters dto.CollaboratorCallFilters, offset, limit int) ([]*models.CollaboratorCall, int64, error) {
	if limit <= 0 || limit > MaxCallListLimit {
		limit = DefaultCallListLimit
	}
	if offset < 0 {
		offset = 0
	}

	var calls []*models.CollaboratorCall
	var total int64

	query := r.db.WithContext(ctx).Model(&models.CollaboratorCall{})
	if filters.Operation != "" {
		query = query.Where("operation = ?", filters.Operation)
	}
	if filters.Outcome != "" {
		query = query.Where("outcome = ?", filters.Outcome)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count collaborator calls: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&calls).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list collaborator calls: %w", err)
	}

	return calls, total, nil
}

// CountByOutcome tallies records created after since, keyed by outcome
func (r *CollaboratorCallRepository) CountByOutcome(ctx context.Context, since time.Time) (map[string]int64, error) {
	type outcomeCount struct {
		Outcome string
		Count   int64
	}

	var rows []outcomeCount
	if err := r.db.WithContext(ctx).Model(&models.CollaboratorCall{}).
		Select("outcome, COUNT(*) AS count").
		Where("created_at > ?", since).
		Group("outcome").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count collaborator calls by outcome: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Outcome] = row.Count
	}
	return counts, nil
}

// DeleteOlderThan removes records older than the given age
func (r *CollaboratorCallRepository) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	cutoffTime := time.Now().Add(-age)

	result := r.db.WithContext(ctx).Where("created_at < ?", cutoffTime).Delete(&models.CollaboratorCall{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete old collaborator calls: %w", result.Error)
	}

	return result.RowsAffected, nil
}
