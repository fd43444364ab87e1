package repositories

import (
	"context"
	"testing"
	"time"

	"financial-coach/internal/database"
	"financial-coach/internal/dto"
	"financial-coach/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestCollaboratorCallRepository(t *testing.T) {
	suite.Run(t, new(CollaboratorCallRepositorySuite))
}

type CollaboratorCallRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo CollaboratorCallRepositoryInterface
	ctx  context.Context
}

func (s *CollaboratorCallRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCollaboratorCallRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *CollaboratorCallRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *CollaboratorCallRepositorySuite) newCall(operation, outcome string, createdAt time.Time) *models.CollaboratorCall {
	return &models.CollaboratorCall{
		Operation:  operation,
		Outcome:    outcome,
		DurationMs: int64(gofakeit.IntRange(1, 2000)),
		TraceID:    gofakeit.UUID(),
		CreatedAt:  createdAt,
	}
}

func (s *CollaboratorCallRepositorySuite) TestCreate() {
	call := s.newCall(models.CollaboratorOperationNarrative, models.CollaboratorOutcomeOK, time.Time{})

	err := s.repo.Create(s.ctx, call)
	s.NoError(err)
	s.NotEqual(uuid.Nil, call.ID)
	s.NotZero(call.CreatedAt)
}

func (s *CollaboratorCallRepositorySuite) TestCreate_Nil() {
	err := s.repo.Create(s.ctx, nil)
	s.Error(err)
}

func (s *CollaboratorCallRepositorySuite) TestGetByID() {
	call := s.newCall(models.CollaboratorOperationExplainCredit, models.CollaboratorOutcomeFallback, time.Now())
	call.ErrorKind = "timeout"
	call.ErrorText = "context deadline exceeded"
	s.Require().NoError(s.repo.Create(s.ctx, call))

	found, err := s.repo.GetByID(s.ctx, call.ID)
	s.Require().NoError(err)
	s.Equal(call.Operation, found.Operation)
	s.Equal(call.Outcome, found.Outcome)
	s.Equal("timeout", found.ErrorKind)
	s.Equal(call.TraceID, found.TraceID)
	s.True(found.IsFailure())
}

func (s *CollaboratorCallRepositorySuite) TestGetByID_NotFound() {
	found, err := s.repo.GetByID(s.ctx, uuid.New())
	s.Nil(found)
	s.ErrorIs(err, ErrCollaboratorCallNotFound)
}

func (s *CollaboratorCallRepositorySuite) TestList_NewestFirstWithFilters() {
	now := time.Now()
	s.Require().NoError(s.repo.Create(s.ctx, s.newCall(models.CollaboratorOperationNarrative, models.CollaboratorOutcomeOK, now.Add(-3*time.Minute))))
	s.Require().NoError(s.repo.Create(s.ctx, s.newCall(models.CollaboratorOperationNarrative, models.CollaboratorOutcomeFallback, now.Add(-2*time.Minute))))
	s.Require().NoError(s.repo.Create(s.ctx, s.newCall(models.CollaboratorOperationHealthProbe, models.CollaboratorOutcomeOK, now.Add(-1*time.Minute))))

	calls, total, err := s.repo.List(s.ctx, dto.CollaboratorCallFilters{}, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(calls, 3)
	s.Equal(models.CollaboratorOperationHealthProbe, calls[0].Operation)

	calls, total, err = s.repo.List(s.ctx, dto.CollaboratorCallFilters{Operation: models.CollaboratorOperationNarrative}, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Equal(models.CollaboratorOutcomeFallback, calls[0].Outcome)

	calls, total, err = s.repo.List(s.ctx, dto.CollaboratorCallFilters{
		Operation: models.CollaboratorOperationNarrative,
		Outcome:   models.CollaboratorOutcomeOK,
	}, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Len(calls, 1)
}

func (s *CollaboratorCallRepositorySuite) TestList_Pagination() {
	now := time.Now()
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.repo.Create(s.ctx, s.newCall(models.CollaboratorOperationNarrative, models.CollaboratorOutcomeOK, now.Add(time.Duration(-i)*time.Minute))))
	}

	calls, total, err := s.repo.List(s.ctx, dto.CollaboratorCallFilters{}, 2, 2)
	s.Require().NoError(err)
	s.Equal(int64(5), total)
	s.Len(calls, 2)

	calls, _, err = s.repo.List(s.ctx, dto.CollaboratorCallFilters{}, -1, 0)
	s.Require().NoError(err)
	s.Len(calls, 5)
}

func (s *CollaboratorCallRepositorySuite) TestCountByOutcome() {
	now := time.Now()
	s.Require().NoError(s.repo.Create(s.ctx, s.newCall(models.CollaboratorOperationNarrative, models.CollaboratorOutcomeOK, now)))
	s.Require().NoError(s.repo.Create(s.ctx, s.newCall(models.CollaboratorOperationNarrative, models.CollaboratorOutcomeOK, now)))
	s.Require().NoError(s.repo.Create(s.ctx, s.newCall(models.CollaboratorOperationExplainCredit, models.CollaboratorOutcomeSkipped, now)))
	s.Require().NoError(s.repo.Create(s.ctx, s.newCall(models.CollaboratorOperationExplainCredit, models.CollaboratorOutcomeFallback, now.Add(-48*time.Hour))))

	counts, err := s.repo.CountByOutcome(s.ctx, now.Add(-time.Hour))
	s.Require().NoError(err)
	s.Equal(int64(2), counts[models.CollaboratorOutcomeOK])
	s.Equal(int64(1), counts[models.CollaboratorOutcomeSkipped])
	s.Zero(counts[models.CollaboratorOutcomeFallback])
}

func (s *CollaboratorCallRepositorySuite) TestDeleteOlderThan() {
	now := time.Now()
	s.Require().NoError(s.repo.Create(s.ctx, s.newCall(models.CollaboratorOperationNarrative, models.CollaboratorOutcomeOK, now.Add(-72*time.Hour))))
	s.Require().NoError(s.repo.Create(s.ctx, s.newCall(models.CollaboratorOperationNarrative, models.CollaboratorOutcomeOK, now.Add(-30*time.Hour))))
	s.Require().NoError(s.repo.Create(s.ctx, s.newCall(models.CollaboratorOperationNarrative, models.CollaboratorOutcomeOK, now)))

	deleted, err := s.repo.DeleteOlderThan(s.ctx, 24*time.Hour)
	s.Require().NoError(err)
	s.Equal(int64(2), deleted)

	_, total, err := s.repo.List(s.ctx, dto.CollaboratorCallFilters{}, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
}
