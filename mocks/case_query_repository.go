package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/repositories"
)

type CaseQueryRepository struct {
	mock.Mock
}

func (r *CaseQueryRepository) ListCases(ctx context.Context, exec repositories.Executor,
	filters models.CaseFilters,
) ([]models.Case, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.Case), args.Error(1)
}

func (r *CaseQueryRepository) GetCaseByRef(ctx context.Context, exec repositories.Executor,
	ref models.CaseRef,
) (models.Case, error) {
	args := r.Called(ctx, exec, ref)
	return args.Get(0).(models.Case), args.Error(1)
}

func (r *CaseQueryRepository) ListCaseFiles(ctx context.Context, exec repositories.Executor,
	ref models.CaseRef,
) ([]models.CaseFile, error) {
	args := r.Called(ctx, exec, ref)
	return args.Get(0).([]models.CaseFile), args.Error(1)
}

func (r *CaseQueryRepository) ListCaseEvents(ctx context.Context, exec repositories.Executor,
	ref models.CaseRef,
) ([]models.CaseEvent, error) {
	args := r.Called(ctx, exec, ref)
	return args.Get(0).([]models.CaseEvent), args.Error(1)
}

func (r *CaseQueryRepository) ListTeamMembers(ctx context.Context, exec repositories.Executor,
) ([]models.TeamMember, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).([]models.TeamMember), args.Error(1)
}
