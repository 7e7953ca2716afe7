package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/repositories"
)

type CaseFileRepository struct {
	mock.Mock
}

func (r *CaseFileRepository) GetCaseByRef(ctx context.Context, exec repositories.Executor,
	ref models.CaseRef,
) (models.Case, error) {
	args := r.Called(ctx, exec, ref)
	return args.Get(0).(models.Case), args.Error(1)
}

func (r *CaseFileRepository) ListCaseFiles(ctx context.Context, exec repositories.Executor,
	ref models.CaseRef,
) ([]models.CaseFile, error) {
	args := r.Called(ctx, exec, ref)
	return args.Get(0).([]models.CaseFile), args.Error(1)
}

func (r *CaseFileRepository) GetCaseFileById(ctx context.Context, exec repositories.Executor,
	caseFileId string,
) (models.CaseFile, error) {
	args := r.Called(ctx, exec, caseFileId)
	return args.Get(0).(models.CaseFile), args.Error(1)
}

func (r *CaseFileRepository) CreateCaseFile(ctx context.Context, exec repositories.Executor,
	attrs models.CreateDbCaseFileAttributes,
) error {
	args := r.Called(ctx, exec, attrs)
	return args.Error(0)
}

func (r *CaseFileRepository) DeleteCaseFile(ctx context.Context, exec repositories.Executor,
	caseFileId string,
) error {
	args := r.Called(ctx, exec, caseFileId)
	return args.Error(0)
}

func (r *CaseFileRepository) CreatePatronFile(ctx context.Context, exec repositories.Executor,
	attrs models.CreateDbPatronFileAttributes,
) error {
	args := r.Called(ctx, exec, attrs)
	return args.Error(0)
}

func (r *CaseFileRepository) CreateCaseEvent(ctx context.Context, exec repositories.Executor,
	attrs models.CreateCaseEventAttributes,
) error {
	args := r.Called(ctx, exec, attrs)
	return args.Error(0)
}
