package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/repositories"
)

type PatronRepository struct {
	mock.Mock
}

func (r *PatronRepository) CreatePatron(ctx context.Context, exec repositories.Executor,
	patronId string, attrs models.CreatePatronAttributes,
) error {
	args := r.Called(ctx, exec, patronId, attrs)
	return args.Error(0)
}

func (r *PatronRepository) UpdatePatron(ctx context.Context, exec repositories.Executor,
	attrs models.UpdatePatronAttributes,
) error {
	args := r.Called(ctx, exec, attrs)
	return args.Error(0)
}

func (r *PatronRepository) GetPatronById(ctx context.Context, exec repositories.Executor,
	patronId string,
) (models.Patron, error) {
	args := r.Called(ctx, exec, patronId)
	return args.Get(0).(models.Patron), args.Error(1)
}

func (r *PatronRepository) ListPatrons(ctx context.Context, exec repositories.Executor,
	filters models.PatronFilters,
) ([]models.Patron, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.Patron), args.Error(1)
}

func (r *PatronRepository) ListCases(ctx context.Context, exec repositories.Executor,
	filters models.CaseFilters,
) ([]models.Case, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.Case), args.Error(1)
}

func (r *PatronRepository) ListPatronFiles(ctx context.Context, exec repositories.Executor,
	patronId string,
) ([]models.PatronFile, error) {
	args := r.Called(ctx, exec, patronId)
	return args.Get(0).([]models.PatronFile), args.Error(1)
}

func (r *PatronRepository) GetPatronFileById(ctx context.Context, exec repositories.Executor,
	patronFileId string,
) (models.PatronFile, error) {
	args := r.Called(ctx, exec, patronFileId)
	return args.Get(0).(models.PatronFile), args.Error(1)
}

func (r *PatronRepository) CreatePatronFile(ctx context.Context, exec repositories.Executor,
	attrs models.CreateDbPatronFileAttributes,
) error {
	args := r.Called(ctx, exec, attrs)
	return args.Error(0)
}

func (r *PatronRepository) DeletePatronFile(ctx context.Context, exec repositories.Executor,
	patronFileId string,
) error {
	args := r.Called(ctx, exec, patronFileId)
	return args.Error(0)
}
