package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/repositories"
)

type CaseWorkflowRepository struct {
	mock.Mock
}

func (r *CaseWorkflowRepository) GetCaseByRef(ctx context.Context, exec repositories.Executor,
	ref models.CaseRef,
) (models.Case, error) {
	args := r.Called(ctx, exec, ref)
	return args.Get(0).(models.Case), args.Error(1)
}

func (r *CaseWorkflowRepository) UpdateCaseWorkflow(ctx context.Context, exec repositories.Executor,
	ref models.CaseRef, update models.CaseWorkflowUpdate,
) error {
	args := r.Called(ctx, exec, ref, update)
	return args.Error(0)
}

func (r *CaseWorkflowRepository) CreateCaseEvent(ctx context.Context, exec repositories.Executor,
	attrs models.CreateCaseEventAttributes,
) error {
	args := r.Called(ctx, exec, attrs)
	return args.Error(0)
}

func (r *CaseWorkflowRepository) GetTeamMemberById(ctx context.Context, exec repositories.Executor,
	memberId string,
) (models.TeamMember, error) {
	args := r.Called(ctx, exec, memberId)
	return args.Get(0).(models.TeamMember), args.Error(1)
}

type FileArchiver struct {
	mock.Mock
}

func (a *FileArchiver) ArchiveCaseFiles(ctx context.Context, c models.Case,
) (models.FileArchiveReport, error) {
	args := a.Called(ctx, c)
	return args.Get(0).(models.FileArchiveReport), args.Error(1)
}
