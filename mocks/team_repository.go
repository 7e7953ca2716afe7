package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/repositories"
)

type TeamRepository struct {
	mock.Mock
}

func (r *TeamRepository) GetTeamMemberById(ctx context.Context, exec repositories.Executor,
	memberId string,
) (models.TeamMember, error) {
	args := r.Called(ctx, exec, memberId)
	return args.Get(0).(models.TeamMember), args.Error(1)
}

func (r *TeamRepository) GetTeamMemberByEmail(ctx context.Context, exec repositories.Executor,
	email string,
) (models.TeamMember, error) {
	args := r.Called(ctx, exec, email)
	return args.Get(0).(models.TeamMember), args.Error(1)
}

func (r *TeamRepository) ListTeamMembers(ctx context.Context, exec repositories.Executor,
) ([]models.TeamMember, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).([]models.TeamMember), args.Error(1)
}

func (r *TeamRepository) UpdateTeamMember(ctx context.Context, exec repositories.Executor,
	attrs models.UpdateTeamMemberAttributes,
) error {
	args := r.Called(ctx, exec, attrs)
	return args.Error(0)
}

func (r *TeamRepository) UpdateTeamMemberPasswordHash(ctx context.Context, exec repositories.Executor,
	memberId string, passwordHash string,
) error {
	args := r.Called(ctx, exec, memberId, passwordHash)
	return args.Error(0)
}

func (r *TeamRepository) UpdateTeamMemberAvatar(ctx context.Context, exec repositories.Executor,
	memberId string, avatarPath *string,
) error {
	args := r.Called(ctx, exec, memberId, avatarPath)
	return args.Error(0)
}

func (r *TeamRepository) NotifyRosterChanged(ctx context.Context, exec repositories.Executor,
	memberId string, operation string,
) error {
	args := r.Called(ctx, exec, memberId, operation)
	return args.Error(0)
}

type RosterSubscriber struct {
	mock.Mock
}

func (s *RosterSubscriber) Subscribe(ctx context.Context) chan models.RosterEvent {
	args := s.Called(ctx)
	return args.Get(0).(chan models.RosterEvent)
}
