package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/meridiancruises/compliance-backend/models"
)

type EnforceSecurity struct {
	mock.Mock
}

func (e *EnforceSecurity) Permission(permission models.Permission) error {
	args := e.Called(permission)
	return args.Error(0)
}

func (e *EnforceSecurity) ReadCase(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) AssignCase() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReviewCase(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) ApproveCase(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) WriteCaseFile() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadPatron() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) WritePatron() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadTeam() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) UpdateTeamMember(memberId string) error {
	args := e.Called(memberId)
	return args.Error(0)
}

func (e *EnforceSecurity) ManageTeam() error {
	args := e.Called()
	return args.Error(0)
}
