package security

import (
	"github.com/cockroachdb/errors"

	"github.com/meridiancruises/compliance-backend/models"
)

type EnforceSecurityTeam interface {
	EnforceSecurity
	ReadTeam() error
	UpdateTeamMember(memberId string) error
	ManageTeam() error
}

type EnforceSecurityTeamImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityTeamImpl) ReadTeam() error {
	return e.Permission(models.TEAM_READ)
}

// UpdateTeamMember allows members to edit their own profile; editing anyone
// else requires TEAM_MANAGE.
func (e *EnforceSecurityTeamImpl) UpdateTeamMember(memberId string) error {
	if memberId == e.Credentials.ActorIdentity.MemberId {
		return e.Permission(models.TEAM_READ)
	}
	if err := e.Permission(models.TEAM_MANAGE); err != nil {
		return errors.WithDetail(err, "only admins can edit other team members")
	}
	return nil
}

func (e *EnforceSecurityTeamImpl) ManageTeam() error {
	return e.Permission(models.TEAM_MANAGE)
}
