package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridiancruises/compliance-backend/models"
)

func caseEnforcer(creds models.Credentials) *EnforceSecurityCaseImpl {
	return &EnforceSecurityCaseImpl{
		EnforceSecurity: &EnforceSecurityImpl{Credentials: creds},
		Credentials:     creds,
	}
}

func TestEnforceSecurityCase_ReviewCase(t *testing.T) {
	ownerId := "aaaaaaaa-0000-0000-0000-000000000001"
	otherId := "aaaaaaaa-0000-0000-0000-000000000002"
	c := models.Case{Id: "c1", Kind: models.CaseKindCtr, CurrentOwner: &ownerId}

	t.Run("the owner may act on their case", func(t *testing.T) {
		enforcer := caseEnforcer(models.Credentials{
			ActorIdentity: models.Identity{MemberId: ownerId},
			Roles:         []models.Role{models.RoleAnalyst},
		})
		assert.NoError(t, enforcer.ReviewCase(c))
	})

	t.Run("a non-owner is rejected", func(t *testing.T) {
		enforcer := caseEnforcer(models.Credentials{
			ActorIdentity: models.Identity{MemberId: otherId},
			Roles:         []models.Role{models.RoleAnalyst},
		})
		assert.ErrorIs(t, enforcer.ReviewCase(c), models.ErrNotCaseOwner)
	})

	t.Run("an admin may act on a case they do not own", func(t *testing.T) {
		enforcer := caseEnforcer(models.Credentials{
			ActorIdentity: models.Identity{MemberId: otherId},
			IsAdmin:       true,
		})
		assert.NoError(t, enforcer.ReviewCase(c))
	})
}

func TestEnforceSecurityCase_ApproveCase(t *testing.T) {
	approverId := "aaaaaaaa-0000-0000-0000-000000000003"
	otherId := "aaaaaaaa-0000-0000-0000-000000000004"
	c := models.Case{Id: "c1", Kind: models.CaseKindCtr, Approver: &approverId}

	t.Run("the designated approver may rule", func(t *testing.T) {
		enforcer := caseEnforcer(models.Credentials{
			ActorIdentity: models.Identity{MemberId: approverId},
			Roles:         []models.Role{models.RoleManager},
		})
		assert.NoError(t, enforcer.ApproveCase(c))
	})

	t.Run("another manager is rejected", func(t *testing.T) {
		enforcer := caseEnforcer(models.Credentials{
			ActorIdentity: models.Identity{MemberId: otherId},
			Roles:         []models.Role{models.RoleManager},
		})
		assert.ErrorIs(t, enforcer.ApproveCase(c), models.ErrNotDesignatedApprover)
	})

	t.Run("an analyst lacks the approve permission entirely", func(t *testing.T) {
		enforcer := caseEnforcer(models.Credentials{
			ActorIdentity: models.Identity{MemberId: approverId},
			Roles:         []models.Role{models.RoleAnalyst},
		})
		assert.ErrorIs(t, enforcer.ApproveCase(c), models.ForbiddenError)
	})

	t.Run("an admin may rule without being the designated approver", func(t *testing.T) {
		enforcer := caseEnforcer(models.Credentials{
			ActorIdentity: models.Identity{MemberId: otherId},
			IsAdmin:       true,
		})
		assert.NoError(t, enforcer.ApproveCase(c))
	})
}
