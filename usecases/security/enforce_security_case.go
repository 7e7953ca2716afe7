package security

import (
	"github.com/cockroachdb/errors"

	"github.com/meridiancruises/compliance-backend/models"
)

type EnforceSecurityCase interface {
	EnforceSecurity
	ReadCase(c models.Case) error
	AssignCase() error
	ReviewCase(c models.Case) error
	ApproveCase(c models.Case) error
	WriteCaseFile() error
}

type EnforceSecurityCaseImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityCaseImpl) ReadCase(c models.Case) error {
	return e.Permission(models.CASE_READ)
}

func (e *EnforceSecurityCaseImpl) AssignCase() error {
	return e.Permission(models.CASE_ASSIGN)
}

// ReviewCase covers the owner-only transitions: starting a review, returning
// a case, submitting it and withdrawing a submission.
func (e *EnforceSecurityCaseImpl) ReviewCase(c models.Case) error {
	if err := e.Permission(models.CASE_REVIEW); err != nil {
		return err
	}
	if e.Credentials.IsAdmin {
		return nil
	}
	if !c.IsOwnedBy(e.Credentials.ActorIdentity.MemberId) {
		return errors.WithDetailf(models.ErrNotCaseOwner,
			"case %s is owned by someone else", c.Ref())
	}
	return nil
}

// ApproveCase covers approval and rejection, both reserved to the approver
// chosen at submission time.
func (e *EnforceSecurityCaseImpl) ApproveCase(c models.Case) error {
	if err := e.Permission(models.CASE_APPROVE); err != nil {
		return err
	}
	if e.Credentials.IsAdmin {
		return nil
	}
	if !c.HasApprover(e.Credentials.ActorIdentity.MemberId) {
		return errors.WithDetailf(models.ErrNotDesignatedApprover,
			"case %s designates a different approver", c.Ref())
	}
	return nil
}

func (e *EnforceSecurityCaseImpl) WriteCaseFile() error {
	return e.Permission(models.CASE_FILE_WRITE)
}
