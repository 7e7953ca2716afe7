package security

import (
	"github.com/meridiancruises/compliance-backend/models"
)

type EnforceSecurityPatron interface {
	EnforceSecurity
	ReadPatron() error
	WritePatron() error
}

type EnforceSecurityPatronImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityPatronImpl) ReadPatron() error {
	return e.Permission(models.PATRON_READ)
}

func (e *EnforceSecurityPatronImpl) WritePatron() error {
	return e.Permission(models.PATRON_WRITE)
}
