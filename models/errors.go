package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Authentication related errors
var (
	ErrUnknownTeamMember  = errors.Wrap(NotFoundError, "unknown team member")
	ErrInvalidCredentials = errors.Wrap(UnAuthorizedError, "invalid email or password")
)

// Case workflow related errors
var (
	ErrIllegalStatusTransition = errors.Wrap(BadParameterError, "illegal case status transition")
	ErrNotCaseOwner            = errors.Wrap(ForbiddenError, "caller is not the current owner of the case")
	ErrNotDesignatedApprover   = errors.Wrap(ForbiddenError, "caller is not the designated approver of the case")
	ErrCaseUnassigned          = errors.Wrap(BadParameterError, "case has no current owner")
	ErrMissingRecommendation   = errors.Wrap(BadParameterError, "a recommendation must be chosen before submission")
	ErrMissingApprover         = errors.Wrap(BadParameterError, "an approver must be chosen before submission")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")
