package models

import (
	"fmt"
	"slices"
)

type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleAnalyst Role = "Analyst"
	RoleManager Role = "Manager"
)

var ValidRoles = []Role{RoleAdmin, RoleAnalyst, RoleManager}

func ValidateRoles(roles []string) ([]Role, error) {
	if len(roles) == 0 {
		return nil, fmt.Errorf("a team member must have at least one role: %w", BadParameterError)
	}
	out := make([]Role, len(roles))
	for i, r := range roles {
		role := Role(r)
		if !slices.Contains(ValidRoles, role) {
			return nil, fmt.Errorf("unknown role %q: %w", r, BadParameterError)
		}
		out[i] = role
	}
	return out, nil
}

type Permission int

const (
	CASE_READ Permission = iota
	CASE_ASSIGN
	CASE_REVIEW
	CASE_APPROVE
	CASE_FILE_WRITE
	PATRON_READ
	PATRON_WRITE
	TEAM_READ
	TEAM_MANAGE
)

var permissionNames = map[Permission]string{
	CASE_READ:       "CASE_READ",
	CASE_ASSIGN:     "CASE_ASSIGN",
	CASE_REVIEW:     "CASE_REVIEW",
	CASE_APPROVE:    "CASE_APPROVE",
	CASE_FILE_WRITE: "CASE_FILE_WRITE",
	PATRON_READ:     "PATRON_READ",
	PATRON_WRITE:    "PATRON_WRITE",
	TEAM_READ:       "TEAM_READ",
	TEAM_MANAGE:     "TEAM_MANAGE",
}

func (p Permission) String() string {
	return permissionNames[p]
}

var rolePermissions = map[Role][]Permission{
	RoleAnalyst: {
		CASE_READ, CASE_ASSIGN, CASE_REVIEW, CASE_FILE_WRITE,
		PATRON_READ, PATRON_WRITE, TEAM_READ,
	},
	RoleManager: {
		CASE_READ, CASE_ASSIGN, CASE_REVIEW, CASE_APPROVE, CASE_FILE_WRITE,
		PATRON_READ, PATRON_WRITE, TEAM_READ,
	},
	RoleAdmin: {
		CASE_READ, CASE_ASSIGN, CASE_REVIEW, CASE_APPROVE, CASE_FILE_WRITE,
		PATRON_READ, PATRON_WRITE, TEAM_READ, TEAM_MANAGE,
	},
}

func (r Role) Permissions() []Permission {
	permissions := rolePermissions[r]
	if permissions == nil {
		return []Permission{}
	}
	return permissions
}

func (r Role) HasPermission(permission Permission) bool {
	return slices.Contains(r.Permissions(), permission)
}
