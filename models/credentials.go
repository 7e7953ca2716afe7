package models

import "slices"

type Identity struct {
	MemberId  string
	Email     string
	FirstName string
	LastName  string
}

type Credentials struct {
	ActorIdentity Identity
	Roles         []Role
	IsAdmin       bool
}

func (m TeamMember) IntoCredentials() Credentials {
	return Credentials{
		ActorIdentity: Identity{
			MemberId:  m.Id,
			Email:     m.Email,
			FirstName: m.FirstName,
			LastName:  m.LastName,
		},
		Roles:   slices.Clone(m.Roles),
		IsAdmin: m.IsAdmin,
	}
}

func (c Credentials) HasPermission(permission Permission) bool {
	if c.IsAdmin {
		return true
	}
	for _, role := range c.Roles {
		if role.HasPermission(permission) {
			return true
		}
	}
	return false
}
