package models

import "time"

// TeamMember is a row of the profiles table. Roles is always non-empty; the
// IsAdmin flag is independent of the Admin role and short-circuits every
// permission check.
type TeamMember struct {
	Id           string
	Email        string
	FirstName    string
	LastName     string
	Phone        *string
	Roles        []Role
	IsAdmin      bool
	AvatarPath   *string
	PasswordHash string
	CreatedAt    time.Time
}

func (m TeamMember) DisplayName() string {
	if m.FirstName == "" && m.LastName == "" {
		return m.Email
	}
	return m.FirstName + " " + m.LastName
}

type UpdateTeamMemberAttributes struct {
	Id        string
	FirstName string
	LastName  string
	Phone     *string
	Roles     []Role
	IsAdmin   *bool
}

// RosterEvent is one row-level change notification on the profiles table,
// delivered over the team roster change feed.
type RosterEvent struct {
	MemberId  string
	Operation string
	At        time.Time
}
