package dto

import (
	"time"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/pure_utils"
)

type APITeamMember struct {
	Id          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DisplayName string    `json:"display_name"`
	Phone       *string   `json:"phone,omitempty"`
	Roles       []string  `json:"roles"`
	IsAdmin     bool      `json:"is_admin"`
	HasAvatar   bool      `json:"has_avatar"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdaptTeamMemberDto never exposes the password hash.
func AdaptTeamMemberDto(m models.TeamMember) APITeamMember {
	return APITeamMember{
		Id:          m.Id,
		Email:       m.Email,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		DisplayName: m.DisplayName(),
		Phone:       m.Phone,
		Roles: pure_utils.Map(m.Roles, func(r models.Role) string {
			return string(r)
		}),
		IsAdmin:   m.IsAdmin,
		HasAvatar: m.AvatarPath != nil,
		CreatedAt: m.CreatedAt,
	}
}

type UpdateTeamMemberBody struct {
	FirstName string   `json:"first_name" binding:"required"`
	LastName  string   `json:"last_name" binding:"required"`
	Phone     *string  `json:"phone"`
	Roles     []string `json:"roles"`
	IsAdmin   *bool    `json:"is_admin"`
}

type RosterEventDto struct {
	MemberId  string    `json:"member_id"`
	Operation string    `json:"operation"`
	At        time.Time `json:"at"`
}

func AdaptRosterEventDto(e models.RosterEvent) RosterEventDto {
	return RosterEventDto{
		MemberId:  e.MemberId,
		Operation: e.Operation,
		At:        e.At,
	}
}
