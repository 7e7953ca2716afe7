package dto

import (
	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/pure_utils"
)

type Identity struct {
	MemberId  string `json:"member_id,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type Credentials struct {
	ActorIdentity Identity `json:"actor_identity"`
	Roles         []string `json:"roles"`
	IsAdmin       bool     `json:"is_admin"`
}

func AdaptCredentialDto(creds models.Credentials) Credentials {
	return Credentials{
		ActorIdentity: Identity{
			MemberId:  creds.ActorIdentity.MemberId,
			Email:     creds.ActorIdentity.Email,
			FirstName: creds.ActorIdentity.FirstName,
			LastName:  creds.ActorIdentity.LastName,
		},
		Roles: pure_utils.Map(creds.Roles, func(r models.Role) string {
			return string(r)
		}),
		IsAdmin: creds.IsAdmin,
	}
}

func AdaptCredential(dto Credentials) (models.Credentials, error) {
	roles, err := models.ValidateRoles(dto.Roles)
	if err != nil {
		return models.Credentials{}, err
	}
	return models.Credentials{
		ActorIdentity: models.Identity{
			MemberId:  dto.ActorIdentity.MemberId,
			Email:     dto.ActorIdentity.Email,
			FirstName: dto.ActorIdentity.FirstName,
			LastName:  dto.ActorIdentity.LastName,
		},
		Roles:   roles,
		IsAdmin: dto.IsAdmin,
	}, nil
}
