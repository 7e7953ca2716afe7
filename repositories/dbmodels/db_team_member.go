package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/utils"
)

type DBTeamMember struct {
	Id           string      `db:"id"`
	Email        string      `db:"email"`
	FirstName    string      `db:"first_name"`
	LastName     string      `db:"last_name"`
	Phone        pgtype.Text `db:"phone"`
	Roles        []string    `db:"roles"`
	IsAdmin      bool        `db:"is_admin"`
	AvatarPath   pgtype.Text `db:"avatar_path"`
	PasswordHash string      `db:"password_hash"`
	CreatedAt    time.Time   `db:"created_at"`
}

const TABLE_PROFILES = "profiles"

var SelectTeamMemberColumn = utils.ColumnList[DBTeamMember]()

func AdaptTeamMember(db DBTeamMember) (models.TeamMember, error) {
	roles, err := models.ValidateRoles(db.Roles)
	if err != nil {
		return models.TeamMember{}, err
	}

	return models.TeamMember{
		Id:           db.Id,
		Email:        db.Email,
		FirstName:    db.FirstName,
		LastName:     db.LastName,
		Phone:        textOrNil(db.Phone),
		Roles:        roles,
		IsAdmin:      db.IsAdmin,
		AvatarPath:   textOrNil(db.AvatarPath),
		PasswordHash: db.PasswordHash,
		CreatedAt:    db.CreatedAt,
	}, nil
}
