package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/utils"
)

type DBPatron struct {
	Id           string           `db:"id"`
	FirstName    string           `db:"first_name"`
	LastName     string           `db:"last_name"`
	DateOfBirth  pgtype.Timestamp `db:"date_of_birth"`
	Email        pgtype.Text      `db:"email"`
	Phone        pgtype.Text      `db:"phone"`
	Address      pgtype.Text      `db:"address"`
	GovernmentId pgtype.Text      `db:"government_id"`
	Ssn          pgtype.Text      `db:"ssn"`
	CreatedAt    time.Time        `db:"created_at"`
}

const TABLE_PATRONS = "patrons"

var SelectPatronColumn = utils.ColumnList[DBPatron]()

func AdaptPatron(db DBPatron) (models.Patron, error) {
	return models.Patron{
		Id:           db.Id,
		FirstName:    db.FirstName,
		LastName:     db.LastName,
		DateOfBirth:  timeOrNil(db.DateOfBirth),
		Email:        textOrNil(db.Email),
		Phone:        textOrNil(db.Phone),
		Address:      textOrNil(db.Address),
		GovernmentId: textOrNil(db.GovernmentId),
		Ssn:          textOrNil(db.Ssn),
		CreatedAt:    db.CreatedAt,
	}, nil
}
