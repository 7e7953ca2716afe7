package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/utils"
)

type DBCtr struct {
	Id             string           `db:"id"`
	Status         string           `db:"status"`
	CurrentOwner   pgtype.Text      `db:"current_owner"`
	Approver       pgtype.Text      `db:"approver"`
	Recommendation pgtype.Text      `db:"recommendation"`
	PatronId       pgtype.Text      `db:"patron_id"`
	PatronName     pgtype.Text      `db:"patron_name"`
	DateOfBirth    pgtype.Timestamp `db:"date_of_birth"`
	Ship           pgtype.Text      `db:"ship"`
	GamingDay      pgtype.Timestamp `db:"gaming_day"`
	EmbarkDate     pgtype.Timestamp `db:"embark_date"`
	DebarkDate     pgtype.Timestamp `db:"debark_date"`
	CashIn         pgtype.Float8    `db:"cash_in"`
	CashOut        pgtype.Float8    `db:"cash_out"`
	CreatedAt      time.Time        `db:"created_at"`
}

const TABLE_CTRS = "ctrs"

var SelectCtrColumn = utils.ColumnList[DBCtr]()

func AdaptCtr(db DBCtr) (models.Case, error) {
	return models.Case{
		Id:             db.Id,
		Kind:           models.CaseKindCtr,
		Status:         models.CaseStatus(db.Status),
		CurrentOwner:   textOrNil(db.CurrentOwner),
		Approver:       textOrNil(db.Approver),
		Recommendation: textOrNil(db.Recommendation),
		PatronId:       textOrNil(db.PatronId),
		PatronName:     textOrNil(db.PatronName),
		DateOfBirth:    timeOrNil(db.DateOfBirth),
		Ship:           textOrNil(db.Ship),
		GamingDay:      timeOrNil(db.GamingDay),
		EmbarkDate:     timeOrNil(db.EmbarkDate),
		DebarkDate:     timeOrNil(db.DebarkDate),
		CashIn:         float8OrNil(db.CashIn),
		CashOut:        float8OrNil(db.CashOut),
		CreatedAt:      db.CreatedAt,
	}, nil
}

type DBForm8300 struct {
	Id             string           `db:"id"`
	Status         string           `db:"status"`
	CurrentOwner   pgtype.Text      `db:"current_owner"`
	Approver       pgtype.Text      `db:"approver"`
	Recommendation pgtype.Text      `db:"recommendation"`
	PatronId       pgtype.Text      `db:"patron_id"`
	PatronName     pgtype.Text      `db:"patron_name"`
	DateOfBirth    pgtype.Timestamp `db:"date_of_birth"`
	Ship           pgtype.Text      `db:"ship"`
	GamingDay      pgtype.Timestamp `db:"gaming_day"`
	EmbarkDate     pgtype.Timestamp `db:"embark_date"`
	DebarkDate     pgtype.Timestamp `db:"debark_date"`
	FolioNumber    pgtype.Text      `db:"folio_number"`
	VoyageTotal    pgtype.Float8    `db:"voyage_total"`
	CreatedAt      time.Time        `db:"created_at"`
}

const TABLE_FORM_8300S = "form_8300s"

var SelectForm8300Column = utils.ColumnList[DBForm8300]()

func AdaptForm8300(db DBForm8300) (models.Case, error) {
	return models.Case{
		Id:             db.Id,
		Kind:           models.CaseKindForm8300,
		Status:         models.CaseStatus(db.Status),
		CurrentOwner:   textOrNil(db.CurrentOwner),
		Approver:       textOrNil(db.Approver),
		Recommendation: textOrNil(db.Recommendation),
		PatronId:       textOrNil(db.PatronId),
		PatronName:     textOrNil(db.PatronName),
		DateOfBirth:    timeOrNil(db.DateOfBirth),
		Ship:           textOrNil(db.Ship),
		GamingDay:      timeOrNil(db.GamingDay),
		EmbarkDate:     timeOrNil(db.EmbarkDate),
		DebarkDate:     timeOrNil(db.DebarkDate),
		FolioNumber:    textOrNil(db.FolioNumber),
		VoyageTotal:    float8OrNil(db.VoyageTotal),
		CreatedAt:      db.CreatedAt,
	}, nil
}
