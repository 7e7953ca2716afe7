package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/utils"
)

type DBCaseEvent struct {
	Id            string      `db:"id"`
	CaseId        string      `db:"case_id"`
	CaseKind      string      `db:"case_kind"`
	MemberId      pgtype.Text `db:"member_id"`
	EventType     string      `db:"event_type"`
	NewValue      pgtype.Text `db:"new_value"`
	PreviousValue pgtype.Text `db:"previous_value"`
	CreatedAt     time.Time   `db:"created_at"`
}

const TABLE_CASE_EVENTS = "case_events"

var SelectCaseEventColumn = utils.ColumnList[DBCaseEvent]()

func AdaptCaseEvent(db DBCaseEvent) (models.CaseEvent, error) {
	return models.CaseEvent{
		Id:            db.Id,
		CaseId:        db.CaseId,
		CaseKind:      models.CaseKind(db.CaseKind),
		MemberId:      textOrNil(db.MemberId),
		EventType:     models.CaseEventType(db.EventType),
		NewValue:      textOrNil(db.NewValue),
		PreviousValue: textOrNil(db.PreviousValue),
		CreatedAt:     db.CreatedAt,
	}, nil
}
