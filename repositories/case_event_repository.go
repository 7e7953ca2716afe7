package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/repositories/dbmodels"
)

func (repo *ComplianceDbRepository) CreateCaseEvent(ctx context.Context, exec Executor,
	attrs models.CreateCaseEventAttributes,
) error {
	return ExecBuilder(ctx, exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CASE_EVENTS).
			Columns(
				"id",
				"case_id",
				"case_kind",
				"member_id",
				"event_type",
				"new_value",
				"previous_value",
			).
			Values(
				uuid.NewString(),
				attrs.Ref.Id,
				string(attrs.Ref.Kind),
				attrs.MemberId,
				string(attrs.EventType),
				attrs.NewValue,
				attrs.PreviousValue,
			),
	)
}

func (repo *ComplianceDbRepository) ListCaseEvents(ctx context.Context, exec Executor,
	ref models.CaseRef,
) ([]models.CaseEvent, error) {
	return SqlToListOfModels(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseEventColumn...).
			From(dbmodels.TABLE_CASE_EVENTS).
			Where(squirrel.Eq{"case_id": ref.Id, "case_kind": string(ref.Kind)}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptCaseEvent)
}
