package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/repositories/dbmodels"
)

func caseTable(kind models.CaseKind) string {
	if kind == models.CaseKindForm8300 {
		return dbmodels.TABLE_FORM_8300S
	}
	return dbmodels.TABLE_CTRS
}

func applyCaseFilters(query squirrel.SelectBuilder, filters models.CaseFilters) squirrel.SelectBuilder {
	if len(filters.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": filters.Statuses})
	}
	if filters.OwnerId != nil {
		query = query.Where(squirrel.Eq{"current_owner": *filters.OwnerId})
	}
	if filters.UnassignedOnly {
		query = query.Where(squirrel.Eq{"current_owner": nil})
	}
	if filters.PatronId != nil {
		query = query.Where(squirrel.Eq{"patron_id": *filters.PatronId})
	}
	if !filters.StartDate.IsZero() {
		query = query.Where(squirrel.GtOrEq{"gaming_day": filters.StartDate})
	}
	if !filters.EndDate.IsZero() {
		query = query.Where(squirrel.LtOrEq{"gaming_day": filters.EndDate})
	}
	return query
}

// ListCases returns the cases of both kinds matching the filters, unless the
// kind filter restricts the fetch to a single table. PSA bucketing and
// sorting happen in memory, in the query layer.
func (repo *ComplianceDbRepository) ListCases(ctx context.Context, exec Executor,
	filters models.CaseFilters,
) ([]models.Case, error) {
	var cases []models.Case

	if filters.Kind == nil || *filters.Kind == models.CaseKindCtr {
		query := applyCaseFilters(
			NewQueryBuilder().
				Select(dbmodels.SelectCtrColumn...).
				From(dbmodels.TABLE_CTRS).
				OrderBy("created_at DESC"),
			filters)
		ctrs, err := SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCtr)
		if err != nil {
			return nil, err
		}
		cases = append(cases, ctrs...)
	}

	if filters.Kind == nil || *filters.Kind == models.CaseKindForm8300 {
		query := applyCaseFilters(
			NewQueryBuilder().
				Select(dbmodels.SelectForm8300Column...).
				From(dbmodels.TABLE_FORM_8300S).
				OrderBy("created_at DESC"),
			filters)
		forms, err := SqlToListOfModels(ctx, exec, query, dbmodels.AdaptForm8300)
		if err != nil {
			return nil, err
		}
		cases = append(cases, forms...)
	}

	return cases, nil
}

func (repo *ComplianceDbRepository) GetCaseByRef(ctx context.Context, exec Executor,
	ref models.CaseRef,
) (models.Case, error) {
	if ref.Kind == models.CaseKindForm8300 {
		return SqlToModel(ctx, exec,
			NewQueryBuilder().
				Select(dbmodels.SelectForm8300Column...).
				From(dbmodels.TABLE_FORM_8300S).
				Where(squirrel.Eq{"id": ref.Id}),
			dbmodels.AdaptForm8300)
	}
	return SqlToModel(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCtrColumn...).
			From(dbmodels.TABLE_CTRS).
			Where(squirrel.Eq{"id": ref.Id}),
		dbmodels.AdaptCtr)
}

// UpdateCaseWorkflow writes the status and, where flagged, the ownership and
// routing fields of a case.
func (repo *ComplianceDbRepository) UpdateCaseWorkflow(ctx context.Context, exec Executor,
	ref models.CaseRef, update models.CaseWorkflowUpdate,
) error {
	query := NewQueryBuilder().
		Update(caseTable(ref.Kind)).
		Where(squirrel.Eq{"id": ref.Id}).
		Set("status", string(update.Status)).
		Set("updated_at", squirrel.Expr("NOW()"))

	if update.SetOwner {
		query = query.Set("current_owner", update.Owner)
	}
	if update.SetApprover {
		query = query.Set("approver", update.Approver)
	}
	if update.SetRecommendation {
		query = query.Set("recommendation", update.Recommendation)
	}

	return ExecBuilder(ctx, exec, query)
}
