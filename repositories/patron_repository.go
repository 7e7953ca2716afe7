package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/repositories/dbmodels"
)

func (repo *ComplianceDbRepository) CreatePatron(ctx context.Context, exec Executor,
	patronId string, attrs models.CreatePatronAttributes,
) error {
	return ExecBuilder(ctx, exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_PATRONS).
			Columns(
				"id",
				"first_name",
				"last_name",
				"date_of_birth",
				"email",
				"phone",
				"address",
				"government_id",
				"ssn",
			).
			Values(
				patronId,
				attrs.FirstName,
				attrs.LastName,
				attrs.DateOfBirth,
				attrs.Email,
				attrs.Phone,
				attrs.Address,
				attrs.GovernmentId,
				attrs.Ssn,
			),
	)
}

func (repo *ComplianceDbRepository) UpdatePatron(ctx context.Context, exec Executor,
	attrs models.UpdatePatronAttributes,
) error {
	return ExecBuilder(ctx, exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_PATRONS).
			Set("first_name", attrs.FirstName).
			Set("last_name", attrs.LastName).
			Set("date_of_birth", attrs.DateOfBirth).
			Set("email", attrs.Email).
			Set("phone", attrs.Phone).
			Set("address", attrs.Address).
			Set("government_id", attrs.GovernmentId).
			Set("ssn", attrs.Ssn).
			Where(squirrel.Eq{"id": attrs.Id}),
	)
}

func (repo *ComplianceDbRepository) GetPatronById(ctx context.Context, exec Executor,
	patronId string,
) (models.Patron, error) {
	return SqlToModel(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectPatronColumn...).
			From(dbmodels.TABLE_PATRONS).
			Where(squirrel.Eq{"id": patronId}),
		dbmodels.AdaptPatron)
}

func (repo *ComplianceDbRepository) ListPatrons(ctx context.Context, exec Executor,
	filters models.PatronFilters,
) ([]models.Patron, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectPatronColumn...).
		From(dbmodels.TABLE_PATRONS).
		OrderBy("last_name", "first_name")

	if filters.Name != "" {
		pattern := fmt.Sprintf("%%%s%%", filters.Name)
		query = query.Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"first_name || ' ' || last_name": pattern},
		})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptPatron)
}
