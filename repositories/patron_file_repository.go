package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/repositories/dbmodels"
)

func (repo *ComplianceDbRepository) CreatePatronFile(ctx context.Context, exec Executor,
	attrs models.CreateDbPatronFileAttributes,
) error {
	return ExecBuilder(ctx, exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_PATRON_FILES).
			Columns(
				"id",
				"patron_id",
				"bucket_name",
				"file_reference",
				"file_name",
				"content_type",
				"file_size",
				"description",
				"uploaded_by",
			).
			Values(
				attrs.Id,
				attrs.PatronId,
				attrs.BucketName,
				attrs.FileReference,
				attrs.FileName,
				attrs.ContentType,
				attrs.FileSize,
				attrs.Description,
				attrs.UploadedBy,
			),
	)
}

func (repo *ComplianceDbRepository) ListPatronFiles(ctx context.Context, exec Executor,
	patronId string,
) ([]models.PatronFile, error) {
	return SqlToListOfModels(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectPatronFileColumn...).
			From(dbmodels.TABLE_PATRON_FILES).
			Where(squirrel.Eq{"patron_id": patronId}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptPatronFile)
}

func (repo *ComplianceDbRepository) GetPatronFileById(ctx context.Context, exec Executor,
	patronFileId string,
) (models.PatronFile, error) {
	return SqlToModel(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectPatronFileColumn...).
			From(dbmodels.TABLE_PATRON_FILES).
			Where(squirrel.Eq{"id": patronFileId}),
		dbmodels.AdaptPatronFile)
}

func (repo *ComplianceDbRepository) DeletePatronFile(ctx context.Context, exec Executor,
	patronFileId string,
) error {
	return ExecBuilder(ctx, exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_PATRON_FILES).
			Where(squirrel.Eq{"id": patronFileId}),
	)
}
