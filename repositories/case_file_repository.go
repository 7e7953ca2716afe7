package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/repositories/dbmodels"
)

func caseFileKeyColumn(kind models.CaseKind) string {
	if kind == models.CaseKindForm8300 {
		return "form_id"
	}
	return "ctr_id"
}

func (repo *ComplianceDbRepository) CreateCaseFile(ctx context.Context, exec Executor,
	attrs models.CreateDbCaseFileAttributes,
) error {
	return ExecBuilder(ctx, exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CASE_FILES).
			Columns(
				"id",
				caseFileKeyColumn(attrs.Ref.Kind),
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
				attrs.Ref.Id,
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

func (repo *ComplianceDbRepository) ListCaseFiles(ctx context.Context, exec Executor,
	ref models.CaseRef,
) ([]models.CaseFile, error) {
	return SqlToListOfModels(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseFileColumn...).
			From(dbmodels.TABLE_CASE_FILES).
			Where(squirrel.Eq{caseFileKeyColumn(ref.Kind): ref.Id}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptCaseFile)
}

func (repo *ComplianceDbRepository) GetCaseFileById(ctx context.Context, exec Executor,
	caseFileId string,
) (models.CaseFile, error) {
	return SqlToModel(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseFileColumn...).
			From(dbmodels.TABLE_CASE_FILES).
			Where(squirrel.Eq{"id": caseFileId}),
		dbmodels.AdaptCaseFile)
}

func (repo *ComplianceDbRepository) DeleteCaseFile(ctx context.Context, exec Executor,
	caseFileId string,
) error {
	return ExecBuilder(ctx, exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_CASE_FILES).
			Where(squirrel.Eq{"id": caseFileId}),
	)
}
