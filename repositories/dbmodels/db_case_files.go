package dbmodels

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/utils"
)

type DBCaseFile struct {
	Id            string      `db:"id"`
	CreatedAt     time.Time   `db:"created_at"`
	CtrId         pgtype.Text `db:"ctr_id"`
	FormId        pgtype.Text `db:"form_id"`
	BucketName    string      `db:"bucket_name"`
	FileReference string      `db:"file_reference"`
	FileName      string      `db:"file_name"`
	ContentType   string      `db:"content_type"`
	FileSize      int64       `db:"file_size"`
	Description   pgtype.Text `db:"description"`
	UploadedBy    pgtype.Text `db:"uploaded_by"`
}

const TABLE_CASE_FILES = "case_files"

var SelectCaseFileColumn = utils.ColumnList[DBCaseFile]()

func AdaptCaseFile(db DBCaseFile) (models.CaseFile, error) {
	// exactly one of ctr_id / form_id is set, enforced by a check constraint
	var caseId string
	var kind models.CaseKind
	switch {
	case db.CtrId.Valid && !db.FormId.Valid:
		caseId = db.CtrId.String
		kind = models.CaseKindCtr
	case db.FormId.Valid && !db.CtrId.Valid:
		caseId = db.FormId.String
		kind = models.CaseKindForm8300
	default:
		return models.CaseFile{}, errors.Newf(
			"case file %s references neither or both of a ctr and a form 8300", db.Id)
	}

	return models.CaseFile{
		Id:            db.Id,
		CaseId:        caseId,
		CaseKind:      kind,
		CreatedAt:     db.CreatedAt,
		BucketName:    db.BucketName,
		FileReference: db.FileReference,
		FileName:      db.FileName,
		ContentType:   db.ContentType,
		FileSize:      db.FileSize,
		Description:   textOrNil(db.Description),
		UploadedBy:    textOrNil(db.UploadedBy),
	}, nil
}
