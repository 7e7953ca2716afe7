package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/utils"
)

type DBPatronFile struct {
	Id            string      `db:"id"`
	CreatedAt     time.Time   `db:"created_at"`
	PatronId      string      `db:"patron_id"`
	BucketName    string      `db:"bucket_name"`
	FileReference string      `db:"file_reference"`
	FileName      string      `db:"file_name"`
	ContentType   string      `db:"content_type"`
	FileSize      int64       `db:"file_size"`
	Description   pgtype.Text `db:"description"`
	UploadedBy    pgtype.Text `db:"uploaded_by"`
}

const TABLE_PATRON_FILES = "patron_files"

var SelectPatronFileColumn = utils.ColumnList[DBPatronFile]()

func AdaptPatronFile(db DBPatronFile) (models.PatronFile, error) {
	return models.PatronFile{
		Id:            db.Id,
		PatronId:      db.PatronId,
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
