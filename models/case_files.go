package models

import (
	"mime/multipart"
	"time"
)

type CaseFile struct {
	Id            string
	CaseId        string
	CaseKind      CaseKind
	CreatedAt     time.Time
	BucketName    string
	FileReference string
	FileName      string
	ContentType   string
	FileSize      int64
	Description   *string
	UploadedBy    *string
}

type CreateCaseFileInput struct {
	Ref         CaseRef
	File        multipart.FileHeader
	Description *string
}

type CreateDbCaseFileAttributes struct {
	Id            string
	Ref           CaseRef
	BucketName    string
	FileReference string
	FileName      string
	ContentType   string
	FileSize      int64
	Description   *string
	UploadedBy    *string
}

// FileArchiveReport is the outcome of the best-effort copy of case files to
// the patron archive at submission time. Skipped files do not block the
// submission; they are surfaced so the gap is visible rather than silent.
type FileArchiveReport struct {
	Archived []string
	Skipped  []SkippedFile
}

type SkippedFile struct {
	FileName string
	Reason   string
}
