package dto

import (
	"time"

	"github.com/meridiancruises/compliance-backend/models"
)

type APICaseFile struct {
	Id          string    `json:"id"`
	CaseId      string    `json:"case_id"`
	CaseKind    string    `json:"case_kind"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	FileSize    int64     `json:"file_size"`
	Description *string   `json:"description,omitempty"`
	UploadedBy  *string   `json:"uploaded_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func AdaptCaseFileDto(f models.CaseFile) APICaseFile {
	return APICaseFile{
		Id:          f.Id,
		CaseId:      f.CaseId,
		CaseKind:    string(f.CaseKind),
		FileName:    f.FileName,
		ContentType: f.ContentType,
		FileSize:    f.FileSize,
		Description: f.Description,
		UploadedBy:  f.UploadedBy,
		CreatedAt:   f.CreatedAt,
	}
}

type APIPatronFile struct {
	Id          string    `json:"id"`
	PatronId    string    `json:"patron_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	FileSize    int64     `json:"file_size"`
	Description *string   `json:"description,omitempty"`
	UploadedBy  *string   `json:"uploaded_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func AdaptPatronFileDto(f models.PatronFile) APIPatronFile {
	return APIPatronFile{
		Id:          f.Id,
		PatronId:    f.PatronId,
		FileName:    f.FileName,
		ContentType: f.ContentType,
		FileSize:    f.FileSize,
		Description: f.Description,
		UploadedBy:  f.UploadedBy,
		CreatedAt:   f.CreatedAt,
	}
}
