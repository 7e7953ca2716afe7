package models

import (
	"mime/multipart"
	"time"
)

type PatronFile struct {
	Id            string
	PatronId      string
	CreatedAt     time.Time
	BucketName    string
	FileReference string
	FileName      string
	ContentType   string
	FileSize      int64
	Description   *string
	UploadedBy    *string
}

type CreatePatronFileInput struct {
	PatronId    string
	File        multipart.FileHeader
	Description *string
}

type CreateDbPatronFileAttributes struct {
	Id            string
	PatronId      string
	BucketName    string
	FileReference string
	FileName      string
	ContentType   string
	FileSize      int64
	Description   *string
	UploadedBy    *string
}
