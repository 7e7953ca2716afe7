package usecases

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/repositories"
	"github.com/meridiancruises/compliance-backend/usecases/executor_factory"
	"github.com/meridiancruises/compliance-backend/usecases/security"
	"github.com/meridiancruises/compliance-backend/utils"
)

type CaseFileRepository interface {
	GetCaseByRef(ctx context.Context, exec repositories.Executor,
		ref models.CaseRef) (models.Case, error)
	ListCaseFiles(ctx context.Context, exec repositories.Executor,
		ref models.CaseRef) ([]models.CaseFile, error)
	GetCaseFileById(ctx context.Context, exec repositories.Executor,
		caseFileId string) (models.CaseFile, error)
	CreateCaseFile(ctx context.Context, exec repositories.Executor,
		attrs models.CreateDbCaseFileAttributes) error
	DeleteCaseFile(ctx context.Context, exec repositories.Executor, caseFileId string) error
	CreatePatronFile(ctx context.Context, exec repositories.Executor,
		attrs models.CreateDbPatronFileAttributes) error
	CreateCaseEvent(ctx context.Context, exec repositories.Executor,
		attrs models.CreateCaseEventAttributes) error
}

type CaseFileUsecase struct {
	enforceSecurity      security.EnforceSecurityCase
	transactionFactory   executor_factory.TransactionFactory
	executorFactory      executor_factory.ExecutorFactory
	repository           CaseFileRepository
	blobRepository       repositories.BlobRepository
	caseFilesBucketUrl   string
	patronFilesBucketUrl string
	credentials          models.Credentials
}

// UploadCaseFile stores the file at {caseId}/{filename} in the case files
// bucket and records it. Re-uploading the same filename on the same case
// overwrites the blob.
func (uc *CaseFileUsecase) UploadCaseFile(ctx context.Context, input models.CreateCaseFileInput,
) (models.CaseFile, error) {
	if err := uc.enforceSecurity.WriteCaseFile(); err != nil {
		return models.CaseFile{}, err
	}

	c, err := uc.repository.GetCaseByRef(ctx, uc.executorFactory.NewExecutor(), input.Ref)
	if err != nil {
		return models.CaseFile{}, err
	}
	if err := uc.enforceSecurity.ReadCase(c); err != nil {
		return models.CaseFile{}, err
	}

	fileReference := fmt.Sprintf("%s/%s", input.Ref.Id, input.File.Filename)
	if err := uc.writeToBlobStorage(ctx, input.File, uc.caseFilesBucketUrl, fileReference); err != nil {
		return models.CaseFile{}, err
	}

	fileId := uuid.NewString()
	uploadedBy := uc.credentials.ActorIdentity.MemberId
	err = uc.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		err := uc.repository.CreateCaseFile(ctx, tx, models.CreateDbCaseFileAttributes{
			Id:            fileId,
			Ref:           input.Ref,
			BucketName:    uc.caseFilesBucketUrl,
			FileReference: fileReference,
			FileName:      input.File.Filename,
			ContentType:   input.File.Header.Get("Content-Type"),
			FileSize:      input.File.Size,
			Description:   input.Description,
			UploadedBy:    &uploadedBy,
		})
		if err != nil {
			return err
		}

		return uc.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
			Ref:       input.Ref,
			MemberId:  &uploadedBy,
			EventType: models.CaseFileAdded,
			NewValue:  &input.File.Filename,
		})
	})
	if err != nil {
		return models.CaseFile{}, err
	}

	return uc.repository.GetCaseFileById(ctx, uc.executorFactory.NewExecutor(), fileId)
}

// GetCaseFileUrl returns a short-lived signed download url for one file.
func (uc *CaseFileUsecase) GetCaseFileUrl(ctx context.Context, caseFileId string) (string, error) {
	file, err := uc.repository.GetCaseFileById(ctx, uc.executorFactory.NewExecutor(), caseFileId)
	if err != nil {
		return "", err
	}
	if err := uc.enforceSecurity.Permission(models.CASE_READ); err != nil {
		return "", err
	}

	return uc.blobRepository.GenerateSignedUrl(ctx, file.BucketName, file.FileReference)
}

// DeleteCaseFile removes the blob first, then the row. A dangling row with no
// blob behind it is worse than an orphan blob.
func (uc *CaseFileUsecase) DeleteCaseFile(ctx context.Context, caseFileId string) error {
	if err := uc.enforceSecurity.WriteCaseFile(); err != nil {
		return err
	}

	file, err := uc.repository.GetCaseFileById(ctx, uc.executorFactory.NewExecutor(), caseFileId)
	if err != nil {
		return err
	}

	if err := uc.blobRepository.DeleteFile(ctx, file.BucketName, file.FileReference); err != nil {
		return err
	}

	memberId := uc.credentials.ActorIdentity.MemberId
	return uc.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		if err := uc.repository.DeleteCaseFile(ctx, tx, caseFileId); err != nil {
			return err
		}
		return uc.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
			Ref:           models.CaseRef{Id: file.CaseId, Kind: file.CaseKind},
			MemberId:      &memberId,
			EventType:     models.CaseFileDeleted,
			PreviousValue: &file.FileName,
		})
	})
}

// ExportCaseFilesZip streams all files of a case as a zip archive. Files that
// cannot be read from blob storage are skipped so one missing blob does not
// break the whole download. Returns the reader and the archive name.
func (uc *CaseFileUsecase) ExportCaseFilesZip(ctx context.Context, ref models.CaseRef,
) (io.ReadCloser, string, error) {
	exec := uc.executorFactory.NewExecutor()

	c, err := uc.repository.GetCaseByRef(ctx, exec, ref)
	if err != nil {
		return nil, "", err
	}
	if err := uc.enforceSecurity.ReadCase(c); err != nil {
		return nil, "", err
	}

	files, err := uc.repository.ListCaseFiles(ctx, exec, ref)
	if err != nil {
		return nil, "", err
	}

	folder := zipFolderName(c)
	pr, pw := io.Pipe()

	go func() {
		logger := utils.LoggerFromContext(ctx)
		zipw := zip.NewWriter(pw)
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorContext(ctx, "panic while writing zip archive", "error", r)
			}
			zipw.Close()
			pw.Close()
		}()

		for _, file := range files {
			blob, err := uc.blobRepository.GetBlob(ctx, file.BucketName, file.FileReference)
			if err != nil {
				logger.WarnContext(ctx, "skipping unreadable case file in zip export",
					"file", file.FileReference, "error", err.Error())
				continue
			}

			w, err := zipw.Create(fmt.Sprintf("%s/%s", folder, file.FileName))
			if err != nil {
				blob.ReadCloser.Close()
				pw.CloseWithError(errors.Wrapf(err, "could not create %s in zip", file.FileName))
				return
			}
			if _, err := io.Copy(w, blob.ReadCloser); err != nil {
				blob.ReadCloser.Close()
				pw.CloseWithError(errors.Wrapf(err, "could not write %s to zip", file.FileName))
				return
			}
			blob.ReadCloser.Close()
		}
	}()

	return pr, folder + ".zip", nil
}

// ArchiveCaseFiles copies the files of a case into its patron's archive,
// best effort. Files without a patron to attach to, or whose blob copy
// fails, are reported as skipped without failing the rest.
func (uc *CaseFileUsecase) ArchiveCaseFiles(ctx context.Context, c models.Case,
) (models.FileArchiveReport, error) {
	var report models.FileArchiveReport

	exec := uc.executorFactory.NewExecutor()
	files, err := uc.repository.ListCaseFiles(ctx, exec, c.Ref())
	if err != nil {
		return report, err
	}
	if len(files) == 0 {
		return report, nil
	}

	if c.PatronId == nil {
		for _, file := range files {
			report.Skipped = append(report.Skipped, models.SkippedFile{
				FileName: file.FileName,
				Reason:   "case has no linked patron",
			})
		}
		return report, nil
	}

	memberId := uc.credentials.ActorIdentity.MemberId
	for _, file := range files {
		targetReference := fmt.Sprintf("%s/%d-%s",
			*c.PatronId, utils.NowMilli(), file.FileName)

		// the copy lives under the patron, so it has to say where it came from
		description := fmt.Sprintf("Archived from case %s", c.Ref())
		if file.Description != nil && *file.Description != "" {
			description = fmt.Sprintf("%s: %s", description, *file.Description)
		}

		if err := uc.copyBlob(ctx, file, targetReference); err != nil {
			report.Skipped = append(report.Skipped, models.SkippedFile{
				FileName: file.FileName,
				Reason:   err.Error(),
			})
			continue
		}

		err = uc.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
			err := uc.repository.CreatePatronFile(ctx, tx, models.CreateDbPatronFileAttributes{
				Id:            uuid.NewString(),
				PatronId:      *c.PatronId,
				BucketName:    uc.patronFilesBucketUrl,
				FileReference: targetReference,
				FileName:      file.FileName,
				ContentType:   file.ContentType,
				FileSize:      file.FileSize,
				Description:   &description,
				UploadedBy:    &memberId,
			})
			if err != nil {
				return err
			}
			return uc.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				Ref:       c.Ref(),
				MemberId:  &memberId,
				EventType: models.CaseFileArchived,
				NewValue:  &file.FileName,
			})
		})
		if err != nil {
			report.Skipped = append(report.Skipped, models.SkippedFile{
				FileName: file.FileName,
				Reason:   err.Error(),
			})
			continue
		}

		report.Archived = append(report.Archived, file.FileName)
	}

	return report, nil
}

func (uc *CaseFileUsecase) copyBlob(ctx context.Context, file models.CaseFile, targetReference string) error {
	blob, err := uc.blobRepository.GetBlob(ctx, file.BucketName, file.FileReference)
	if err != nil {
		return err
	}
	defer blob.ReadCloser.Close()

	writer, err := uc.blobRepository.OpenStream(ctx, uc.patronFilesBucketUrl, targetReference)
	if err != nil {
		return err
	}
	defer writer.Close()

	if _, err := io.Copy(writer, blob.ReadCloser); err != nil {
		return err
	}
	return writer.Close()
}

func (uc *CaseFileUsecase) writeToBlobStorage(ctx context.Context,
	fileHeader multipart.FileHeader, bucketUrl, fileReference string,
) error {
	writer, err := uc.blobRepository.OpenStream(ctx, bucketUrl, fileReference)
	if err != nil {
		return err
	}
	defer writer.Close() // no-op if Close has already been called

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(models.BadParameterError, err.Error())
	}
	defer file.Close()

	if _, err := io.Copy(writer, file); err != nil {
		return err
	}
	return writer.Close()
}

func zipFolderName(c models.Case) string {
	name := "unknown"
	if c.PatronName != nil && strings.TrimSpace(*c.PatronName) != "" {
		name = strings.ReplaceAll(strings.TrimSpace(*c.PatronName), " ", "_")
	}
	return fmt.Sprintf("%s_%s", c.Id, name)
}
