package usecases

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/repositories"
	"github.com/meridiancruises/compliance-backend/usecases/executor_factory"
	"github.com/meridiancruises/compliance-backend/usecases/security"
	"github.com/meridiancruises/compliance-backend/utils"
)

type PatronRepository interface {
	CreatePatron(ctx context.Context, exec repositories.Executor,
		patronId string, attrs models.CreatePatronAttributes) error
	UpdatePatron(ctx context.Context, exec repositories.Executor,
		attrs models.UpdatePatronAttributes) error
	GetPatronById(ctx context.Context, exec repositories.Executor,
		patronId string) (models.Patron, error)
	ListPatrons(ctx context.Context, exec repositories.Executor,
		filters models.PatronFilters) ([]models.Patron, error)
	ListCases(ctx context.Context, exec repositories.Executor,
		filters models.CaseFilters) ([]models.Case, error)
	ListPatronFiles(ctx context.Context, exec repositories.Executor,
		patronId string) ([]models.PatronFile, error)
	GetPatronFileById(ctx context.Context, exec repositories.Executor,
		patronFileId string) (models.PatronFile, error)
	CreatePatronFile(ctx context.Context, exec repositories.Executor,
		attrs models.CreateDbPatronFileAttributes) error
	DeletePatronFile(ctx context.Context, exec repositories.Executor, patronFileId string) error
}

type PatronUsecase struct {
	enforceSecurity      security.EnforceSecurityPatron
	transactionFactory   executor_factory.TransactionFactory
	executorFactory      executor_factory.ExecutorFactory
	repository           PatronRepository
	blobRepository       repositories.BlobRepository
	patronFilesBucketUrl string
	credentials          models.Credentials
}

func (uc *PatronUsecase) CreatePatron(ctx context.Context, attrs models.CreatePatronAttributes,
) (models.Patron, error) {
	if err := uc.enforceSecurity.WritePatron(); err != nil {
		return models.Patron{}, err
	}
	if attrs.FirstName == "" || attrs.LastName == "" {
		return models.Patron{}, errors.Wrap(models.BadParameterError,
			"a patron needs a first and last name")
	}

	patronId := uuid.NewString()
	return executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Patron, error) {
			if err := uc.repository.CreatePatron(ctx, tx, patronId, attrs); err != nil {
				return models.Patron{}, err
			}
			return uc.repository.GetPatronById(ctx, tx, patronId)
		})
}

func (uc *PatronUsecase) UpdatePatron(ctx context.Context, attrs models.UpdatePatronAttributes,
) (models.Patron, error) {
	if err := uc.enforceSecurity.WritePatron(); err != nil {
		return models.Patron{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Patron, error) {
			// existence check first, for a clean 404
			if _, err := uc.repository.GetPatronById(ctx, tx, attrs.Id); err != nil {
				return models.Patron{}, err
			}
			if err := uc.repository.UpdatePatron(ctx, tx, attrs); err != nil {
				return models.Patron{}, err
			}
			return uc.repository.GetPatronById(ctx, tx, attrs.Id)
		})
}

// GetPatron returns one patron with the full case and file history attached.
func (uc *PatronUsecase) GetPatron(ctx context.Context, patronId string) (models.Patron, error) {
	if err := uc.enforceSecurity.ReadPatron(); err != nil {
		return models.Patron{}, err
	}

	exec := uc.executorFactory.NewExecutor()
	patron, err := uc.repository.GetPatronById(ctx, exec, patronId)
	if err != nil {
		return models.Patron{}, err
	}

	patron.Cases, err = uc.repository.ListCases(ctx, exec, models.CaseFilters{
		PatronId: &patronId,
	})
	if err != nil {
		return models.Patron{}, err
	}
	models.SortCasesByGamingDayDesc(patron.Cases)

	patron.Files, err = uc.repository.ListPatronFiles(ctx, exec, patronId)
	if err != nil {
		return models.Patron{}, err
	}

	return patron, nil
}

func (uc *PatronUsecase) ListPatrons(ctx context.Context, filters models.PatronFilters,
) ([]models.Patron, error) {
	if err := uc.enforceSecurity.ReadPatron(); err != nil {
		return nil, err
	}
	return uc.repository.ListPatrons(ctx, uc.executorFactory.NewExecutor(), filters)
}

// UploadPatronFile stores the file at {patronId}/{timestamp}-{filename} so
// that uploading the same filename twice keeps both copies.
func (uc *PatronUsecase) UploadPatronFile(ctx context.Context, input models.CreatePatronFileInput,
) (models.PatronFile, error) {
	if err := uc.enforceSecurity.WritePatron(); err != nil {
		return models.PatronFile{}, err
	}

	exec := uc.executorFactory.NewExecutor()
	if _, err := uc.repository.GetPatronById(ctx, exec, input.PatronId); err != nil {
		return models.PatronFile{}, err
	}

	fileReference := fmt.Sprintf("%s/%d-%s", input.PatronId, utils.NowMilli(), input.File.Filename)
	writer, err := uc.blobRepository.OpenStream(ctx, uc.patronFilesBucketUrl, fileReference)
	if err != nil {
		return models.PatronFile{}, err
	}
	defer writer.Close()

	file, err := input.File.Open()
	if err != nil {
		return models.PatronFile{}, errors.Wrap(models.BadParameterError, err.Error())
	}
	defer file.Close()

	if _, err := io.Copy(writer, file); err != nil {
		return models.PatronFile{}, err
	}
	if err := writer.Close(); err != nil {
		return models.PatronFile{}, err
	}

	fileId := uuid.NewString()
	uploadedBy := uc.credentials.ActorIdentity.MemberId
	err = uc.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		return uc.repository.CreatePatronFile(ctx, tx, models.CreateDbPatronFileAttributes{
			Id:            fileId,
			PatronId:      input.PatronId,
			BucketName:    uc.patronFilesBucketUrl,
			FileReference: fileReference,
			FileName:      input.File.Filename,
			ContentType:   input.File.Header.Get("Content-Type"),
			FileSize:      input.File.Size,
			Description:   input.Description,
			UploadedBy:    &uploadedBy,
		})
	})
	if err != nil {
		return models.PatronFile{}, err
	}

	return uc.repository.GetPatronFileById(ctx, exec, fileId)
}

func (uc *PatronUsecase) GetPatronFileUrl(ctx context.Context, patronFileId string) (string, error) {
	if err := uc.enforceSecurity.ReadPatron(); err != nil {
		return "", err
	}

	file, err := uc.repository.GetPatronFileById(ctx, uc.executorFactory.NewExecutor(), patronFileId)
	if err != nil {
		return "", err
	}
	return uc.blobRepository.GenerateSignedUrl(ctx, file.BucketName, file.FileReference)
}

// DeletePatronFile removes the blob first, then the row.
func (uc *PatronUsecase) DeletePatronFile(ctx context.Context, patronFileId string) error {
	if err := uc.enforceSecurity.WritePatron(); err != nil {
		return err
	}

	file, err := uc.repository.GetPatronFileById(ctx, uc.executorFactory.NewExecutor(), patronFileId)
	if err != nil {
		return err
	}

	if err := uc.blobRepository.DeleteFile(ctx, file.BucketName, file.FileReference); err != nil {
		return err
	}

	return uc.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		return uc.repository.DeletePatronFile(ctx, tx, patronFileId)
	})
}
