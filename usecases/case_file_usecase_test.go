package usecases

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/meridiancruises/compliance-backend/mocks"
	"github.com/meridiancruises/compliance-backend/models"
)

type nopWriteCloser struct {
	*bytes.Buffer
}

func (nopWriteCloser) Close() error { return nil }

type CaseFileUsecaseTestSuite struct {
	suite.Suite
	repository         *mocks.CaseFileRepository
	enforceSecurity    *mocks.EnforceSecurity
	transactionFactory *mocks.TransactionFactory
	executorFactory    *mocks.ExecutorFactory
	executor           *mocks.Executor
	blobRepository     *mocks.BlobRepository

	memberId string
}

func (suite *CaseFileUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.CaseFileRepository)
	suite.enforceSecurity = new(mocks.EnforceSecurity)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: new(mocks.Transaction)}
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)
	suite.blobRepository = new(mocks.BlobRepository)

	suite.memberId = "aaaaaaaa-0000-0000-0000-000000000001"
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
}

func (suite *CaseFileUsecaseTestSuite) makeUsecase() *CaseFileUsecase {
	return &CaseFileUsecase{
		enforceSecurity:      suite.enforceSecurity,
		transactionFactory:   suite.transactionFactory,
		executorFactory:      suite.executorFactory,
		repository:           suite.repository,
		blobRepository:       suite.blobRepository,
		caseFilesBucketUrl:   "file:///tmp/case-files",
		patronFilesBucketUrl: "file:///tmp/patron-files",
		credentials: models.Credentials{
			ActorIdentity: models.Identity{MemberId: suite.memberId},
			Roles:         []models.Role{models.RoleAnalyst},
		},
	}
}

func (suite *CaseFileUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.enforceSecurity.AssertExpectations(t)
	suite.blobRepository.AssertExpectations(t)
}

func (suite *CaseFileUsecaseTestSuite) Test_GetCaseFileUrl() {
	ctx := context.Background()

	file := models.CaseFile{
		Id:            "f1",
		BucketName:    "file:///tmp/case-files",
		FileReference: "c1/receipt.pdf",
	}

	suite.repository.On("GetCaseFileById", ctx, suite.executor, "f1").Return(file, nil)
	suite.enforceSecurity.On("Permission", models.CASE_READ).Return(nil)
	suite.blobRepository.On("GenerateSignedUrl", ctx, file.BucketName, file.FileReference).
		Return("https://signed.example.com/receipt.pdf", nil)

	url, err := suite.makeUsecase().GetCaseFileUrl(ctx, "f1")

	suite.NoError(err)
	suite.Equal("https://signed.example.com/receipt.pdf", url)
	suite.AssertExpectations()
}

func (suite *CaseFileUsecaseTestSuite) Test_DeleteCaseFile_BlobBeforeRow() {
	ctx := context.Background()
	tx := suite.transactionFactory.TxMock

	file := models.CaseFile{
		Id:            "f1",
		CaseId:        "c1",
		CaseKind:      models.CaseKindCtr,
		BucketName:    "file:///tmp/case-files",
		FileReference: "c1/receipt.pdf",
		FileName:      "receipt.pdf",
	}

	suite.enforceSecurity.On("WriteCaseFile").Return(nil)
	suite.repository.On("GetCaseFileById", ctx, suite.executor, "f1").Return(file, nil)
	suite.blobRepository.On("DeleteFile", ctx, file.BucketName, file.FileReference).Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("DeleteCaseFile", ctx, tx, "f1").Return(nil)
	suite.repository.On("CreateCaseEvent", ctx, tx, models.CreateCaseEventAttributes{
		Ref:           models.CaseRef{Id: "c1", Kind: models.CaseKindCtr},
		MemberId:      &suite.memberId,
		EventType:     models.CaseFileDeleted,
		PreviousValue: &file.FileName,
	}).Return(nil)

	err := suite.makeUsecase().DeleteCaseFile(ctx, "f1")

	suite.NoError(err)
	suite.AssertExpectations()
}

func (suite *CaseFileUsecaseTestSuite) Test_DeleteCaseFile_BlobFailureKeepsRow() {
	ctx := context.Background()

	file := models.CaseFile{
		Id:            "f1",
		BucketName:    "file:///tmp/case-files",
		FileReference: "c1/receipt.pdf",
	}

	suite.enforceSecurity.On("WriteCaseFile").Return(nil)
	suite.repository.On("GetCaseFileById", ctx, suite.executor, "f1").Return(file, nil)
	suite.blobRepository.On("DeleteFile", ctx, file.BucketName, file.FileReference).
		Return(models.NotFoundError)

	err := suite.makeUsecase().DeleteCaseFile(ctx, "f1")

	suite.ErrorIs(err, models.NotFoundError)
	suite.repository.AssertNotCalled(suite.T(), "DeleteCaseFile", mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *CaseFileUsecaseTestSuite) Test_ArchiveCaseFiles_NoPatronSkipsAll() {
	ctx := context.Background()

	c := models.Case{Id: "c1", Kind: models.CaseKindCtr, Status: models.CaseStatusSubmitted}
	files := []models.CaseFile{
		{Id: "f1", FileName: "receipt.pdf"},
		{Id: "f2", FileName: "id_scan.png"},
	}

	suite.repository.On("ListCaseFiles", ctx, suite.executor, c.Ref()).Return(files, nil)

	report, err := suite.makeUsecase().ArchiveCaseFiles(ctx, c)

	suite.NoError(err)
	suite.Empty(report.Archived)
	suite.Len(report.Skipped, 2)
	suite.Equal("case has no linked patron", report.Skipped[0].Reason)
	suite.AssertExpectations()
}

func (suite *CaseFileUsecaseTestSuite) Test_ArchiveCaseFiles_CopyFailureIsReportedNotFatal() {
	ctx := context.Background()
	tx := suite.transactionFactory.TxMock

	patronId := "p1"
	c := models.Case{
		Id: "c1", Kind: models.CaseKindCtr,
		Status: models.CaseStatusSubmitted, PatronId: &patronId,
	}
	originalDescription := "Receipt scan"
	goodFile := models.CaseFile{
		Id: "f1", FileName: "receipt.pdf",
		BucketName: "file:///tmp/case-files", FileReference: "c1/receipt.pdf",
		Description: &originalDescription,
	}
	badFile := models.CaseFile{
		Id: "f2", FileName: "missing.pdf",
		BucketName: "file:///tmp/case-files", FileReference: "c1/missing.pdf",
	}

	suite.repository.On("ListCaseFiles", ctx, suite.executor, c.Ref()).
		Return([]models.CaseFile{goodFile, badFile}, nil)

	suite.blobRepository.On("GetBlob", ctx, goodFile.BucketName, goodFile.FileReference).
		Return(models.Blob{
			FileName:   goodFile.FileName,
			ReadCloser: io.NopCloser(bytes.NewBufferString("content")),
		}, nil)
	suite.blobRepository.On("OpenStream", ctx, "file:///tmp/patron-files", mock.Anything).
		Return(nopWriteCloser{&bytes.Buffer{}}, nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("CreatePatronFile", ctx, tx, mock.MatchedBy(
		func(attrs models.CreateDbPatronFileAttributes) bool {
			return attrs.PatronId == patronId && attrs.FileName == goodFile.FileName &&
				attrs.Description != nil &&
				*attrs.Description == "Archived from case ctr/c1: Receipt scan"
		})).Return(nil)
	suite.repository.On("CreateCaseEvent", ctx, tx, mock.MatchedBy(
		func(attrs models.CreateCaseEventAttributes) bool {
			return attrs.EventType == models.CaseFileArchived
		})).Return(nil)

	suite.blobRepository.On("GetBlob", ctx, badFile.BucketName, badFile.FileReference).
		Return(models.Blob{}, models.NotFoundError)

	report, err := suite.makeUsecase().ArchiveCaseFiles(ctx, c)

	suite.NoError(err)
	suite.Equal([]string{"receipt.pdf"}, report.Archived)
	suite.Len(report.Skipped, 1)
	suite.Equal("missing.pdf", report.Skipped[0].FileName)
	suite.AssertExpectations()
}

func (suite *CaseFileUsecaseTestSuite) Test_ZipFolderName() {
	patron := "Maria del Carmen Lopez"
	c := models.Case{Id: "c1", PatronName: &patron}
	suite.Equal("c1_Maria_del_Carmen_Lopez", zipFolderName(c))

	suite.Equal("c2_unknown", zipFolderName(models.Case{Id: "c2"}))
}

func TestCaseFileUsecase(t *testing.T) {
	suite.Run(t, new(CaseFileUsecaseTestSuite))
}
