package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/meridiancruises/compliance-backend/mocks"
	"github.com/meridiancruises/compliance-backend/models"
)

type CaseWorkflowUsecaseTestSuite struct {
	suite.Suite
	repository         *mocks.CaseWorkflowRepository
	enforceSecurity    *mocks.EnforceSecurity
	transactionFactory *mocks.TransactionFactory
	executorFactory    *mocks.ExecutorFactory
	fileArchiver       *mocks.FileArchiver

	ref       models.CaseRef
	actorId   string
	analystId string
	managerId string
}

func (suite *CaseWorkflowUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.CaseWorkflowRepository)
	suite.enforceSecurity = new(mocks.EnforceSecurity)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: new(mocks.Transaction)}
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.fileArchiver = new(mocks.FileArchiver)

	suite.ref = models.CaseRef{Id: "11111111-1111-1111-1111-111111111111", Kind: models.CaseKindCtr}
	suite.actorId = "aaaaaaaa-0000-0000-0000-000000000001"
	suite.analystId = "aaaaaaaa-0000-0000-0000-000000000002"
	suite.managerId = "aaaaaaaa-0000-0000-0000-000000000003"
}

func (suite *CaseWorkflowUsecaseTestSuite) makeUsecase() *CaseWorkflowUsecase {
	return &CaseWorkflowUsecase{
		enforceSecurity:    suite.enforceSecurity,
		transactionFactory: suite.transactionFactory,
		executorFactory:    suite.executorFactory,
		repository:         suite.repository,
		fileArchiver:       suite.fileArchiver,
		credentials: models.Credentials{
			ActorIdentity: models.Identity{MemberId: suite.actorId},
			Roles:         []models.Role{models.RoleAnalyst},
		},
	}
}

func (suite *CaseWorkflowUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.enforceSecurity.AssertExpectations(t)
	suite.transactionFactory.AssertExpectations(t)
	suite.fileArchiver.AssertExpectations(t)
}

func (suite *CaseWorkflowUsecaseTestSuite) expectTransaction() {
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_AssignCase_NewCase() {
	ctx := context.Background()
	tx := suite.transactionFactory.TxMock

	newCase := models.Case{Id: suite.ref.Id, Kind: suite.ref.Kind, Status: models.CaseStatusNew}
	assignedCase := newCase
	assignedCase.Status = models.CaseStatusAssigned
	assignedCase.CurrentOwner = &suite.analystId

	suite.expectTransaction()
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(newCase, nil).Once()
	suite.enforceSecurity.On("AssignCase").Return(nil)
	suite.repository.On("GetTeamMemberById", ctx, tx, suite.analystId).
		Return(models.TeamMember{Id: suite.analystId}, nil)
	suite.repository.On("UpdateCaseWorkflow", ctx, tx, suite.ref, models.CaseWorkflowUpdate{
		Status:   models.CaseStatusAssigned,
		SetOwner: true,
		Owner:    &suite.analystId,
	}).Return(nil)
	suite.repository.On("CreateCaseEvent", ctx, tx, models.CreateCaseEventAttributes{
		Ref:       suite.ref,
		MemberId:  &suite.actorId,
		EventType: models.CaseAssigned,
		NewValue:  &suite.analystId,
	}).Return(nil)
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(assignedCase, nil).Once()

	c, err := suite.makeUsecase().AssignCase(ctx, models.AssignCaseAttributes{
		Ref:        suite.ref,
		AssigneeId: suite.analystId,
	})

	suite.NoError(err)
	suite.Equal(models.CaseStatusAssigned, c.Status)
	suite.Equal(&suite.analystId, c.CurrentOwner)
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_AssignCase_ReassignKeepsStatus() {
	ctx := context.Background()
	tx := suite.transactionFactory.TxMock

	assignedCase := models.Case{
		Id: suite.ref.Id, Kind: suite.ref.Kind,
		Status: models.CaseStatusAssigned, CurrentOwner: &suite.analystId,
	}
	reassignedCase := assignedCase
	reassignedCase.CurrentOwner = &suite.managerId

	suite.expectTransaction()
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(assignedCase, nil).Once()
	suite.enforceSecurity.On("AssignCase").Return(nil)
	suite.repository.On("GetTeamMemberById", ctx, tx, suite.managerId).
		Return(models.TeamMember{Id: suite.managerId}, nil)
	suite.repository.On("UpdateCaseWorkflow", ctx, tx, suite.ref, models.CaseWorkflowUpdate{
		Status:   models.CaseStatusAssigned,
		SetOwner: true,
		Owner:    &suite.managerId,
	}).Return(nil)
	suite.repository.On("CreateCaseEvent", ctx, tx, models.CreateCaseEventAttributes{
		Ref:           suite.ref,
		MemberId:      &suite.actorId,
		EventType:     models.CaseAssigned,
		NewValue:      &suite.managerId,
		PreviousValue: &suite.analystId,
	}).Return(nil)
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(reassignedCase, nil).Once()

	c, err := suite.makeUsecase().AssignCase(ctx, models.AssignCaseAttributes{
		Ref:        suite.ref,
		AssigneeId: suite.managerId,
	})

	suite.NoError(err)
	suite.Equal(models.CaseStatusAssigned, c.Status)
	suite.Equal(&suite.managerId, c.CurrentOwner)
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_AssignCase_UnknownAssignee() {
	ctx := context.Background()
	tx := suite.transactionFactory.TxMock

	suite.expectTransaction()
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).
		Return(models.Case{Id: suite.ref.Id, Status: models.CaseStatusNew}, nil)
	suite.enforceSecurity.On("AssignCase").Return(nil)
	suite.repository.On("GetTeamMemberById", ctx, tx, "ghost").
		Return(models.TeamMember{}, models.NotFoundError)

	_, err := suite.makeUsecase().AssignCase(ctx, models.AssignCaseAttributes{
		Ref:        suite.ref,
		AssigneeId: "ghost",
	})

	suite.ErrorIs(err, models.ErrUnknownTeamMember)
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_AssignCase_RejectedWhileUnderReview() {
	ctx := context.Background()
	tx := suite.transactionFactory.TxMock

	suite.expectTransaction()
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).
		Return(models.Case{
			Id: suite.ref.Id, Status: models.CaseStatusUnderReview,
			CurrentOwner: &suite.analystId,
		}, nil)
	suite.enforceSecurity.On("AssignCase").Return(nil)
	suite.repository.On("GetTeamMemberById", ctx, tx, suite.managerId).
		Return(models.TeamMember{Id: suite.managerId}, nil)

	_, err := suite.makeUsecase().AssignCase(ctx, models.AssignCaseAttributes{
		Ref:        suite.ref,
		AssigneeId: suite.managerId,
	})

	suite.ErrorIs(err, models.ErrIllegalStatusTransition)
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_UnassignCase() {
	ctx := context.Background()
	tx := suite.transactionFactory.TxMock

	assignedCase := models.Case{
		Id: suite.ref.Id, Kind: suite.ref.Kind,
		Status: models.CaseStatusAssigned, CurrentOwner: &suite.analystId,
	}
	newCase := models.Case{Id: suite.ref.Id, Kind: suite.ref.Kind, Status: models.CaseStatusNew}

	suite.expectTransaction()
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(assignedCase, nil).Once()
	suite.enforceSecurity.On("AssignCase").Return(nil)
	suite.repository.On("UpdateCaseWorkflow", ctx, tx, suite.ref, models.CaseWorkflowUpdate{
		Status:   models.CaseStatusNew,
		SetOwner: true,
		Owner:    nil,
	}).Return(nil)
	suite.repository.On("CreateCaseEvent", ctx, tx, models.CreateCaseEventAttributes{
		Ref:           suite.ref,
		MemberId:      &suite.actorId,
		EventType:     models.CaseUnassigned,
		PreviousValue: &suite.analystId,
	}).Return(nil)
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(newCase, nil).Once()

	c, err := suite.makeUsecase().UnassignCase(ctx, suite.ref)

	suite.NoError(err)
	suite.Equal(models.CaseStatusNew, c.Status)
	suite.Nil(c.CurrentOwner)
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_StartReview() {
	ctx := context.Background()
	tx := suite.transactionFactory.TxMock

	assignedCase := models.Case{
		Id: suite.ref.Id, Kind: suite.ref.Kind,
		Status: models.CaseStatusAssigned, CurrentOwner: &suite.actorId,
	}
	reviewCase := assignedCase
	reviewCase.Status = models.CaseStatusUnderReview

	previous := string(models.CaseStatusAssigned)
	newValue := string(models.CaseStatusUnderReview)

	suite.expectTransaction()
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(assignedCase, nil).Once()
	suite.enforceSecurity.On("ReviewCase", assignedCase).Return(nil)
	suite.repository.On("UpdateCaseWorkflow", ctx, tx, suite.ref, models.CaseWorkflowUpdate{
		Status: models.CaseStatusUnderReview,
	}).Return(nil)
	suite.repository.On("CreateCaseEvent", ctx, tx, models.CreateCaseEventAttributes{
		Ref:           suite.ref,
		MemberId:      &suite.actorId,
		EventType:     models.CaseReviewStarted,
		NewValue:      &newValue,
		PreviousValue: &previous,
	}).Return(nil)
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(reviewCase, nil).Once()

	c, err := suite.makeUsecase().StartReview(ctx, suite.ref)

	suite.NoError(err)
	suite.Equal(models.CaseStatusUnderReview, c.Status)
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_StartReview_Unassigned() {
	ctx := context.Background()
	tx := suite.transactionFactory.TxMock

	suite.expectTransaction()
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).
		Return(models.Case{Id: suite.ref.Id, Status: models.CaseStatusAssigned}, nil)

	_, err := suite.makeUsecase().StartReview(ctx, suite.ref)

	suite.ErrorIs(err, models.ErrCaseUnassigned)
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_StartReview_NotOwner() {
	ctx := context.Background()
	tx := suite.transactionFactory.TxMock

	someoneElsesCase := models.Case{
		Id: suite.ref.Id, Status: models.CaseStatusAssigned, CurrentOwner: &suite.analystId,
	}

	suite.expectTransaction()
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(someoneElsesCase, nil)
	suite.enforceSecurity.On("ReviewCase", someoneElsesCase).Return(models.ErrNotCaseOwner)

	_, err := suite.makeUsecase().StartReview(ctx, suite.ref)

	suite.ErrorIs(err, models.ErrNotCaseOwner)
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_SubmitCase() {
	ctx := context.Background()
	tx := suite.transactionFactory.TxMock

	recommendation := "File CTR"
	reviewCase := models.Case{
		Id: suite.ref.Id, Kind: suite.ref.Kind,
		Status: models.CaseStatusUnderReview, CurrentOwner: &suite.actorId,
	}
	submittedCase := reviewCase
	submittedCase.Status = models.CaseStatusSubmitted
	submittedCase.Approver = &suite.managerId
	submittedCase.Recommendation = &recommendation

	suite.expectTransaction()
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(reviewCase, nil).Once()
	suite.enforceSecurity.On("ReviewCase", reviewCase).Return(nil)
	suite.repository.On("GetTeamMemberById", ctx, tx, suite.managerId).
		Return(models.TeamMember{Id: suite.managerId}, nil)
	suite.repository.On("UpdateCaseWorkflow", ctx, tx, suite.ref, models.CaseWorkflowUpdate{
		Status:            models.CaseStatusSubmitted,
		SetApprover:       true,
		Approver:          &suite.managerId,
		SetRecommendation: true,
		Recommendation:    &recommendation,
	}).Return(nil)
	suite.repository.On("CreateCaseEvent", ctx, tx, models.CreateCaseEventAttributes{
		Ref:       suite.ref,
		MemberId:  &suite.actorId,
		EventType: models.CaseSubmitted,
		NewValue:  &recommendation,
	}).Return(nil)
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(submittedCase, nil).Once()
	suite.fileArchiver.On("ArchiveCaseFiles", ctx, submittedCase).
		Return(models.FileArchiveReport{Archived: []string{"receipt.pdf"}}, nil)

	c, report, err := suite.makeUsecase().SubmitCase(ctx, models.SubmitCaseAttributes{
		Ref:            suite.ref,
		ApproverId:     suite.managerId,
		Recommendation: recommendation,
	})

	suite.NoError(err)
	suite.Equal(models.CaseStatusSubmitted, c.Status)
	suite.Equal([]string{"receipt.pdf"}, report.Archived)
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_SubmitCase_MissingRecommendation() {
	ctx := context.Background()
	tx := suite.transactionFactory.TxMock

	reviewCase := models.Case{
		Id: suite.ref.Id, Status: models.CaseStatusUnderReview, CurrentOwner: &suite.actorId,
	}

	suite.expectTransaction()
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(reviewCase, nil)
	suite.enforceSecurity.On("ReviewCase", reviewCase).Return(nil)

	_, _, err := suite.makeUsecase().SubmitCase(ctx, models.SubmitCaseAttributes{
		Ref:        suite.ref,
		ApproverId: suite.managerId,
	})

	suite.ErrorIs(err, models.ErrMissingRecommendation)
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_SubmitCase_ArchiveFailureDoesNotFailSubmission() {
	ctx := context.Background()
	tx := suite.transactionFactory.TxMock

	recommendation := "File CTR and PSA"
	reviewCase := models.Case{
		Id: suite.ref.Id, Kind: suite.ref.Kind,
		Status: models.CaseStatusUnderReview, CurrentOwner: &suite.actorId,
	}
	submittedCase := reviewCase
	submittedCase.Status = models.CaseStatusSubmitted

	suite.expectTransaction()
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(reviewCase, nil).Once()
	suite.enforceSecurity.On("ReviewCase", reviewCase).Return(nil)
	suite.repository.On("GetTeamMemberById", ctx, tx, suite.managerId).
		Return(models.TeamMember{Id: suite.managerId}, nil)
	suite.repository.On("UpdateCaseWorkflow", ctx, tx, suite.ref, mock.Anything).Return(nil)
	suite.repository.On("CreateCaseEvent", ctx, tx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(submittedCase, nil).Once()
	suite.fileArchiver.On("ArchiveCaseFiles", ctx, submittedCase).
		Return(models.FileArchiveReport{}, models.NotFoundError)

	c, report, err := suite.makeUsecase().SubmitCase(ctx, models.SubmitCaseAttributes{
		Ref:            suite.ref,
		ApproverId:     suite.managerId,
		Recommendation: recommendation,
	})

	suite.NoError(err)
	suite.Equal(models.CaseStatusSubmitted, c.Status)
	suite.Empty(report.Archived)
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_ApproveCase() {
	ctx := context.Background()
	tx := suite.transactionFactory.TxMock

	submittedCase := models.Case{
		Id: suite.ref.Id, Kind: suite.ref.Kind,
		Status: models.CaseStatusSubmitted, Approver: &suite.actorId,
	}
	approvedCase := submittedCase
	approvedCase.Status = models.CaseStatusApproved

	previous := string(models.CaseStatusSubmitted)
	newValue := string(models.CaseStatusApproved)

	suite.expectTransaction()
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(submittedCase, nil).Once()
	suite.enforceSecurity.On("ApproveCase", submittedCase).Return(nil)
	suite.repository.On("UpdateCaseWorkflow", ctx, tx, suite.ref, models.CaseWorkflowUpdate{
		Status: models.CaseStatusApproved,
	}).Return(nil)
	suite.repository.On("CreateCaseEvent", ctx, tx, models.CreateCaseEventAttributes{
		Ref:           suite.ref,
		MemberId:      &suite.actorId,
		EventType:     models.CaseApproved,
		NewValue:      &newValue,
		PreviousValue: &previous,
	}).Return(nil)
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(approvedCase, nil).Once()

	c, err := suite.makeUsecase().ApproveCase(ctx, suite.ref)

	suite.NoError(err)
	suite.Equal(models.CaseStatusApproved, c.Status)
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_RejectCase_ClearsApproverAndRecommendation() {
	ctx := context.Background()
	tx := suite.transactionFactory.TxMock

	recommendation := "File CTR"
	submittedCase := models.Case{
		Id: suite.ref.Id, Kind: suite.ref.Kind,
		Status: models.CaseStatusSubmitted, CurrentOwner: &suite.analystId,
		Approver: &suite.actorId, Recommendation: &recommendation,
	}
	rejectedCase := submittedCase
	rejectedCase.Status = models.CaseStatusUnderReview
	rejectedCase.Approver = nil
	rejectedCase.Recommendation = nil

	suite.expectTransaction()
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(submittedCase, nil).Once()
	suite.enforceSecurity.On("ApproveCase", submittedCase).Return(nil)
	suite.repository.On("UpdateCaseWorkflow", ctx, tx, suite.ref, models.CaseWorkflowUpdate{
		Status:            models.CaseStatusUnderReview,
		SetApprover:       true,
		Approver:          nil,
		SetRecommendation: true,
		Recommendation:    nil,
	}).Return(nil)
	suite.repository.On("CreateCaseEvent", ctx, tx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(rejectedCase, nil).Once()

	c, err := suite.makeUsecase().RejectCase(ctx, suite.ref)

	suite.NoError(err)
	suite.Equal(models.CaseStatusUnderReview, c.Status)
	// the owner keeps the case to rework it
	suite.Equal(&suite.analystId, c.CurrentOwner)
	suite.Nil(c.Approver)
	suite.Nil(c.Recommendation)
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_WithdrawCase_RetainsApproverAndRecommendation() {
	ctx := context.Background()
	tx := suite.transactionFactory.TxMock

	recommendation := "File CTR"
	submittedCase := models.Case{
		Id: suite.ref.Id, Kind: suite.ref.Kind,
		Status: models.CaseStatusSubmitted, CurrentOwner: &suite.actorId,
		Approver: &suite.managerId, Recommendation: &recommendation,
	}
	withdrawnCase := submittedCase
	withdrawnCase.Status = models.CaseStatusUnderReview

	suite.expectTransaction()
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(submittedCase, nil).Once()
	suite.enforceSecurity.On("ReviewCase", submittedCase).Return(nil)
	// withdraw only flips the status, unlike reject
	suite.repository.On("UpdateCaseWorkflow", ctx, tx, suite.ref, models.CaseWorkflowUpdate{
		Status: models.CaseStatusUnderReview,
	}).Return(nil)
	suite.repository.On("CreateCaseEvent", ctx, tx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(withdrawnCase, nil).Once()

	c, err := suite.makeUsecase().WithdrawCase(ctx, suite.ref)

	suite.NoError(err)
	suite.Equal(models.CaseStatusUnderReview, c.Status)
	suite.Equal(&suite.managerId, c.Approver)
	suite.Equal(&recommendation, c.Recommendation)
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_ApproveCase_IllegalFromAssigned() {
	ctx := context.Background()
	tx := suite.transactionFactory.TxMock

	assignedCase := models.Case{Id: suite.ref.Id, Status: models.CaseStatusAssigned}

	suite.expectTransaction()
	suite.repository.On("GetCaseByRef", ctx, tx, suite.ref).Return(assignedCase, nil)
	suite.enforceSecurity.On("ApproveCase", assignedCase).Return(nil)

	_, err := suite.makeUsecase().ApproveCase(ctx, suite.ref)

	suite.ErrorIs(err, models.ErrIllegalStatusTransition)
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_BulkAssign_PartialFailure() {
	ctx := context.Background()
	tx := suite.transactionFactory.TxMock

	okRef := models.CaseRef{Id: "22222222-2222-2222-2222-222222222222", Kind: models.CaseKindCtr}
	badRef := models.CaseRef{Id: "33333333-3333-3333-3333-333333333333", Kind: models.CaseKindForm8300}

	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.enforceSecurity.On("AssignCase").Return(nil)
	suite.repository.On("GetTeamMemberById", ctx, tx, suite.analystId).
		Return(models.TeamMember{Id: suite.analystId}, nil)

	suite.repository.On("GetCaseByRef", ctx, tx, okRef).
		Return(models.Case{Id: okRef.Id, Kind: okRef.Kind, Status: models.CaseStatusNew}, nil)
	suite.repository.On("UpdateCaseWorkflow", ctx, tx, okRef, mock.Anything).Return(nil)
	suite.repository.On("CreateCaseEvent", ctx, tx, mock.Anything).Return(nil)

	// already approved, cannot be assigned
	suite.repository.On("GetCaseByRef", ctx, tx, badRef).
		Return(models.Case{Id: badRef.Id, Kind: badRef.Kind, Status: models.CaseStatusApproved}, nil)

	result := suite.makeUsecase().BulkAssign(ctx, []models.CaseRef{okRef, badRef}, suite.analystId)

	suite.Equal([]models.CaseRef{okRef}, result.Succeeded)
	suite.Len(result.Failed, 1)
	suite.Equal(badRef, result.Failed[0].Ref)
	suite.True(result.HasFailures())
}

func TestCaseWorkflowUsecase(t *testing.T) {
	suite.Run(t, new(CaseWorkflowUsecaseTestSuite))
}
