package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/meridiancruises/compliance-backend/mocks"
	"github.com/meridiancruises/compliance-backend/models"
)

type CaseQueryUsecaseTestSuite struct {
	suite.Suite
	repository      *mocks.CaseQueryRepository
	executorFactory *mocks.ExecutorFactory
	executor        *mocks.Executor
	enforceSecurity *mocks.EnforceSecurity
}

func (suite *CaseQueryUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.CaseQueryRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)
	suite.enforceSecurity = new(mocks.EnforceSecurity)

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
}

func (suite *CaseQueryUsecaseTestSuite) makeUsecase() *CaseQueryUsecase {
	return &CaseQueryUsecase{
		enforceSecurity: suite.enforceSecurity,
		executorFactory: suite.executorFactory,
		repository:      suite.repository,
	}
}

func (suite *CaseQueryUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.enforceSecurity.AssertExpectations(t)
}

func rec(s string) *string { return &s }

func (suite *CaseQueryUsecaseTestSuite) Test_ListCases_PsaCarveOut() {
	ctx := context.Background()

	cases := []models.Case{
		{Id: "a", Kind: models.CaseKindCtr},
		{Id: "b", Kind: models.CaseKindCtr, Recommendation: rec("No filing, PSA only")},
		{Id: "c", Kind: models.CaseKindForm8300},
	}

	suite.enforceSecurity.On("ReadCase", models.Case{}).Return(nil)
	suite.repository.On("ListCases", ctx, suite.executor, models.CaseFilters{}).Return(cases, nil)
	suite.repository.On("ListTeamMembers", ctx, suite.executor).Return([]models.TeamMember{}, nil)

	listing, err := suite.makeUsecase().ListCases(ctx, models.CaseFilters{}, models.CaseSorting{})

	suite.NoError(err)
	suite.Len(listing.Cases, 2)
	suite.Len(listing.PsaCases, 1)
	suite.Equal("b", listing.PsaCases[0].Id)
	suite.AssertExpectations()
}

func (suite *CaseQueryUsecaseTestSuite) Test_ListCases_PsaOnlyFilter() {
	ctx := context.Background()

	filters := models.CaseFilters{PsaOnly: true}
	cases := []models.Case{
		{Id: "a"},
		{Id: "b", Recommendation: rec("PSA")},
	}

	suite.enforceSecurity.On("ReadCase", models.Case{}).Return(nil)
	suite.repository.On("ListCases", ctx, suite.executor, filters).Return(cases, nil)
	suite.repository.On("ListTeamMembers", ctx, suite.executor).Return([]models.TeamMember{}, nil)

	listing, err := suite.makeUsecase().ListCases(ctx, filters, models.CaseSorting{})

	suite.NoError(err)
	suite.Len(listing.Cases, 1)
	suite.Equal("b", listing.Cases[0].Id)
	suite.Empty(listing.PsaCases)
	suite.AssertExpectations()
}

func (suite *CaseQueryUsecaseTestSuite) Test_ListCases_DefaultSortNewestGamingDayFirst() {
	ctx := context.Background()

	older := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	cases := []models.Case{
		{Id: "a", GamingDay: &older},
		{Id: "b", GamingDay: &newer},
	}

	suite.enforceSecurity.On("ReadCase", models.Case{}).Return(nil)
	suite.repository.On("ListCases", ctx, suite.executor, models.CaseFilters{}).Return(cases, nil)
	suite.repository.On("ListTeamMembers", ctx, suite.executor).Return([]models.TeamMember{}, nil)

	listing, err := suite.makeUsecase().ListCases(ctx, models.CaseFilters{}, models.CaseSorting{})

	suite.NoError(err)
	suite.Equal("b", listing.Cases[0].Id)
	suite.Equal("a", listing.Cases[1].Id)
	suite.AssertExpectations()
}

func (suite *CaseQueryUsecaseTestSuite) Test_GetCase_AttachesFilesAndEvents() {
	ctx := context.Background()
	ref := models.CaseRef{Id: "a", Kind: models.CaseKindCtr}
	kase := models.Case{Id: "a", Kind: models.CaseKindCtr, Status: models.CaseStatusAssigned}

	suite.repository.On("GetCaseByRef", ctx, suite.executor, ref).Return(kase, nil)
	suite.enforceSecurity.On("ReadCase", kase).Return(nil)
	suite.repository.On("ListCaseFiles", ctx, suite.executor, ref).
		Return([]models.CaseFile{{Id: "f1"}}, nil)
	suite.repository.On("ListCaseEvents", ctx, suite.executor, ref).
		Return([]models.CaseEvent{{Id: "e1"}}, nil)

	got, err := suite.makeUsecase().GetCase(ctx, ref)

	suite.NoError(err)
	suite.Len(got.Files, 1)
	suite.Len(got.Events, 1)
	suite.AssertExpectations()
}

func (suite *CaseQueryUsecaseTestSuite) Test_ArchiveView_OnlyApprovedGroupedByMonth() {
	ctx := context.Background()

	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	expectedFilters := models.CaseFilters{Statuses: []models.CaseStatus{models.CaseStatusApproved}}
	approved := []models.Case{
		{Id: "a", Status: models.CaseStatusApproved, GamingDay: &jan},
		{Id: "b", Status: models.CaseStatusApproved, GamingDay: &feb},
	}

	suite.enforceSecurity.On("ReadCase", models.Case{}).Return(nil)
	suite.repository.On("ListCases", ctx, suite.executor, expectedFilters).Return(approved, nil)

	buckets, err := suite.makeUsecase().ArchiveView(ctx, models.CaseFilters{})

	suite.NoError(err)
	suite.Len(buckets, 2)
	suite.Equal("February 2026", buckets[0].Label)
	suite.Equal("January 2026", buckets[1].Label)
	suite.AssertExpectations()
}

func TestCaseQueryUsecase(t *testing.T) {
	suite.Run(t, new(CaseQueryUsecaseTestSuite))
}
