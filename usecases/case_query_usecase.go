package usecases

import (
	"context"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/repositories"
	"github.com/meridiancruises/compliance-backend/usecases/executor_factory"
	"github.com/meridiancruises/compliance-backend/usecases/security"
)

type CaseQueryRepository interface {
	ListCases(ctx context.Context, exec repositories.Executor,
		filters models.CaseFilters) ([]models.Case, error)
	GetCaseByRef(ctx context.Context, exec repositories.Executor,
		ref models.CaseRef) (models.Case, error)
	ListCaseFiles(ctx context.Context, exec repositories.Executor,
		ref models.CaseRef) ([]models.CaseFile, error)
	ListCaseEvents(ctx context.Context, exec repositories.Executor,
		ref models.CaseRef) ([]models.CaseEvent, error)
	ListTeamMembers(ctx context.Context, exec repositories.Executor) ([]models.TeamMember, error)
}

type CaseQueryUsecase struct {
	enforceSecurity security.EnforceSecurityCase
	executorFactory executor_factory.ExecutorFactory
	repository      CaseQueryRepository
}

// CaseListing is a filtered, sorted case list view. The PSA bucket cuts
// across both case kinds, so PSA cases are carved out of the kind lists and
// reported separately.
type CaseListing struct {
	Cases    []models.Case
	PsaCases []models.Case
}

// ListCases fetches the cases matching the filters, splits out the PSA
// bucket and sorts both slices by the requested key. Owner sorting compares
// display names, not member ids.
func (uc *CaseQueryUsecase) ListCases(ctx context.Context, filters models.CaseFilters,
	sorting models.CaseSorting,
) (CaseListing, error) {
	if err := uc.enforceSecurity.ReadCase(models.Case{}); err != nil {
		return CaseListing{}, err
	}

	exec := uc.executorFactory.NewExecutor()
	cases, err := uc.repository.ListCases(ctx, exec, filters)
	if err != nil {
		return CaseListing{}, err
	}

	ownerName, err := uc.ownerNameResolver(ctx, exec)
	if err != nil {
		return CaseListing{}, err
	}

	var listing CaseListing
	for _, c := range cases {
		if c.IsPsa() && !filters.PsaOnly {
			listing.PsaCases = append(listing.PsaCases, c)
			continue
		}
		if filters.PsaOnly && !c.IsPsa() {
			continue
		}
		listing.Cases = append(listing.Cases, c)
	}

	if sorting.Field != "" {
		models.SortCases(listing.Cases, sorting, ownerName)
		models.SortCases(listing.PsaCases, sorting, ownerName)
	} else {
		models.SortCasesByGamingDayDesc(listing.Cases)
		models.SortCasesByGamingDayDesc(listing.PsaCases)
	}

	return listing, nil
}

// GetCase returns one case with its files and event history attached.
func (uc *CaseQueryUsecase) GetCase(ctx context.Context, ref models.CaseRef) (models.Case, error) {
	exec := uc.executorFactory.NewExecutor()

	c, err := uc.repository.GetCaseByRef(ctx, exec, ref)
	if err != nil {
		return models.Case{}, err
	}
	if err := uc.enforceSecurity.ReadCase(c); err != nil {
		return models.Case{}, err
	}

	c.Files, err = uc.repository.ListCaseFiles(ctx, exec, ref)
	if err != nil {
		return models.Case{}, err
	}
	c.Events, err = uc.repository.ListCaseEvents(ctx, exec, ref)
	if err != nil {
		return models.Case{}, err
	}

	return c, nil
}

// ArchiveView returns the approved cases grouped by the month of their
// gaming day, newest month first.
func (uc *CaseQueryUsecase) ArchiveView(ctx context.Context, filters models.CaseFilters,
) ([]models.ArchiveBucket, error) {
	if err := uc.enforceSecurity.ReadCase(models.Case{}); err != nil {
		return nil, err
	}

	filters.Statuses = []models.CaseStatus{models.CaseStatusApproved}

	exec := uc.executorFactory.NewExecutor()
	cases, err := uc.repository.ListCases(ctx, exec, filters)
	if err != nil {
		return nil, err
	}

	return models.GroupCasesByMonth(cases), nil
}

func (uc *CaseQueryUsecase) ownerNameResolver(ctx context.Context, exec repositories.Executor,
) (models.OwnerNameResolver, error) {
	members, err := uc.repository.ListTeamMembers(ctx, exec)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.Id] = m.DisplayName()
	}
	return func(memberId string) string {
		return names[memberId]
	}, nil
}
