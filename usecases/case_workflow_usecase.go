package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/repositories"
	"github.com/meridiancruises/compliance-backend/usecases/executor_factory"
	"github.com/meridiancruises/compliance-backend/usecases/security"
	"github.com/meridiancruises/compliance-backend/utils"
)

type CaseWorkflowRepository interface {
	GetCaseByRef(ctx context.Context, exec repositories.Executor, ref models.CaseRef) (models.Case, error)
	UpdateCaseWorkflow(ctx context.Context, exec repositories.Executor,
		ref models.CaseRef, update models.CaseWorkflowUpdate) error
	CreateCaseEvent(ctx context.Context, exec repositories.Executor,
		attrs models.CreateCaseEventAttributes) error
	GetTeamMemberById(ctx context.Context, exec repositories.Executor,
		memberId string) (models.TeamMember, error)
}

type caseFileArchiver interface {
	ArchiveCaseFiles(ctx context.Context, c models.Case) (models.FileArchiveReport, error)
}

type CaseWorkflowUsecase struct {
	enforceSecurity    security.EnforceSecurityCase
	transactionFactory executor_factory.TransactionFactory
	executorFactory    executor_factory.ExecutorFactory
	repository         CaseWorkflowRepository
	fileArchiver       caseFileArchiver
	credentials        models.Credentials
}

func (uc *CaseWorkflowUsecase) actorId() *string {
	if uc.credentials.ActorIdentity.MemberId == "" {
		return nil
	}
	id := uc.credentials.ActorIdentity.MemberId
	return &id
}

func (uc *CaseWorkflowUsecase) checkTransition(c models.Case, to models.CaseStatus) error {
	if !c.Status.CanTransition(to) {
		return errors.WithDetailf(models.ErrIllegalStatusTransition,
			"case %s cannot go from %s to %s", c.Ref(), c.Status, to)
	}
	return nil
}

// AssignCase moves a new case to Assigned and records the assignee as its
// current owner. Reassigning an already assigned case keeps its status and
// only swaps the owner.
func (uc *CaseWorkflowUsecase) AssignCase(ctx context.Context, attrs models.AssignCaseAttributes) (models.Case, error) {
	return executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			c, err := uc.repository.GetCaseByRef(ctx, tx, attrs.Ref)
			if err != nil {
				return models.Case{}, err
			}
			if err := uc.enforceSecurity.AssignCase(); err != nil {
				return models.Case{}, err
			}

			if _, err := uc.repository.GetTeamMemberById(ctx, tx, attrs.AssigneeId); err != nil {
				if errors.Is(err, models.NotFoundError) {
					return models.Case{}, errors.WithDetailf(models.ErrUnknownTeamMember,
						"cannot assign case %s to %s", attrs.Ref, attrs.AssigneeId)
				}
				return models.Case{}, err
			}

			newStatus := c.Status
			switch c.Status {
			case models.CaseStatusNew:
				newStatus = models.CaseStatusAssigned
			case models.CaseStatusAssigned:
				// reassignment keeps the status, only the owner changes
			default:
				return models.Case{}, errors.WithDetailf(models.ErrIllegalStatusTransition,
					"case %s cannot be assigned while %s", c.Ref(), c.Status)
			}

			err = uc.repository.UpdateCaseWorkflow(ctx, tx, attrs.Ref, models.CaseWorkflowUpdate{
				Status:   newStatus,
				SetOwner: true,
				Owner:    &attrs.AssigneeId,
			})
			if err != nil {
				return models.Case{}, err
			}

			err = uc.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				Ref:           attrs.Ref,
				MemberId:      uc.actorId(),
				EventType:     models.CaseAssigned,
				NewValue:      &attrs.AssigneeId,
				PreviousValue: c.CurrentOwner,
			})
			if err != nil {
				return models.Case{}, err
			}

			return uc.repository.GetCaseByRef(ctx, tx, attrs.Ref)
		})
}

// UnassignCase returns an assigned case to the New pile and clears its owner.
func (uc *CaseWorkflowUsecase) UnassignCase(ctx context.Context, ref models.CaseRef) (models.Case, error) {
	return executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			c, err := uc.repository.GetCaseByRef(ctx, tx, ref)
			if err != nil {
				return models.Case{}, err
			}
			if err := uc.enforceSecurity.AssignCase(); err != nil {
				return models.Case{}, err
			}
			if err := uc.checkTransition(c, models.CaseStatusNew); err != nil {
				return models.Case{}, err
			}

			err = uc.repository.UpdateCaseWorkflow(ctx, tx, ref, models.CaseWorkflowUpdate{
				Status:   models.CaseStatusNew,
				SetOwner: true,
				Owner:    nil,
			})
			if err != nil {
				return models.Case{}, err
			}

			err = uc.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				Ref:           ref,
				MemberId:      uc.actorId(),
				EventType:     models.CaseUnassigned,
				PreviousValue: c.CurrentOwner,
			})
			if err != nil {
				return models.Case{}, err
			}

			return uc.repository.GetCaseByRef(ctx, tx, ref)
		})
}

// StartReview moves an assigned case to Under Review. Only the current owner
// can do it.
func (uc *CaseWorkflowUsecase) StartReview(ctx context.Context, ref models.CaseRef) (models.Case, error) {
	return uc.ownerTransition(ctx, ref, models.CaseStatusUnderReview, models.CaseReviewStarted)
}

// ReturnCase hands a case under review back to Assigned without touching its
// owner.
func (uc *CaseWorkflowUsecase) ReturnCase(ctx context.Context, ref models.CaseRef) (models.Case, error) {
	return uc.ownerTransition(ctx, ref, models.CaseStatusAssigned, models.CaseReturned)
}

// WithdrawCase pulls a submitted case back to Under Review before the
// approver has ruled on it.
func (uc *CaseWorkflowUsecase) WithdrawCase(ctx context.Context, ref models.CaseRef) (models.Case, error) {
	return uc.ownerTransition(ctx, ref, models.CaseStatusUnderReview, models.CaseWithdrawn)
}

func (uc *CaseWorkflowUsecase) ownerTransition(ctx context.Context, ref models.CaseRef,
	to models.CaseStatus, eventType models.CaseEventType,
) (models.Case, error) {
	return executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			c, err := uc.repository.GetCaseByRef(ctx, tx, ref)
			if err != nil {
				return models.Case{}, err
			}
			if c.CurrentOwner == nil {
				return models.Case{}, errors.WithDetailf(models.ErrCaseUnassigned,
					"case %s", ref)
			}
			if err := uc.enforceSecurity.ReviewCase(c); err != nil {
				return models.Case{}, err
			}
			if err := uc.checkTransition(c, to); err != nil {
				return models.Case{}, err
			}

			err = uc.repository.UpdateCaseWorkflow(ctx, tx, ref, models.CaseWorkflowUpdate{
				Status: to,
			})
			if err != nil {
				return models.Case{}, err
			}

			previous := string(c.Status)
			newValue := string(to)
			err = uc.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				Ref:           ref,
				MemberId:      uc.actorId(),
				EventType:     eventType,
				NewValue:      &newValue,
				PreviousValue: &previous,
			})
			if err != nil {
				return models.Case{}, err
			}

			return uc.repository.GetCaseByRef(ctx, tx, ref)
		})
}

// SubmitCase sends a reviewed case to the designated approver with a
// recommendation. Case files are copied to the patron archive on a best
// effort basis; a copy failure never blocks the submission and is reported
// back instead.
func (uc *CaseWorkflowUsecase) SubmitCase(ctx context.Context, attrs models.SubmitCaseAttributes,
) (models.Case, models.FileArchiveReport, error) {
	c, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			c, err := uc.repository.GetCaseByRef(ctx, tx, attrs.Ref)
			if err != nil {
				return models.Case{}, err
			}
			if c.CurrentOwner == nil {
				return models.Case{}, errors.WithDetailf(models.ErrCaseUnassigned,
					"case %s", attrs.Ref)
			}
			if err := uc.enforceSecurity.ReviewCase(c); err != nil {
				return models.Case{}, err
			}
			if err := uc.checkTransition(c, models.CaseStatusSubmitted); err != nil {
				return models.Case{}, err
			}
			if attrs.Recommendation == "" {
				return models.Case{}, models.ErrMissingRecommendation
			}
			if attrs.ApproverId == "" {
				return models.Case{}, models.ErrMissingApprover
			}

			if _, err := uc.repository.GetTeamMemberById(ctx, tx, attrs.ApproverId); err != nil {
				if errors.Is(err, models.NotFoundError) {
					return models.Case{}, errors.WithDetailf(models.ErrUnknownTeamMember,
						"cannot route case %s to approver %s", attrs.Ref, attrs.ApproverId)
				}
				return models.Case{}, err
			}

			err = uc.repository.UpdateCaseWorkflow(ctx, tx, attrs.Ref, models.CaseWorkflowUpdate{
				Status:            models.CaseStatusSubmitted,
				SetApprover:       true,
				Approver:          &attrs.ApproverId,
				SetRecommendation: true,
				Recommendation:    &attrs.Recommendation,
			})
			if err != nil {
				return models.Case{}, err
			}

			err = uc.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				Ref:       attrs.Ref,
				MemberId:  uc.actorId(),
				EventType: models.CaseSubmitted,
				NewValue:  &attrs.Recommendation,
			})
			if err != nil {
				return models.Case{}, err
			}

			return uc.repository.GetCaseByRef(ctx, tx, attrs.Ref)
		})
	if err != nil {
		return models.Case{}, models.FileArchiveReport{}, err
	}

	report, err := uc.fileArchiver.ArchiveCaseFiles(ctx, c)
	if err != nil {
		// the submission already went through, do not fail it
		utils.LoggerFromContext(ctx).WarnContext(ctx,
			"case file archiving failed after submission",
			"case", c.Ref().String(), "error", err.Error())
		report = models.FileArchiveReport{}
	}

	return c, report, nil
}

// ApproveCase finalizes a submitted case. Approved is terminal.
func (uc *CaseWorkflowUsecase) ApproveCase(ctx context.Context, ref models.CaseRef) (models.Case, error) {
	return uc.approverTransition(ctx, ref, models.CaseWorkflowUpdate{
		Status: models.CaseStatusApproved,
	}, models.CaseApproved)
}

// RejectCase sends a submitted case back to Under Review, clearing approver
// and recommendation but keeping the owner, so the owner can rework and
// resubmit. Contrast with WithdrawCase, which retains both.
func (uc *CaseWorkflowUsecase) RejectCase(ctx context.Context, ref models.CaseRef) (models.Case, error) {
	return uc.approverTransition(ctx, ref, models.CaseWorkflowUpdate{
		Status:            models.CaseStatusUnderReview,
		SetApprover:       true,
		Approver:          nil,
		SetRecommendation: true,
		Recommendation:    nil,
	}, models.CaseRejected)
}

func (uc *CaseWorkflowUsecase) approverTransition(ctx context.Context, ref models.CaseRef,
	update models.CaseWorkflowUpdate, eventType models.CaseEventType,
) (models.Case, error) {
	return executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			c, err := uc.repository.GetCaseByRef(ctx, tx, ref)
			if err != nil {
				return models.Case{}, err
			}
			if err := uc.enforceSecurity.ApproveCase(c); err != nil {
				return models.Case{}, err
			}
			if err := uc.checkTransition(c, update.Status); err != nil {
				return models.Case{}, err
			}

			err = uc.repository.UpdateCaseWorkflow(ctx, tx, ref, update)
			if err != nil {
				return models.Case{}, err
			}

			previous := string(c.Status)
			newValue := string(update.Status)
			err = uc.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				Ref:           ref,
				MemberId:      uc.actorId(),
				EventType:     eventType,
				NewValue:      &newValue,
				PreviousValue: &previous,
			})
			if err != nil {
				return models.Case{}, err
			}

			return uc.repository.GetCaseByRef(ctx, tx, ref)
		})
}

// BulkAssign assigns a batch of cases to one team member. Cases are
// transitioned independently: one illegal transition does not roll back the
// others, and every failure is reported per case.
func (uc *CaseWorkflowUsecase) BulkAssign(ctx context.Context, refs []models.CaseRef,
	assigneeId string,
) models.BatchResult {
	var result models.BatchResult
	for _, ref := range refs {
		_, err := uc.AssignCase(ctx, models.AssignCaseAttributes{
			Ref:        ref,
			AssigneeId: assigneeId,
		})
		if err != nil {
			result.Failed = append(result.Failed, models.BatchItemError{
				Ref:   ref,
				Error: err.Error(),
			})
			continue
		}
		result.Succeeded = append(result.Succeeded, ref)
	}
	return result
}

// BulkSubmit submits a batch of cases to the same approver with the same
// recommendation, reporting per-case outcomes.
func (uc *CaseWorkflowUsecase) BulkSubmit(ctx context.Context, refs []models.CaseRef,
	approverId string, recommendation string,
) models.BatchResult {
	var result models.BatchResult
	for _, ref := range refs {
		_, _, err := uc.SubmitCase(ctx, models.SubmitCaseAttributes{
			Ref:            ref,
			ApproverId:     approverId,
			Recommendation: recommendation,
		})
		if err != nil {
			result.Failed = append(result.Failed, models.BatchItemError{
				Ref:   ref,
				Error: err.Error(),
			})
			continue
		}
		result.Succeeded = append(result.Succeeded, ref)
	}
	return result
}
