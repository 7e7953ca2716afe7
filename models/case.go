package models

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// FilingDeadlineDays is the number of days after the gaming day by which a
// report must be filed with FinCEN.
const FilingDeadlineDays = 15

type CaseKind string

const (
	CaseKindCtr      CaseKind = "ctr"
	CaseKindForm8300 CaseKind = "form_8300"
)

var ValidCaseKinds = []CaseKind{CaseKindCtr, CaseKindForm8300}

func CaseKindFromString(s string) (CaseKind, error) {
	kind := CaseKind(s)
	if !slices.Contains(ValidCaseKinds, kind) {
		return "", fmt.Errorf("unknown case kind %q: %w", s, BadParameterError)
	}
	return kind, nil
}

// CaseRef identifies a case across the two backing tables: the id is a
// ctr_id for CTR cases and a form_id for Form 8300 cases, never both.
type CaseRef struct {
	Id   string
	Kind CaseKind
}

func (r CaseRef) String() string {
	return fmt.Sprintf("%s/%s", r.Kind, r.Id)
}

type CaseStatus string

const (
	CaseStatusNew         CaseStatus = "New"
	CaseStatusAssigned    CaseStatus = "Assigned"
	CaseStatusUnderReview CaseStatus = "Under Review"
	CaseStatusSubmitted   CaseStatus = "Submitted"
	CaseStatusApproved    CaseStatus = "Approved"
)

var ValidCaseStatuses = []CaseStatus{
	CaseStatusNew,
	CaseStatusAssigned,
	CaseStatusUnderReview,
	CaseStatusSubmitted,
	CaseStatusApproved,
}

func ValidateCaseStatuses(statuses []string) ([]CaseStatus, error) {
	out := make([]CaseStatus, len(statuses))
	for i, s := range statuses {
		status := CaseStatus(s)
		if !slices.Contains(ValidCaseStatuses, status) {
			return nil, fmt.Errorf("unknown case status %q: %w", s, BadParameterError)
		}
		out[i] = status
	}
	return out, nil
}

func (s CaseStatus) CanTransition(newStatus CaseStatus) bool {
	switch s {
	case CaseStatusNew:
		return newStatus == CaseStatusAssigned
	case CaseStatusAssigned:
		return slices.Contains([]CaseStatus{CaseStatusUnderReview, CaseStatusNew}, newStatus)
	case CaseStatusUnderReview:
		return slices.Contains([]CaseStatus{CaseStatusAssigned, CaseStatusSubmitted}, newStatus)
	case CaseStatusSubmitted:
		return slices.Contains([]CaseStatus{CaseStatusApproved, CaseStatusUnderReview}, newStatus)
	case CaseStatusApproved:
		// archived, terminal
		return false
	default:
		return false
	}
}

func (s CaseStatus) IsFinalized() bool {
	return s == CaseStatusApproved
}

// PsaMarker reclassifies a case into the cross-cutting PSA bucket when it
// appears anywhere in the recommendation, independent of the case kind.
const PsaMarker = "PSA"

type Case struct {
	Id             string
	Kind           CaseKind
	Status         CaseStatus
	CurrentOwner   *string
	Approver       *string
	Recommendation *string
	PatronId       *string
	PatronName     *string
	DateOfBirth    *time.Time
	Ship           *string
	GamingDay      *time.Time
	EmbarkDate     *time.Time
	DebarkDate     *time.Time

	// CTR only
	CashIn  *float64
	CashOut *float64

	// Form 8300 only
	FolioNumber *string
	VoyageTotal *float64

	CreatedAt time.Time
	Files     []CaseFile
	Events    []CaseEvent
}

func (c Case) Ref() CaseRef {
	return CaseRef{Id: c.Id, Kind: c.Kind}
}

func (c Case) IsPsa() bool {
	return c.Recommendation != nil && strings.Contains(*c.Recommendation, PsaMarker)
}

func (c Case) IsOwnedBy(memberId string) bool {
	return c.CurrentOwner != nil && *c.CurrentOwner == memberId
}

func (c Case) HasApprover(memberId string) bool {
	return c.Approver != nil && *c.Approver == memberId
}

// FilingDeadline returns the last day the report can be filed on time, or
// nil when the case has no gaming day yet.
func (c Case) FilingDeadline() *time.Time {
	if c.GamingDay == nil {
		return nil
	}
	deadline := c.GamingDay.AddDate(0, 0, FilingDeadlineDays)
	return &deadline
}

type CaseFilters struct {
	Kind           *CaseKind
	PsaOnly        bool
	Statuses       []CaseStatus
	OwnerId        *string
	UnassignedOnly bool
	PatronId       *string
	StartDate      time.Time
	EndDate        time.Time
}

// CaseWorkflowUpdate carries the fields a workflow transition mutates. Owner,
// approver and recommendation are only written when the corresponding Set
// flag is true, so a transition can distinguish "leave unchanged" from
// "clear to null".
type CaseWorkflowUpdate struct {
	Status CaseStatus

	SetOwner bool
	Owner    *string

	SetApprover bool
	Approver    *string

	SetRecommendation bool
	Recommendation    *string
}

type AssignCaseAttributes struct {
	Ref        CaseRef
	AssigneeId string
}

type SubmitCaseAttributes struct {
	Ref            CaseRef
	ApproverId     string
	Recommendation string
}
