package models

import "time"

type CaseEventType string

const (
	CaseAssigned      CaseEventType = "case_assigned"
	CaseUnassigned    CaseEventType = "case_unassigned"
	CaseReviewStarted CaseEventType = "review_started"
	CaseReturned      CaseEventType = "case_returned"
	CaseSubmitted     CaseEventType = "case_submitted"
	CaseApproved      CaseEventType = "case_approved"
	CaseRejected      CaseEventType = "case_rejected"
	CaseWithdrawn     CaseEventType = "case_withdrawn"
	CaseFileAdded     CaseEventType = "file_added"
	CaseFileDeleted   CaseEventType = "file_deleted"
	CaseFileArchived  CaseEventType = "file_archived"
)

type CaseEvent struct {
	Id            string
	CaseId        string
	CaseKind      CaseKind
	MemberId      *string
	EventType     CaseEventType
	NewValue      *string
	PreviousValue *string
	CreatedAt     time.Time
}

type CreateCaseEventAttributes struct {
	Ref           CaseRef
	MemberId      *string
	EventType     CaseEventType
	NewValue      *string
	PreviousValue *string
}
