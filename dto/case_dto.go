package dto

import (
	"time"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/pure_utils"
)

type APICase struct {
	Id             string         `json:"id"`
	Kind           string         `json:"kind"`
	Status         string         `json:"status"`
	CurrentOwner   *string        `json:"current_owner,omitempty"`
	Approver       *string        `json:"approver,omitempty"`
	Recommendation *string        `json:"recommendation,omitempty"`
	IsPsa          bool           `json:"is_psa"`
	PatronId       *string        `json:"patron_id,omitempty"`
	PatronName     *string        `json:"patron_name,omitempty"`
	DateOfBirth    *time.Time     `json:"date_of_birth,omitempty"`
	Ship           *string        `json:"ship,omitempty"`
	GamingDay      *time.Time     `json:"gaming_day,omitempty"`
	EmbarkDate     *time.Time     `json:"embark_date,omitempty"`
	DebarkDate     *time.Time     `json:"debark_date,omitempty"`
	CashIn         *float64       `json:"cash_in,omitempty"`
	CashOut        *float64       `json:"cash_out,omitempty"`
	FolioNumber    *string        `json:"folio_number,omitempty"`
	VoyageTotal    *float64       `json:"voyage_total,omitempty"`
	FilingDeadline *time.Time     `json:"filing_deadline,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	Files          []APICaseFile  `json:"files,omitempty"`
	Events         []APICaseEvent `json:"events,omitempty"`
}

func AdaptCaseDto(c models.Case) APICase {
	return APICase{
		Id:             c.Id,
		Kind:           string(c.Kind),
		Status:         string(c.Status),
		CurrentOwner:   c.CurrentOwner,
		Approver:       c.Approver,
		Recommendation: c.Recommendation,
		IsPsa:          c.IsPsa(),
		PatronId:       c.PatronId,
		PatronName:     c.PatronName,
		DateOfBirth:    c.DateOfBirth,
		Ship:           c.Ship,
		GamingDay:      c.GamingDay,
		EmbarkDate:     c.EmbarkDate,
		DebarkDate:     c.DebarkDate,
		CashIn:         c.CashIn,
		CashOut:        c.CashOut,
		FolioNumber:    c.FolioNumber,
		VoyageTotal:    c.VoyageTotal,
		FilingDeadline: c.FilingDeadline(),
		CreatedAt:      c.CreatedAt,
		Files:          pure_utils.Map(c.Files, AdaptCaseFileDto),
		Events:         pure_utils.Map(c.Events, AdaptCaseEventDto),
	}
}

type APICaseEvent struct {
	Id            string     `json:"id"`
	EventType     string     `json:"event_type"`
	MemberId      *string    `json:"member_id,omitempty"`
	NewValue      *string    `json:"new_value,omitempty"`
	PreviousValue *string    `json:"previous_value,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func AdaptCaseEventDto(e models.CaseEvent) APICaseEvent {
	return APICaseEvent{
		Id:            e.Id,
		EventType:     string(e.EventType),
		MemberId:      e.MemberId,
		NewValue:      e.NewValue,
		PreviousValue: e.PreviousValue,
		CreatedAt:     e.CreatedAt,
	}
}

type CaseFiltersQuery struct {
	Kind       string    `form:"kind"`
	Statuses   []string  `form:"status[]"`
	OwnerId    string    `form:"owner_id"`
	Unassigned bool      `form:"unassigned"`
	PsaOnly    bool      `form:"psa"`
	PatronId   string    `form:"patron_id"`
	StartDate  time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate    time.Time `form:"end_date" time_format:"2006-01-02"`
	SortBy     string    `form:"sort_by"`
	Order      string    `form:"order"`
}

func AdaptCaseFilters(q CaseFiltersQuery) (models.CaseFilters, error) {
	filters := models.CaseFilters{
		PsaOnly:        q.PsaOnly,
		UnassignedOnly: q.Unassigned,
		StartDate:      q.StartDate,
		EndDate:        q.EndDate,
	}
	if q.Kind != "" {
		kind, err := models.CaseKindFromString(q.Kind)
		if err != nil {
			return models.CaseFilters{}, err
		}
		filters.Kind = &kind
	}
	if len(q.Statuses) > 0 {
		statuses, err := models.ValidateCaseStatuses(q.Statuses)
		if err != nil {
			return models.CaseFilters{}, err
		}
		filters.Statuses = statuses
	}
	if q.OwnerId != "" {
		filters.OwnerId = &q.OwnerId
	}
	if q.PatronId != "" {
		filters.PatronId = &q.PatronId
	}
	return filters, nil
}

func AdaptCaseSorting(q CaseFiltersQuery) (models.CaseSorting, error) {
	if q.SortBy == "" {
		return models.CaseSorting{}, nil
	}
	field, err := models.ValidateCaseSortField(q.SortBy)
	if err != nil {
		return models.CaseSorting{}, err
	}
	order := models.SortingOrderDesc
	if q.Order != "" {
		order, err = models.ValidateSortingOrder(q.Order)
		if err != nil {
			return models.CaseSorting{}, err
		}
	}
	return models.CaseSorting{Field: field, Order: order}, nil
}

type CaseListingDto struct {
	Cases    []APICase `json:"cases"`
	PsaCases []APICase `json:"psa_cases"`
}

type ArchiveBucketDto struct {
	Label string    `json:"label"`
	Cases []APICase `json:"cases"`
}

func AdaptArchiveBucketDto(bucket models.ArchiveBucket) ArchiveBucketDto {
	return ArchiveBucketDto{
		Label: bucket.Label,
		Cases: pure_utils.Map(bucket.Cases, AdaptCaseDto),
	}
}

type BatchResultDto struct {
	Succeeded []CaseRefDto        `json:"succeeded"`
	Failed    []BatchItemErrorDto `json:"failed"`
}

type CaseRefDto struct {
	Id   string `json:"id"`
	Kind string `json:"kind"`
}

type BatchItemErrorDto struct {
	Id    string `json:"id"`
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

func AdaptBatchResultDto(result models.BatchResult) BatchResultDto {
	dto := BatchResultDto{
		Succeeded: pure_utils.Map(result.Succeeded, func(ref models.CaseRef) CaseRefDto {
			return CaseRefDto{Id: ref.Id, Kind: string(ref.Kind)}
		}),
		Failed: pure_utils.Map(result.Failed, func(item models.BatchItemError) BatchItemErrorDto {
			return BatchItemErrorDto{Id: item.Ref.Id, Kind: string(item.Ref.Kind), Error: item.Error}
		}),
	}
	if dto.Succeeded == nil {
		dto.Succeeded = []CaseRefDto{}
	}
	if dto.Failed == nil {
		dto.Failed = []BatchItemErrorDto{}
	}
	return dto
}

type FileArchiveReportDto struct {
	Archived []string         `json:"archived"`
	Skipped  []SkippedFileDto `json:"skipped"`
}

type SkippedFileDto struct {
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}

func AdaptFileArchiveReportDto(report models.FileArchiveReport) FileArchiveReportDto {
	dto := FileArchiveReportDto{
		Archived: report.Archived,
		Skipped: pure_utils.Map(report.Skipped, func(s models.SkippedFile) SkippedFileDto {
			return SkippedFileDto{FileName: s.FileName, Reason: s.Reason}
		}),
	}
	if dto.Archived == nil {
		dto.Archived = []string{}
	}
	if dto.Skipped == nil {
		dto.Skipped = []SkippedFileDto{}
	}
	return dto
}
