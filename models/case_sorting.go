package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortingOrder string

const (
	SortingOrderAsc  SortingOrder = "ASC"
	SortingOrderDesc SortingOrder = "DESC"
)

type CaseSortField string

const (
	CasesSortingGamingDay   CaseSortField = "gaming_day"
	CasesSortingCashIn      CaseSortField = "cash_in"
	CasesSortingCashOut     CaseSortField = "cash_out"
	CasesSortingName        CaseSortField = "name"
	CasesSortingStatus      CaseSortField = "status"
	CasesSortingShip        CaseSortField = "ship"
	CasesSortingOwner       CaseSortField = "owner"
	CasesSortingFolioNumber CaseSortField = "folio_number"
	CasesSortingVoyageTotal CaseSortField = "voyage_total"
)

var ValidCaseSortFields = []CaseSortField{
	CasesSortingGamingDay, CasesSortingCashIn, CasesSortingCashOut,
	CasesSortingName, CasesSortingStatus, CasesSortingShip,
	CasesSortingOwner, CasesSortingFolioNumber, CasesSortingVoyageTotal,
}

func ValidateCaseSortField(s string) (CaseSortField, error) {
	field := CaseSortField(s)
	if !slices.Contains(ValidCaseSortFields, field) {
		return "", fmt.Errorf("unknown sort field %q: %w", s, BadParameterError)
	}
	return field, nil
}

func ValidateSortingOrder(s string) (SortingOrder, error) {
	order := SortingOrder(strings.ToUpper(s))
	if order != SortingOrderAsc && order != SortingOrderDesc {
		return "", fmt.Errorf("unknown sorting order %q: %w", s, BadParameterError)
	}
	return order, nil
}

// CaseSorting holds the single active sort key of a case list view.
type CaseSorting struct {
	Field CaseSortField
	Order SortingOrder
}

// Toggle applies the list-header click semantics: clicking a new key
// replaces the active one and starts descending, clicking the active key
// flips the order.
func (s CaseSorting) Toggle(field CaseSortField) CaseSorting {
	if s.Field == field {
		order := SortingOrderAsc
		if s.Order == SortingOrderAsc {
			order = SortingOrderDesc
		}
		return CaseSorting{Field: field, Order: order}
	}
	return CaseSorting{Field: field, Order: SortingOrderDesc}
}

// OwnerNameResolver maps a team member id to a display name for sorting by
// owner. Unknown or nil owners sort as the empty string.
type OwnerNameResolver func(memberId string) string

// SortCases sorts in place by the active sort key. Date fields compare by
// elapsed time since epoch with nil as zero, money fields compare
// numerically with nil as zero, text fields compare case-insensitively with
// locale-aware collation and nil as the empty string.
func SortCases(cases []Case, sorting CaseSorting, ownerName OwnerNameResolver) {
	coll := collate.New(language.English, collate.IgnoreCase)

	cmp := func(a, b Case) int {
		switch sorting.Field {
		case CasesSortingGamingDay:
			return compareTimes(a.GamingDay, b.GamingDay)
		case CasesSortingCashIn:
			return compareMoney(a.CashIn, b.CashIn)
		case CasesSortingCashOut:
			return compareMoney(a.CashOut, b.CashOut)
		case CasesSortingVoyageTotal:
			return compareMoney(a.VoyageTotal, b.VoyageTotal)
		case CasesSortingName:
			return coll.CompareString(textOrEmpty(a.PatronName), textOrEmpty(b.PatronName))
		case CasesSortingStatus:
			return coll.CompareString(string(a.Status), string(b.Status))
		case CasesSortingShip:
			return coll.CompareString(textOrEmpty(a.Ship), textOrEmpty(b.Ship))
		case CasesSortingFolioNumber:
			return coll.CompareString(textOrEmpty(a.FolioNumber), textOrEmpty(b.FolioNumber))
		case CasesSortingOwner:
			return coll.CompareString(resolveOwner(a, ownerName), resolveOwner(b, ownerName))
		default:
			return 0
		}
	}

	slices.SortStableFunc(cases, func(a, b Case) int {
		if sorting.Order == SortingOrderDesc {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
}

// SortCasesByGamingDayDesc is the fixed ordering of archive buckets.
func SortCasesByGamingDayDesc(cases []Case) {
	slices.SortStableFunc(cases, func(a, b Case) int {
		return compareTimes(b.GamingDay, a.GamingDay)
	})
}

func compareTimes(a, b *time.Time) int {
	am, bm := int64(0), int64(0)
	if a != nil {
		am = a.UnixMilli()
	}
	if b != nil {
		bm = b.UnixMilli()
	}
	switch {
	case am < bm:
		return -1
	case am > bm:
		return 1
	default:
		return 0
	}
}

func compareMoney(a, b *float64) int {
	av, bv := 0.0, 0.0
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

func textOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func resolveOwner(c Case, ownerName OwnerNameResolver) string {
	if c.CurrentOwner == nil || ownerName == nil {
		return ""
	}
	return ownerName(*c.CurrentOwner)
}
