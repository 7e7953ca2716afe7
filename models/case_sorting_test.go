package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCaseSortingToggle(t *testing.T) {
	t.Run("clicking a new key starts descending", func(t *testing.T) {
		s := CaseSorting{Field: CasesSortingGamingDay, Order: SortingOrderDesc}
		next := s.Toggle(CasesSortingCashIn)
		assert.Equal(t, CaseSorting{Field: CasesSortingCashIn, Order: SortingOrderDesc}, next)
	})

	t.Run("clicking the active key flips the order", func(t *testing.T) {
		s := CaseSorting{Field: CasesSortingCashIn, Order: SortingOrderDesc}
		next := s.Toggle(CasesSortingCashIn)
		assert.Equal(t, SortingOrderAsc, next.Order)

		next = next.Toggle(CasesSortingCashIn)
		assert.Equal(t, SortingOrderDesc, next.Order)
	})
}

func ptrTime(t time.Time) *time.Time { return &t }

func ptrFloat(f float64) *float64 { return &f }

func ptrStr(s string) *string { return &s }

func TestSortCasesByGamingDay(t *testing.T) {
	d1 := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	cases := []Case{
		{Id: "a", GamingDay: ptrTime(d1)},
		{Id: "b"},
		{Id: "c", GamingDay: ptrTime(d2)},
	}

	SortCases(cases, CaseSorting{Field: CasesSortingGamingDay, Order: SortingOrderAsc}, nil)
	// nil gaming days compare as the epoch and come first ascending
	assert.Equal(t, []string{"b", "a", "c"}, ids(cases))

	SortCases(cases, CaseSorting{Field: CasesSortingGamingDay, Order: SortingOrderDesc}, nil)
	assert.Equal(t, []string{"c", "a", "b"}, ids(cases))
}

func TestSortCasesByMoney(t *testing.T) {
	cases := []Case{
		{Id: "a", CashIn: ptrFloat(1200.50)},
		{Id: "b"},
		{Id: "c", CashIn: ptrFloat(15000)},
	}

	SortCases(cases, CaseSorting{Field: CasesSortingCashIn, Order: SortingOrderDesc}, nil)
	assert.Equal(t, []string{"c", "a", "b"}, ids(cases))
}

func TestSortCasesByPatronNameIgnoresCase(t *testing.T) {
	cases := []Case{
		{Id: "a", PatronName: ptrStr("zimmer, Hans")},
		{Id: "b", PatronName: ptrStr("Abel, Nadia")},
		{Id: "c"},
	}

	SortCases(cases, CaseSorting{Field: CasesSortingName, Order: SortingOrderAsc}, nil)
	assert.Equal(t, []string{"c", "b", "a"}, ids(cases))
}

func TestSortCasesByOwnerUsesDisplayNames(t *testing.T) {
	names := map[string]string{
		"m1": "Walters, Zoe",
		"m2": "Adeyemi, Bola",
	}
	resolver := func(memberId string) string { return names[memberId] }

	cases := []Case{
		{Id: "a", CurrentOwner: ptrStr("m1")},
		{Id: "b", CurrentOwner: ptrStr("m2")},
		{Id: "c"},
	}

	SortCases(cases, CaseSorting{Field: CasesSortingOwner, Order: SortingOrderAsc}, resolver)
	// the unowned case resolves to the empty string and sorts first
	assert.Equal(t, []string{"c", "b", "a"}, ids(cases))
}

func TestSortCasesIsStable(t *testing.T) {
	cases := []Case{
		{Id: "a", Status: CaseStatusNew},
		{Id: "b", Status: CaseStatusNew},
		{Id: "c", Status: CaseStatusNew},
	}

	SortCases(cases, CaseSorting{Field: CasesSortingStatus, Order: SortingOrderAsc}, nil)
	assert.Equal(t, []string{"a", "b", "c"}, ids(cases))
}

func TestValidateSortingOrder(t *testing.T) {
	order, err := ValidateSortingOrder("asc")
	assert.NoError(t, err)
	assert.Equal(t, SortingOrderAsc, order)

	_, err = ValidateSortingOrder("sideways")
	assert.ErrorIs(t, err, BadParameterError)
}

func ids(cases []Case) []string {
	out := make([]string, len(cases))
	for i, c := range cases {
		out[i] = c.Id
	}
	return out
}
