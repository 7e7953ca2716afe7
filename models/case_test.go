package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCaseStatusCanTransition(t *testing.T) {
	allowed := map[CaseStatus][]CaseStatus{
		CaseStatusNew:         {CaseStatusAssigned},
		CaseStatusAssigned:    {CaseStatusUnderReview, CaseStatusNew},
		CaseStatusUnderReview: {CaseStatusAssigned, CaseStatusSubmitted},
		CaseStatusSubmitted:   {CaseStatusApproved, CaseStatusUnderReview},
		CaseStatusApproved:    {},
	}

	for _, from := range ValidCaseStatuses {
		for _, to := range ValidCaseStatuses {
			expected := false
			for _, s := range allowed[from] {
				if s == to {
					expected = true
				}
			}
			assert.Equal(t, expected, from.CanTransition(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestCaseStatusRejectAndWithdrawBothLandOnUnderReview(t *testing.T) {
	// a rejected or withdrawn submission goes back to the reviewer, not to
	// the unassigned pile
	assert.True(t, CaseStatusSubmitted.CanTransition(CaseStatusUnderReview))
	assert.False(t, CaseStatusSubmitted.CanTransition(CaseStatusAssigned))
	assert.False(t, CaseStatusSubmitted.CanTransition(CaseStatusNew))
}

func TestCaseStatusApprovedIsTerminal(t *testing.T) {
	assert.True(t, CaseStatusApproved.IsFinalized())
	for _, to := range ValidCaseStatuses {
		assert.False(t, CaseStatusApproved.CanTransition(to))
	}
}

func TestCaseIsPsa(t *testing.T) {
	t.Run("no recommendation", func(t *testing.T) {
		assert.False(t, Case{}.IsPsa())
	})

	t.Run("recommendation without marker", func(t *testing.T) {
		rec := "File CTR"
		assert.False(t, Case{Recommendation: &rec}.IsPsa())
	})

	t.Run("marker anywhere in the recommendation", func(t *testing.T) {
		rec := "File CTR and PSA"
		assert.True(t, Case{Recommendation: &rec}.IsPsa())
	})
}

func TestCaseFilingDeadline(t *testing.T) {
	t.Run("no gaming day", func(t *testing.T) {
		assert.Nil(t, Case{}.FilingDeadline())
	})

	t.Run("fifteen days after the gaming day", func(t *testing.T) {
		gamingDay := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		c := Case{GamingDay: &gamingDay}
		deadline := c.FilingDeadline()
		assert.NotNil(t, deadline)
		assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), *deadline)
	})
}

func TestCaseKindFromString(t *testing.T) {
	kind, err := CaseKindFromString("ctr")
	assert.NoError(t, err)
	assert.Equal(t, CaseKindCtr, kind)

	kind, err = CaseKindFromString("form_8300")
	assert.NoError(t, err)
	assert.Equal(t, CaseKindForm8300, kind)

	_, err = CaseKindFromString("sar")
	assert.ErrorIs(t, err, BadParameterError)
}

func TestValidateCaseStatuses(t *testing.T) {
	statuses, err := ValidateCaseStatuses([]string{"New", "Under Review"})
	assert.NoError(t, err)
	assert.Equal(t, []CaseStatus{CaseStatusNew, CaseStatusUnderReview}, statuses)

	_, err = ValidateCaseStatuses([]string{"New", "Closed"})
	assert.ErrorIs(t, err, BadParameterError)
}
