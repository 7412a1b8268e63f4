package eligibility

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func input(income, debt, savings, status string) Input {
	return Input{
		Income:           decimal.RequireFromString(income),
		Debt:             decimal.RequireFromString(debt),
		Savings:          decimal.RequireFromString(savings),
		EmploymentStatus: status,
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		in        Input
		wantScore int
		wantTier  Tier
		wantLinks bool
	}{
		{
			name:      "low debt and high savings while employed",
			in:        input("3000", "600", "900", "employed"),
			wantScore: 55,
			wantTier:  TierLargeLoans,
			wantLinks: true,
		},
		{
			name:      "heavy debt while unemployed",
			in:        input("2000", "1200", "100", "unemployed"),
			wantScore: 15,
			wantTier:  TierNotEligible,
		},
		{
			name:      "strong profile qualifies for large loans",
			in:        input("3000", "500", "1000", "employed"),
			wantScore: 55,
			wantTier:  TierLargeLoans,
			wantLinks: true,
		},
		{
			name:      "weak profile is not eligible",
			in:        input("1000", "800", "50", "unemployed"),
			wantScore: 10,
			wantTier:  TierNotEligible,
		},
		{
			name:      "minimum points without employment",
			in:        input("1000", "600", "0", "student"),
			wantScore: 10,
			wantTier:  TierNotEligible,
		},
		{
			name:      "self-employed mid profile gets micro-loans",
			in:        input("2000", "800", "300", "self-employed"),
			wantScore: 35,
			wantTier:  TierMicroLoans,
			wantLinks: true,
		},
		{
			name:      "exactly forty is large loans",
			in:        input("2000", "500", "300", "self-employed"),
			wantScore: 40,
			wantTier:  TierLargeLoans,
			wantLinks: true,
		},
		{
			name:      "exactly thirty is micro-loans",
			in:        input("1000", "400", "150", "self-employed"),
			wantScore: 30,
			wantTier:  TierMicroLoans,
			wantLinks: true,
		},
		{
			name:      "zero debt and savings",
			in:        input("1500", "0", "0", "employed"),
			wantScore: 35,
			wantTier:  TierMicroLoans,
			wantLinks: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantTier, got.Tier)
			assert.NotEmpty(t, got.Recommendation)
			if tt.wantLinks {
				assert.Len(t, got.Links, 5)
			} else {
				assert.Empty(t, got.Links)
			}
		})
	}
}

func TestScore_Boundaries(t *testing.T) {
	t.Run("income thresholds are strict", func(t *testing.T) {
		assert.Equal(t, 10, incomePoints(decimal.NewFromInt(2500)))
		assert.Equal(t, 15, incomePoints(decimal.RequireFromString("2500.001")))
		assert.Equal(t, 5, incomePoints(decimal.NewFromInt(1800)))
	})

	t.Run("debt ratio thresholds are strict", func(t *testing.T) {
		assert.Equal(t, 10, debtPoints(decimal.RequireFromString("0.3")))
		assert.Equal(t, 0, debtPoints(decimal.RequireFromString("0.5")))
		assert.Equal(t, 15, debtPoints(decimal.RequireFromString("0.299")))
	})

	t.Run("savings ratio thresholds are strict", func(t *testing.T) {
		assert.Equal(t, 10, savingsPoints(decimal.RequireFromString("0.2")))
		assert.Equal(t, 5, savingsPoints(decimal.RequireFromString("0.1")))
	})

	t.Run("employment status is matched exactly", func(t *testing.T) {
		assert.Equal(t, 10, employmentPoints("employed"))
		assert.Equal(t, 5, employmentPoints("self-employed"))
		assert.Equal(t, 0, employmentPoints("Employed"))
	})
}

func TestScore_LinksAreCopies(t *testing.T) {
	first, err := Score(input("3000", "0", "1000", "employed"))
	require.NoError(t, err)
	first.Links[0].URL = "https://example.invalid"

	second, err := Score(input("3000", "0", "1000", "employed"))
	require.NoError(t, err)
	assert.Equal(t, "https://www.bh.com.tn/cr%C3%A9dit-am%C3%A9nagement", second.Links[0].URL)
}

func TestScore_Validation(t *testing.T) {
	t.Run("zero income is rejected", func(t *testing.T) {
		_, err := Score(input("0", "100", "100", "employed"))

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "income", verr.Fields[0].Field)
	})

	t.Run("all violations are reported", func(t *testing.T) {
		_, err := Score(input("-5", "-1", "-1", "employed"))

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		fields := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, f.Field)
		}
		assert.Equal(t, []string{"income", "debt", "savings"}, fields)
		assert.Contains(t, err.Error(), "debt: must not be negative")
	})
}
