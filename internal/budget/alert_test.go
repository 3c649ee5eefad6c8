package budget

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spend(budgetAmount, spent string) Spend {
	return Spend{
		BudgetID:     uuid.Must(uuid.NewV4()),
		CategoryID:   uuid.Must(uuid.NewV4()),
		CategoryName: "Food",
		BudgetAmount: decimal.RequireFromString(budgetAmount),
		SpentAmount:  decimal.RequireFromString(spent),
	}
}

// -- Evaluate tests --

func TestEvaluate_WarningAtThreshold(t *testing.T) {
	alert := Evaluate(spend("1000000", "850000"))

	require.NotNil(t, alert)
	assert.Equal(t, AlertLevelWarning, alert.Level)
	assert.Equal(t, "85.00", alert.Percentage.StringFixed(2))
	assert.True(t, alert.Remaining.Equal(decimal.NewFromInt(150000)))
	assert.False(t, alert.IsExceeded)
	assert.Equal(t, "Budget for Food is at 85%", alert.Message)
}

func TestEvaluate_CriticalWhenExceeded(t *testing.T) {
	alert := Evaluate(spend("500000", "600000"))

	require.NotNil(t, alert)
	assert.Equal(t, AlertLevelCritical, alert.Level)
	assert.Equal(t, "120.00", alert.Percentage.StringFixed(2))
	assert.True(t, alert.Remaining.Equal(decimal.NewFromInt(-100000)))
	assert.True(t, alert.IsExceeded)
	assert.Equal(t, "Budget for Food has been exceeded by 20%", alert.Message)
}

func TestEvaluate_CriticalAtExactlyHundred(t *testing.T) {
	alert := Evaluate(spend("200", "200"))

	require.NotNil(t, alert)
	assert.Equal(t, AlertLevelCritical, alert.Level)
	assert.True(t, alert.IsExceeded)
	assert.True(t, alert.Remaining.IsZero())
	assert.Equal(t, "Budget for Food has been exceeded by 0%", alert.Message)
}

func TestEvaluate_High(t *testing.T) {
	alert := Evaluate(spend("100", "96.40"))

	require.NotNil(t, alert)
	assert.Equal(t, AlertLevelHigh, alert.Level)
	assert.False(t, alert.IsExceeded)
	assert.Equal(t, "Budget for Food is almost full (96%)", alert.Message)
}

func TestEvaluate_BelowThreshold(t *testing.T) {
	assert.Nil(t, Evaluate(spend("100", "84.99")))
}

func TestEvaluate_NoTransactions(t *testing.T) {
	assert.Nil(t, Evaluate(spend("100", "0")))
}

func TestEvaluate_ZeroBudget(t *testing.T) {
	assert.Nil(t, Evaluate(spend("0", "50")))
}

func TestEvaluate_NegativeSpendTreatedAsMagnitude(t *testing.T) {
	alert := Evaluate(spend("100", "-90"))

	require.NotNil(t, alert)
	assert.True(t, alert.SpentAmount.Equal(decimal.NewFromInt(90)))
	assert.Equal(t, AlertLevelWarning, alert.Level)
}

func TestEvaluate_PercentageRoundedBeforeClassifying(t *testing.T) {
	// 84.996% rounds to 85.00 and is therefore an alert.
	alert := Evaluate(spend("100000", "84996"))

	require.NotNil(t, alert)
	assert.Equal(t, "85.00", alert.Percentage.StringFixed(2))
	assert.Equal(t, AlertLevelWarning, alert.Level)
}

// -- LevelFor tests --

func TestLevelFor_Bands(t *testing.T) {
	cases := []struct {
		pct  string
		want AlertLevel
	}{
		{"0", AlertLevelNormal},
		{"84.99", AlertLevelNormal},
		{"85", AlertLevelWarning},
		{"94.99", AlertLevelWarning},
		{"95", AlertLevelHigh},
		{"99.99", AlertLevelHigh},
		{"100", AlertLevelCritical},
		{"350", AlertLevelCritical},
	}
	for _, tc := range cases {
		t.Run(tc.pct, func(t *testing.T) {
			assert.Equal(t, tc.want, LevelFor(decimal.RequireFromString(tc.pct)))
		})
	}
}

// -- Percentage tests --

func TestPercentage_RoundsToTwoPlaces(t *testing.T) {
	pct, ok := Percentage(decimal.NewFromInt(1), decimal.NewFromInt(3))

	assert.True(t, ok)
	assert.Equal(t, "33.33", pct.StringFixed(2))
}

func TestPercentage_NonPositiveAmount(t *testing.T) {
	_, ok := Percentage(decimal.NewFromInt(1), decimal.Zero)
	assert.False(t, ok)

	_, ok = Percentage(decimal.NewFromInt(1), decimal.NewFromInt(-5))
	assert.False(t, ok)
}
