package budget

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// AlertLevel classifies how close a budget is to being spent.
type AlertLevel string

const (
	AlertLevelNormal   AlertLevel = "normal"
	AlertLevelWarning  AlertLevel = "warning"
	AlertLevelHigh     AlertLevel = "high"
	AlertLevelCritical AlertLevel = "critical"
)

var (
	// AlertThreshold is the spend percentage at which a budget raises an alert.
	AlertThreshold = decimal.NewFromInt(85)

	highThreshold     = decimal.NewFromInt(95)
	criticalThreshold = decimal.NewFromInt(100)
	hundred           = decimal.NewFromInt(100)
)

// Spend is one budget together with what was spent against it in the window.
type Spend struct {
	BudgetID     uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	BudgetAmount decimal.Decimal
	SpentAmount  decimal.Decimal
}

// Alert is a derived, never persisted, view of a budget over its threshold.
type Alert struct {
	BudgetID     uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	BudgetAmount decimal.Decimal
	SpentAmount  decimal.Decimal
	Percentage   decimal.Decimal
	Remaining    decimal.Decimal
	IsExceeded   bool
	Level        AlertLevel
	Message      string
}

// Percentage returns spent/amount*100 rounded to two places. ok is false
// when amount is not positive.
func Percentage(spent, amount decimal.Decimal) (pct decimal.Decimal, ok bool) {
	if !amount.IsPositive() {
		return decimal.Zero, false
	}
	return spent.Div(amount).Mul(hundred).Round(2), true
}

// LevelFor maps a percentage onto its alert level. Each band includes its
// lower bound.
func LevelFor(pct decimal.Decimal) AlertLevel {
	switch {
	case pct.GreaterThanOrEqual(criticalThreshold):
		return AlertLevelCritical
	case pct.GreaterThanOrEqual(highThreshold):
		return AlertLevelHigh
	case pct.GreaterThanOrEqual(AlertThreshold):
		return AlertLevelWarning
	default:
		return AlertLevelNormal
	}
}

// Evaluate returns the alert for s, or nil when the budget is below the
// alert threshold or has no positive amount.
func Evaluate(s Spend) *Alert {
	spent := s.SpentAmount.Abs()

	pct, ok := Percentage(spent, s.BudgetAmount)
	if !ok || pct.LessThan(AlertThreshold) {
		return nil
	}

	level := LevelFor(pct)
	return &Alert{
		BudgetID:     s.BudgetID,
		CategoryID:   s.CategoryID,
		CategoryName: s.CategoryName,
		BudgetAmount: s.BudgetAmount,
		SpentAmount:  spent,
		Percentage:   pct,
		Remaining:    s.BudgetAmount.Sub(spent),
		IsExceeded:   pct.GreaterThanOrEqual(criticalThreshold),
		Level:        level,
		Message:      alertMessage(level, s.CategoryName, pct),
	}
}

func alertMessage(level AlertLevel, categoryName string, pct decimal.Decimal) string {
	switch level {
	case AlertLevelCritical:
		over := pct.Sub(hundred).Round(0)
		return fmt.Sprintf("Budget for %s has been exceeded by %s%%", categoryName, over.String())
	case AlertLevelHigh:
		return fmt.Sprintf("Budget for %s is almost full (%s%%)", categoryName, pct.Round(0).String())
	default:
		return fmt.Sprintf("Budget for %s is at %s%%", categoryName, pct.Round(0).String())
	}
}
