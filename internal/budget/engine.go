package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget is the slice of a stored budget the engine needs.
type Budget struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	Amount       decimal.Decimal
	StartDate    time.Time
	EndDate      time.Time
}

// Repository is the persistence boundary of the engine.
type Repository interface {
	// FindBudgets returns the user's budgets starting inside window. A nil
	// categoryID returns every category.
	FindBudgets(ctx context.Context, userID uuid.UUID, window Window, categoryID *uuid.UUID) ([]Budget, error)
	// SumTransactionAmounts returns the sum of |amount| for the user's
	// transactions in the category inside window.
	SumTransactionAmounts(ctx context.Context, userID, categoryID uuid.UUID, window Window) (decimal.Decimal, error)
}

// Engine computes budget alerts for a user and month.
type Engine struct {
	repo Repository
}

func NewEngine(repo Repository) *Engine {
	return &Engine{repo: repo}
}

// Alerts returns an alert for every budget at or above the alert threshold,
// in the order the repository returned the budgets.
func (e *Engine) Alerts(ctx context.Context, userID uuid.UUID, window Window, categoryID *uuid.UUID) ([]Alert, error) {
	budgets, err := e.repo.FindBudgets(ctx, userID, window, categoryID)
	if err != nil {
		return nil, fmt.Errorf("finding budgets: %w", err)
	}

	alerts := make([]Alert, 0, len(budgets))
	for _, b := range budgets {
		if !b.Amount.IsPositive() {
			continue
		}

		spent, err := e.repo.SumTransactionAmounts(ctx, userID, b.CategoryID, window)
		if err != nil {
			return nil, fmt.Errorf("summing transactions for category %s: %w", b.CategoryID, err)
		}

		alert := Evaluate(Spend{
			BudgetID:     b.ID,
			CategoryID:   b.CategoryID,
			CategoryName: b.CategoryName,
			BudgetAmount: b.Amount,
			SpentAmount:  spent,
		})
		if alert != nil {
			alerts = append(alerts, *alert)
		}
	}
	return alerts, nil
}

// CheckCategory returns the alert for one category, or nil when it has none.
func (e *Engine) CheckCategory(ctx context.Context, userID, categoryID uuid.UUID, window Window) (*Alert, error) {
	alerts, err := e.Alerts(ctx, userID, window, &categoryID)
	if err != nil {
		return nil, err
	}
	if len(alerts) == 0 {
		return nil, nil
	}
	return &alerts[0], nil
}

// Count returns the number of alerts for the user in window.
func (e *Engine) Count(ctx context.Context, userID uuid.UUID, window Window) (int, error) {
	alerts, err := e.Alerts(ctx, userID, window, nil)
	if err != nil {
		return 0, err
	}
	return len(alerts), nil
}
