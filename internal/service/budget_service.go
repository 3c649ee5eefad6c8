package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/budget"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// BudgetService handles budget business logic.
type BudgetService struct {
	storage  *storage.Storage
	operator Processor
	now      func() time.Time
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage, op Processor) *BudgetService {
	return &BudgetService{storage: store, operator: op, now: utcNow}
}

// CreateBudget creates a budget for the current month and returns its ID.
func (s *BudgetService) CreateBudget(ctx context.Context, userID, categoryID uuid.UUID, amount decimal.Decimal) (uuid.UUID, error) {
	action := &actions.CreateBudget{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Now:        s.now(),
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// UpdateBudget changes the amount and/or category of one of the user's budgets.
func (s *BudgetService) UpdateBudget(ctx context.Context, userID, budgetID uuid.UUID, changes BudgetChanges) error {
	return s.operator.Process(ctx, &actions.UpdateBudget{
		UserID:     userID,
		BudgetID:   budgetID,
		CategoryID: changes.CategoryID,
		Amount:     changes.Amount,
	})
}

// DeleteBudget removes one of the user's budgets for the current month.
func (s *BudgetService) DeleteBudget(ctx context.Context, userID, budgetID uuid.UUID) error {
	return s.operator.Process(ctx, &actions.DeleteBudget{
		UserID:   userID,
		BudgetID: budgetID,
		Now:      s.now(),
	})
}

// ListBudgets returns the user's budgets starting in window with their spend
// in that window.
func (s *BudgetService) ListBudgets(ctx context.Context, userID uuid.UUID, window budget.Window) ([]Budget, error) {
	period := dateRange(window)
	rows, err := s.storage.Budgets.List(ctx, &sqlconfig.BudgetFilter{
		UserID: userID,
		Period: period,
	})
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}

	budgets := make([]Budget, len(rows))
	for i, row := range rows {
		spent, err := s.storage.Transactions.SumAmounts(ctx, userID, row.CategoryID, period)
		if err != nil {
			return nil, fmt.Errorf("summing transactions for category %s: %w", row.CategoryID, err)
		}
		percentage, _ := budget.Percentage(spent, row.Amount)

		budgets[i] = Budget{
			ID:           row.ID,
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Amount:       row.Amount,
			StartDate:    row.StartDate,
			EndDate:      row.EndDate,
			Spent:        spent,
			Remaining:    row.Amount.Sub(spent),
			Percentage:   percentage,
		}
	}
	return budgets, nil
}

func dateRange(window budget.Window) sqlconfig.DateRange {
	return sqlconfig.DateRange{From: window.Start, Until: window.Until()}
}
