package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/budget"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// AlertService reports budgets that are close to or over their limit.
type AlertService struct {
	engine *budget.Engine
}

// NewAlertService creates a new AlertService reading through store.
func NewAlertService(store *storage.Storage) *AlertService {
	return &AlertService{engine: budget.NewEngine(&alertRepository{storage: store})}
}

// GetAlerts returns the user's budget alerts for window, optionally limited
// to one category.
func (s *AlertService) GetAlerts(ctx context.Context, userID uuid.UUID, window budget.Window, categoryID *uuid.UUID) ([]budget.Alert, error) {
	return s.engine.Alerts(ctx, userID, window, categoryID)
}

// CheckCategoryBudget returns the alert for one category, or nil.
func (s *AlertService) CheckCategoryBudget(ctx context.Context, userID, categoryID uuid.UUID, window budget.Window) (*budget.Alert, error) {
	return s.engine.CheckCategory(ctx, userID, categoryID, window)
}

// GetAlertCount returns how many of the user's budgets raise an alert in window.
func (s *AlertService) GetAlertCount(ctx context.Context, userID uuid.UUID, window budget.Window) (int, error) {
	return s.engine.Count(ctx, userID, window)
}

// alertRepository adapts the storage tables to budget.Repository.
type alertRepository struct {
	storage *storage.Storage
}

func (r *alertRepository) FindBudgets(ctx context.Context, userID uuid.UUID, window budget.Window, categoryID *uuid.UUID) ([]budget.Budget, error) {
	rows, err := r.storage.Budgets.List(ctx, &sqlconfig.BudgetFilter{
		UserID:     userID,
		Period:     dateRange(window),
		CategoryID: categoryID,
	})
	if err != nil {
		return nil, err
	}

	budgets := make([]budget.Budget, len(rows))
	for i, row := range rows {
		budgets[i] = budget.Budget{
			ID:           row.ID,
			UserID:       row.UserID,
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Amount:       row.Amount,
			StartDate:    row.StartDate,
			EndDate:      row.EndDate,
		}
	}
	return budgets, nil
}

func (r *alertRepository) SumTransactionAmounts(ctx context.Context, userID, categoryID uuid.UUID, window budget.Window) (decimal.Decimal, error) {
	return r.storage.Transactions.SumAmounts(ctx, userID, categoryID, dateRange(window))
}
