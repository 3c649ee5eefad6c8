package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/budget"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// CreateBudget creates a budget for the month containing Now. CreatedID is
// set once Perform succeeds.
type CreateBudget struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Now        time.Time

	CreatedID uuid.UUID
	IAction
}

func (c *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	amount := toStoredAmount(c.Amount)
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if err := requireCategory(ctx, writer, c.CategoryID); err != nil {
		return err
	}

	month := budget.MonthOf(c.Now)
	id, err := writer.Budgets.Insert(ctx, &sqlconfig.BudgetCreate{
		UserID:     c.UserID,
		CategoryID: c.CategoryID,
		Amount:     amount,
		StartDate:  month.Start,
		EndDate:    month.LastDay(),
	})
	if errors.Is(err, sqlconfig.ErrConflict) {
		return ErrBudgetExists
	}
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}

func requireCategory(ctx context.Context, writer *storage.Writer, categoryID uuid.UUID) error {
	_, err := writer.Categories.FindByID(ctx, categoryID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrCategoryNotFound
	}
	return err
}

// ownedBudget loads the budget and hides budgets of other users behind
// ErrBudgetNotFound.
func ownedBudget(ctx context.Context, writer *storage.Writer, userID, budgetID uuid.UUID) (*sqlconfig.Budget, error) {
	b, err := writer.Budgets.FindByID(ctx, budgetID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrBudgetNotFound
	}
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrBudgetNotFound
	}
	return b, nil
}
