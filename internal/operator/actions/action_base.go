package actions

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

var (
	ErrBudgetNotFound        = errors.New("budget not found")
	ErrBudgetExists          = errors.New("a budget for this category already exists this month")
	ErrBudgetNotCurrentMonth = errors.New("only budgets for the current month can be deleted")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrInvalidAmount         = errors.New("invalid amount")
)

// amountPlaces matches the NUMERIC(15,2) money columns.
const amountPlaces = 2

// toStoredAmount rounds d to what the money columns hold.
func toStoredAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(amountPlaces)
}
