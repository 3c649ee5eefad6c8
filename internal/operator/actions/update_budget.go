package actions

import (
	"context"
	"errors"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type UpdateBudget struct {
	UserID     uuid.UUID
	BudgetID   uuid.UUID
	CategoryID omit.Val[uuid.UUID]
	Amount     omit.Val[decimal.Decimal]
	IAction
}

func (u *UpdateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := ownedBudget(ctx, writer, u.UserID, u.BudgetID); err != nil {
		return err
	}

	amount := u.Amount
	if v, ok := u.Amount.Get(); ok {
		v = toStoredAmount(v)
		if v.IsNegative() {
			return ErrInvalidAmount
		}
		amount = omit.From(v)
	}
	if categoryID, ok := u.CategoryID.Get(); ok {
		if err := requireCategory(ctx, writer, categoryID); err != nil {
			return err
		}
	}

	err := writer.Budgets.Update(ctx, u.BudgetID, &sqlconfig.BudgetUpdate{
		CategoryID: u.CategoryID,
		Amount:     amount,
	})
	switch {
	case errors.Is(err, sqlconfig.ErrConflict):
		return ErrBudgetExists
	case errors.Is(err, sqlconfig.ErrNotFound):
		return ErrBudgetNotFound
	}
	return err
}
