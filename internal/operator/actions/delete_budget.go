package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/budget"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// DeleteBudget removes a budget that starts in the month containing Now.
type DeleteBudget struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
	Now      time.Time
	IAction
}

func (d *DeleteBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	b, err := ownedBudget(ctx, writer, d.UserID, d.BudgetID)
	if err != nil {
		return err
	}
	if !budget.MonthOf(d.Now).Contains(b.StartDate) {
		return ErrBudgetNotCurrentMonth
	}

	err = writer.Budgets.Delete(ctx, d.BudgetID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrBudgetNotFound
	}
	return err
}
