package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// CreateTransaction stores |Amount|. A zero TransactionDate means today.
type CreateTransaction struct {
	UserID          uuid.UUID
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time

	CreatedID uuid.UUID
	IAction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	amount := toStoredAmount(t.Amount.Abs())
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if err := requireCategory(ctx, writer, t.CategoryID); err != nil {
		return err
	}

	id, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		UserID:          t.UserID,
		CategoryID:      t.CategoryID,
		Amount:          amount,
		Description:     t.Description,
		TransactionDate: t.TransactionDate,
	})
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrCategoryNotFound
	}
	if err != nil {
		return err
	}

	t.CreatedID = id
	return nil
}
