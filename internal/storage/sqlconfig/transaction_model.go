package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record. Amount is always stored as a
// non-negative magnitude; the category type says whether it is income or expense.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	CategoryID      uuid.UUID       `db:"category_id"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID          uuid.UUID
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time // defaults to today if zero
}

// TransactionFilter specifies filters for listing a user's transactions.
type TransactionFilter struct {
	UserID          uuid.UUID
	CategoryID      *uuid.UUID
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// CategoryTotal is the summed amount of one category over a period.
type CategoryTotal struct {
	CategoryID   uuid.UUID       `db:"category_id"`
	CategoryName string          `db:"category_name"`
	Type         CategoryType    `db:"type"`
	Total        decimal.Decimal `db:"total"`
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	// SumAmounts returns the sum of |amount| for the user's transactions in
	// the category with a transaction date inside period.
	SumAmounts(ctx context.Context, userID, categoryID uuid.UUID, period DateRange) (decimal.Decimal, error)
	// SumByCategory returns one total per category the user has
	// transactions in during period, largest first.
	SumByCategory(ctx context.Context, userID uuid.UUID, period DateRange) ([]*CategoryTotal, error)
}
