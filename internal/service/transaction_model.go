package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time
	CreatedAt       time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// CategorySummary is the total of one category over a month.
type CategorySummary struct {
	CategoryID   uuid.UUID
	CategoryName string
	Type         CategoryType
	Total        decimal.Decimal
}

// MonthlySummary totals a user's transactions over a month.
type MonthlySummary struct {
	Start        time.Time
	End          time.Time
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
	Categories   []CategorySummary
}
