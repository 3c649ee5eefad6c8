package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget is a stored budget together with what was spent against it.
type Budget struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	Amount       decimal.Decimal
	StartDate    time.Time
	EndDate      time.Time
	Spent        decimal.Decimal
	Remaining    decimal.Decimal
	// Percentage is zero for budgets with a non-positive amount.
	Percentage decimal.Decimal
}

// BudgetChanges holds the fields of a budget update; unset fields are kept.
type BudgetChanges struct {
	CategoryID omit.Val[uuid.UUID]
	Amount     omit.Val[decimal.Decimal]
}
