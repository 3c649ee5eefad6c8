package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a budget record joined with its category name.
type Budget struct {
	ID           uuid.UUID       `db:"id"`
	UserID       uuid.UUID       `db:"user_id"`
	CategoryID   uuid.UUID       `db:"category_id"`
	CategoryName string          `db:"category_name"`
	Amount       decimal.Decimal `db:"amount"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	CreatedAt    time.Time       `db:"created_at"`
}

// BudgetCreate is the input for creating a new budget.
type BudgetCreate struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
}

// BudgetUpdate holds the columns to change. Unset fields are left alone.
type BudgetUpdate struct {
	CategoryID omit.Val[uuid.UUID]
	Amount     omit.Val[decimal.Decimal]
}

// BudgetFilter selects a user's budgets whose start date is inside Period.
type BudgetFilter struct {
	UserID     uuid.UUID
	Period     DateRange
	CategoryID *uuid.UUID
}

// IBudgetTable defines the interface for budget storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name IBudgetTable --output mock_IBudgetTable.go
type IBudgetTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Budget, error)
	List(ctx context.Context, filter *BudgetFilter) ([]*Budget, error)
	// Insert returns ErrConflict when the user already has a budget for the
	// category starting on the same date.
	Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *BudgetUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
