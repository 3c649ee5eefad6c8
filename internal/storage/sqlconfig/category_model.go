package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a category record.
type Category struct {
	ID           uuid.UUID    `db:"id"`
	CategoryName string       `db:"category_name"`
	Type         CategoryType `db:"type"`
	CreatedAt    time.Time    `db:"created_at"`
}

// ICategoryTable defines the interface for category storage operations.
//
//go:generate mockery --name ICategoryTable --output mock_ICategoryTable.go
type ICategoryTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindByName(ctx context.Context, name string, categoryType CategoryType) (*Category, error)
	List(ctx context.Context, categoryType *CategoryType) ([]*Category, error)
}
