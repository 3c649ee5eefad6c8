package service

import "github.com/gofrs/uuid/v5"

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Valid reports whether t is one of the known category types.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category represents a category in the service layer.
type Category struct {
	ID   uuid.UUID
	Name string
	Type CategoryType
}
