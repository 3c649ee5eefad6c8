package service

import "github.com/carson-networks/finance-server/internal/operator/actions"

// Errors returned by the write paths. Callers match them with errors.Is.
var (
	ErrBudgetNotFound        = actions.ErrBudgetNotFound
	ErrBudgetExists          = actions.ErrBudgetExists
	ErrBudgetNotCurrentMonth = actions.ErrBudgetNotCurrentMonth
	ErrCategoryNotFound      = actions.ErrCategoryNotFound
	ErrInvalidAmount         = actions.ErrInvalidAmount
)
