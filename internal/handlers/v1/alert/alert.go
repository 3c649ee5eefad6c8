package alert

import "github.com/carson-networks/finance-server/internal/budget"

// Alert is the API response model for a budget alert.
type Alert struct {
	BudgetID     string `json:"budgetID" doc:"Budget UUID"`
	CategoryID   string `json:"categoryID" doc:"Category UUID"`
	CategoryName string `json:"categoryName" doc:"Category name"`
	BudgetAmount string `json:"budgetAmount" doc:"Decimal budget amount"`
	SpentAmount  string `json:"spentAmount" doc:"Decimal amount spent in the month"`
	Percentage   string `json:"percentage" doc:"Spent as a percentage of the budget, two decimals"`
	Remaining    string `json:"remaining" doc:"Decimal amount left, negative when exceeded"`
	IsExceeded   bool   `json:"isExceeded" doc:"True once spend reaches the budget"`
	AlertLevel   string `json:"alertLevel" enum:"warning,high,critical" doc:"Severity of the alert"`
	Message      string `json:"message" doc:"Human readable description"`
}

func fromBudgetAlert(a budget.Alert) Alert {
	return Alert{
		BudgetID:     a.BudgetID.String(),
		CategoryID:   a.CategoryID.String(),
		CategoryName: a.CategoryName,
		BudgetAmount: a.BudgetAmount.String(),
		SpentAmount:  a.SpentAmount.String(),
		Percentage:   a.Percentage.StringFixed(2),
		Remaining:    a.Remaining.String(),
		IsExceeded:   a.IsExceeded,
		AlertLevel:   string(a.Level),
		Message:      a.Message,
	}
}
