package receipt

import "github.com/carson-networks/finance-server/internal/service"

// RawReceipt is the OCR output a client submits.
type RawReceipt struct {
	Date        string `json:"date,omitempty" maxLength:"64" doc:"Date as read from the receipt, any common format"`
	Amount      string `json:"amount" maxLength:"64" doc:"Total as read from the receipt, currency symbols allowed"`
	Description string `json:"description,omitempty" maxLength:"255" doc:"Merchant or description"`
	Category    string `json:"category,omitempty" maxLength:"64" doc:"Expense category name, used when categoryID is absent"`
}

// NormalizedReceipt is the canonical form of a receipt.
type NormalizedReceipt struct {
	Date        string   `json:"date" doc:"YYYY-MM-DD, empty when the date could not be parsed"`
	Amount      string   `json:"amount" doc:"Canonical decimal, empty when the amount could not be parsed"`
	Description string   `json:"description" doc:"Trimmed description"`
	Warnings    []string `json:"warnings,omitempty" doc:"Fields that could not be normalized"`
}

func (r RawReceipt) toService() service.RawReceipt {
	return service.RawReceipt{
		Date:        r.Date,
		Amount:      r.Amount,
		Description: r.Description,
		Category:    r.Category,
	}
}

func fromService(n service.NormalizedReceipt) NormalizedReceipt {
	return NormalizedReceipt{
		Date:        n.Date,
		Amount:      n.Amount,
		Description: n.Description,
		Warnings:    n.Warnings,
	}
}
