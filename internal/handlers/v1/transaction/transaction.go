package transaction

import (
	"time"

	"github.com/carson-networks/finance-server/internal/service"
)

// Transaction is a stored transaction as the API returns it.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	CategoryID      string `json:"categoryID" doc:"Category UUID"`
	Amount          string `json:"amount" doc:"Decimal amount, always positive"`
	Description     string `json:"description" doc:"Description of the transaction"`
	TransactionDate string `json:"transactionDate" format:"date" doc:"Date of the transaction"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}

const dateLayout = "2006-01-02"

func toTransaction(tx service.Transaction) Transaction {
	return Transaction{
		ID:              tx.ID.String(),
		CategoryID:      tx.CategoryID.String(),
		Amount:          tx.Amount.String(),
		Description:     tx.Description,
		TransactionDate: tx.TransactionDate.Format(dateLayout),
		CreatedAt:       tx.CreatedAt.Format(time.RFC3339Nano),
	}
}
