package storage

import (
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
	"github.com/stephenafamo/bob"
)

// Reader groups the tables bound to a single executor.
type Reader struct {
	Budgets      sqlconfig.IBudgetTable
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Budgets:      sqlconfig.NewBudgetsTable(exec),
		Transactions: sqlconfig.NewTransactionsTable(exec),
		Categories:   sqlconfig.NewCategoriesTable(exec),
	}
}
