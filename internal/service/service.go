package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// Processor runs a write action inside a transaction.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Budget      *BudgetService
	Alert       *AlertService
	Transaction *TransactionService
	Category    *CategoryService
	Receipt     *ReceiptService
}

// NewService creates a new Service with the given storage and write queue.
func NewService(store *storage.Storage, op Processor, logger *logrus.Logger) *Service {
	transactions := NewTransactionService(store, op)
	return &Service{
		Budget:      NewBudgetService(store, op),
		Alert:       NewAlertService(store),
		Transaction: transactions,
		Category:    NewCategoryService(store),
		Receipt:     NewReceiptService(store, transactions, logger),
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}
