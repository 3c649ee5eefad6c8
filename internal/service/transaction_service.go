package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/budget"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

const defaultLimit = 20

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage  *storage.Storage
	operator Processor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, op Processor) *TransactionService {
	return &TransactionService{storage: store, operator: op}
}

// CreateTransaction creates a new transaction and returns its ID. The stored
// amount is the magnitude of transaction.Amount.
func (s *TransactionService) CreateTransaction(ctx context.Context, transaction Transaction) (uuid.UUID, error) {
	action := &actions.CreateTransaction{
		UserID:          transaction.UserID,
		CategoryID:      transaction.CategoryID,
		Amount:          transaction.Amount,
		Description:     transaction.Description,
		TransactionDate: transaction.TransactionDate,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// ListTransactions returns a page of the user's transactions using cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	filter := &sqlconfig.TransactionFilter{
		UserID:          userID,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = Transaction{
			ID:              row.ID,
			UserID:          row.UserID,
			CategoryID:      row.CategoryID,
			Amount:          row.Amount,
			Description:     row.Description,
			TransactionDate: row.TransactionDate,
			CreatedAt:       row.CreatedAt,
		}
	}

	return convertedTransactions, nextCursor, nil
}

// MonthlySummary totals the user's income and expense per category over window.
func (s *TransactionService) MonthlySummary(ctx context.Context, userID uuid.UUID, window budget.Window) (*MonthlySummary, error) {
	totals, err := s.storage.Transactions.SumByCategory(ctx, userID, dateRange(window))
	if err != nil {
		return nil, fmt.Errorf("summing by category: %w", err)
	}

	summary := &MonthlySummary{
		Start:        window.Start,
		End:          window.LastDay(),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Categories:   make([]CategorySummary, len(totals)),
	}
	for i, total := range totals {
		categoryType := CategoryType(total.Type)
		switch categoryType {
		case CategoryTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(total.Total)
		case CategoryTypeExpense:
			summary.TotalExpense = summary.TotalExpense.Add(total.Total)
		}
		summary.Categories[i] = CategorySummary{
			CategoryID:   total.CategoryID,
			CategoryName: total.CategoryName,
			Type:         categoryType,
			Total:        total.Total,
		}
	}
	summary.Net = summary.TotalIncome.Sub(summary.TotalExpense)

	return summary, nil
}
