package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/receipt"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type transactionCreator interface {
	CreateTransaction(ctx context.Context, transaction Transaction) (uuid.UUID, error)
}

// ReceiptService turns OCR output into transactions.
type ReceiptService struct {
	storage      *storage.Storage
	transactions transactionCreator
	log          *logrus.Logger
	now          func() time.Time
}

func NewReceiptService(store *storage.Storage, transactions transactionCreator, logger *logrus.Logger) *ReceiptService {
	return &ReceiptService{
		storage:      store,
		transactions: transactions,
		log:          logger,
		now:          utcNow,
	}
}

// Normalize canonicalizes the date and amount of raw. Fields that cannot be
// normalized are left empty and reported in Warnings.
func (s *ReceiptService) Normalize(raw RawReceipt) NormalizedReceipt {
	if s.log.IsLevelEnabled(logrus.DebugLevel) {
		s.log.Debugf("ReceiptService.Normalize.raw %s", spew.Sdump(raw))
	}

	normalized := NormalizedReceipt{
		Description: strings.TrimSpace(raw.Description),
	}

	if date, ok := receipt.NormalizeDate(raw.Date); ok {
		normalized.Date = date
	} else {
		s.log.WithFields(logrus.Fields{
			"field": "date",
			"input": raw.Date,
		}).Warn("ReceiptService.Normalize.failed")
		normalized.Warnings = append(normalized.Warnings, fmt.Sprintf("could not parse date %q", raw.Date))
	}

	normalized.Amount = receipt.NormalizeAmount(raw.Amount)
	if normalized.Amount == "" {
		s.log.WithFields(logrus.Fields{
			"field": "amount",
			"input": raw.Amount,
		}).Warn("ReceiptService.Normalize.failed")
		normalized.Warnings = append(normalized.Warnings, fmt.Sprintf("could not parse amount %q", raw.Amount))
	}

	return normalized
}

// SaveReceipt normalizes raw and stores it as an expense of the user. The
// category is categoryID when set, otherwise the expense category named by
// raw.Category. An unparseable date falls back to today.
func (s *ReceiptService) SaveReceipt(ctx context.Context, userID uuid.UUID, raw RawReceipt, categoryID uuid.UUID) (*SavedReceipt, error) {
	normalized := s.Normalize(raw)

	// normalized.Amount is canonical. Running it through the rules again
	// would read "1.234" as a grouped integer.
	amount, err := decimal.NewFromString(normalized.Amount)
	if err != nil {
		return nil, ErrInvalidAmount
	}

	transactionDate, ok := receipt.ParseDate(normalized.Date)
	if !ok {
		now := s.now()
		transactionDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		normalized.Date = transactionDate.Format(receipt.ISODate)
		normalized.Warnings = append(normalized.Warnings, "date defaulted to today")
	}

	if categoryID == uuid.Nil {
		categoryID, err = s.categoryByName(ctx, raw.Category)
		if err != nil {
			return nil, err
		}
	}

	description := normalized.Description
	if description == "" {
		description = "Receipt"
	}

	id, err := s.transactions.CreateTransaction(ctx, Transaction{
		UserID:          userID,
		CategoryID:      categoryID,
		Amount:          amount,
		Description:     description,
		TransactionDate: transactionDate,
	})
	if err != nil {
		return nil, err
	}

	return &SavedReceipt{TransactionID: id, Receipt: normalized}, nil
}

func (s *ReceiptService) categoryByName(ctx context.Context, name string) (uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return uuid.Nil, ErrCategoryNotFound
	}
	category, err := s.storage.Categories.FindByName(ctx, name, sqlconfig.CategoryTypeExpense)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return uuid.Nil, ErrCategoryNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	return category.ID, nil
}
