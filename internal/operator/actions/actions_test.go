package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type tables struct {
	budgets      *sqlconfig.MockIBudgetTable
	transactions *sqlconfig.MockITransactionTable
	categories   *sqlconfig.MockICategoryTable
}

func newTestWriter(t *testing.T) (*storage.Writer, tables) {
	t.Helper()
	m := tables{
		budgets:      sqlconfig.NewMockIBudgetTable(t),
		transactions: sqlconfig.NewMockITransactionTable(t),
		categories:   sqlconfig.NewMockICategoryTable(t),
	}
	writer := storage.NewWriterWithTables(storage.Reader{
		Budgets:      m.budgets,
		Transactions: m.transactions,
		Categories:   m.categories,
	}, nil)
	return writer, m
}

var june15 = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

// -- CreateBudget --

func TestCreateBudget_CurrentMonth(t *testing.T) {
	writer, m := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	createdID := uuid.Must(uuid.NewV4())

	m.categories.EXPECT().FindByID(mock.Anything, categoryID).Return(&sqlconfig.Category{ID: categoryID}, nil)
	m.budgets.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.BudgetCreate) bool {
		return c.UserID == userID &&
			c.CategoryID == categoryID &&
			c.Amount.Equal(decimal.NewFromInt(500000)) &&
			c.StartDate.Equal(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)) &&
			c.EndDate.Equal(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC))
	})).Return(createdID, nil)

	action := &CreateBudget{UserID: userID, CategoryID: categoryID, Amount: decimal.NewFromInt(500000), Now: june15}
	err := action.Perform(context.Background(), writer)

	require.NoError(t, err)
	assert.Equal(t, createdID, action.CreatedID)
}

func TestCreateBudget_Duplicate(t *testing.T) {
	writer, m := newTestWriter(t)
	categoryID := uuid.Must(uuid.NewV4())

	m.categories.EXPECT().FindByID(mock.Anything, categoryID).Return(&sqlconfig.Category{ID: categoryID}, nil)
	m.budgets.EXPECT().Insert(mock.Anything, mock.Anything).Return(uuid.Nil, sqlconfig.ErrConflict)

	action := &CreateBudget{UserID: uuid.Must(uuid.NewV4()), CategoryID: categoryID, Amount: decimal.NewFromInt(1), Now: june15}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ErrBudgetExists)
	assert.Equal(t, uuid.Nil, action.CreatedID)
}

func TestCreateBudget_UnknownCategory(t *testing.T) {
	writer, m := newTestWriter(t)

	m.categories.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, sqlconfig.ErrNotFound)

	action := &CreateBudget{UserID: uuid.Must(uuid.NewV4()), CategoryID: uuid.Must(uuid.NewV4()), Amount: decimal.NewFromInt(1), Now: june15}
	assert.ErrorIs(t, action.Perform(context.Background(), writer), ErrCategoryNotFound)
}

func TestCreateBudget_NegativeAmount(t *testing.T) {
	writer, _ := newTestWriter(t)

	action := &CreateBudget{UserID: uuid.Must(uuid.NewV4()), CategoryID: uuid.Must(uuid.NewV4()), Amount: decimal.NewFromInt(-1), Now: june15}
	assert.ErrorIs(t, action.Perform(context.Background(), writer), ErrInvalidAmount)
}

// -- UpdateBudget --

func TestUpdateBudget_Success(t *testing.T) {
	writer, m := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	budgetID := uuid.Must(uuid.NewV4())
	newCategory := uuid.Must(uuid.NewV4())

	m.budgets.EXPECT().FindByID(mock.Anything, budgetID).Return(&sqlconfig.Budget{ID: budgetID, UserID: userID}, nil)
	m.categories.EXPECT().FindByID(mock.Anything, newCategory).Return(&sqlconfig.Category{ID: newCategory}, nil)
	m.budgets.EXPECT().Update(mock.Anything, budgetID, mock.MatchedBy(func(u *sqlconfig.BudgetUpdate) bool {
		amount, ok := u.Amount.Get()
		category, _ := u.CategoryID.Get()
		return ok && amount.Equal(decimal.NewFromInt(42)) && category == newCategory
	})).Return(nil)

	err := (&UpdateBudget{
		UserID:     userID,
		BudgetID:   budgetID,
		Amount:     omit.From(decimal.NewFromInt(42)),
		CategoryID: omit.From(newCategory),
	}).Perform(context.Background(), writer)

	assert.NoError(t, err)
}

func TestUpdateBudget_RoundsAmountToCents(t *testing.T) {
	writer, m := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	budgetID := uuid.Must(uuid.NewV4())

	m.budgets.EXPECT().FindByID(mock.Anything, budgetID).Return(&sqlconfig.Budget{ID: budgetID, UserID: userID}, nil)
	m.budgets.EXPECT().Update(mock.Anything, budgetID, mock.MatchedBy(func(u *sqlconfig.BudgetUpdate) bool {
		amount, ok := u.Amount.Get()
		return ok && amount.Equal(decimal.RequireFromString("99.99"))
	})).Return(nil)

	err := (&UpdateBudget{
		UserID:   userID,
		BudgetID: budgetID,
		Amount:   omit.From(decimal.RequireFromString("99.9891")),
	}).Perform(context.Background(), writer)

	assert.NoError(t, err)
}

func TestUpdateBudget_OtherUser(t *testing.T) {
	writer, m := newTestWriter(t)
	budgetID := uuid.Must(uuid.NewV4())

	m.budgets.EXPECT().FindByID(mock.Anything, budgetID).Return(&sqlconfig.Budget{ID: budgetID, UserID: uuid.Must(uuid.NewV4())}, nil)

	err := (&UpdateBudget{
		UserID:   uuid.Must(uuid.NewV4()),
		BudgetID: budgetID,
		Amount:   omit.From(decimal.NewFromInt(42)),
	}).Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ErrBudgetNotFound)
}

func TestUpdateBudget_MissingBudget(t *testing.T) {
	writer, m := newTestWriter(t)

	m.budgets.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, sqlconfig.ErrNotFound)

	err := (&UpdateBudget{UserID: uuid.Must(uuid.NewV4()), BudgetID: uuid.Must(uuid.NewV4())}).Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrBudgetNotFound)
}

func TestUpdateBudget_CategoryConflict(t *testing.T) {
	writer, m := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	budgetID := uuid.Must(uuid.NewV4())
	newCategory := uuid.Must(uuid.NewV4())

	m.budgets.EXPECT().FindByID(mock.Anything, budgetID).Return(&sqlconfig.Budget{ID: budgetID, UserID: userID}, nil)
	m.categories.EXPECT().FindByID(mock.Anything, newCategory).Return(&sqlconfig.Category{ID: newCategory}, nil)
	m.budgets.EXPECT().Update(mock.Anything, budgetID, mock.Anything).Return(sqlconfig.ErrConflict)

	err := (&UpdateBudget{UserID: userID, BudgetID: budgetID, CategoryID: omit.From(newCategory)}).Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrBudgetExists)
}

// -- DeleteBudget --

func TestDeleteBudget_CurrentMonth(t *testing.T) {
	writer, m := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	budgetID := uuid.Must(uuid.NewV4())

	m.budgets.EXPECT().FindByID(mock.Anything, budgetID).Return(&sqlconfig.Budget{
		ID:        budgetID,
		UserID:    userID,
		StartDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}, nil)
	m.budgets.EXPECT().Delete(mock.Anything, budgetID).Return(nil)

	err := (&DeleteBudget{UserID: userID, BudgetID: budgetID, Now: june15}).Perform(context.Background(), writer)
	assert.NoError(t, err)
}

func TestDeleteBudget_PastMonth(t *testing.T) {
	writer, m := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	budgetID := uuid.Must(uuid.NewV4())

	m.budgets.EXPECT().FindByID(mock.Anything, budgetID).Return(&sqlconfig.Budget{
		ID:        budgetID,
		UserID:    userID,
		StartDate: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
	}, nil)

	err := (&DeleteBudget{UserID: userID, BudgetID: budgetID, Now: june15}).Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrBudgetNotCurrentMonth)
}

// -- CreateTransaction --

func TestCreateTransaction_StoresMagnitude(t *testing.T) {
	writer, m := newTestWriter(t)
	categoryID := uuid.Must(uuid.NewV4())
	createdID := uuid.Must(uuid.NewV4())

	m.categories.EXPECT().FindByID(mock.Anything, categoryID).Return(&sqlconfig.Category{ID: categoryID}, nil)
	m.transactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.Amount.Equal(decimal.RequireFromString("42.50")) && c.Description == "Groceries"
	})).Return(createdID, nil)

	action := &CreateTransaction{
		UserID:      uuid.Must(uuid.NewV4()),
		CategoryID:  categoryID,
		Amount:      decimal.RequireFromString("-42.50"),
		Description: "Groceries",
	}
	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, createdID, action.CreatedID)
}

func TestCreateTransaction_ZeroAmount(t *testing.T) {
	writer, _ := newTestWriter(t)

	action := &CreateTransaction{UserID: uuid.Must(uuid.NewV4()), CategoryID: uuid.Must(uuid.NewV4())}
	assert.ErrorIs(t, action.Perform(context.Background(), writer), ErrInvalidAmount)
}

func TestCreateTransaction_SubCentAmount(t *testing.T) {
	writer, _ := newTestWriter(t)

	action := &CreateTransaction{
		UserID:     uuid.Must(uuid.NewV4()),
		CategoryID: uuid.Must(uuid.NewV4()),
		Amount:     decimal.RequireFromString("0.004"),
	}
	assert.ErrorIs(t, action.Perform(context.Background(), writer), ErrInvalidAmount)
}

func TestCreateTransaction_RoundsToCents(t *testing.T) {
	writer, m := newTestWriter(t)
	categoryID := uuid.Must(uuid.NewV4())

	m.categories.EXPECT().FindByID(mock.Anything, categoryID).Return(&sqlconfig.Category{ID: categoryID}, nil)
	m.transactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.Amount.Equal(decimal.RequireFromString("1.23"))
	})).Return(uuid.Must(uuid.NewV4()), nil)

	action := &CreateTransaction{
		UserID:      uuid.Must(uuid.NewV4()),
		CategoryID:  categoryID,
		Amount:      decimal.RequireFromString("1.2345"),
		Description: "Receipt",
	}
	require.NoError(t, action.Perform(context.Background(), writer))
}

func TestCreateTransaction_StorageError(t *testing.T) {
	writer, m := newTestWriter(t)

	m.categories.EXPECT().FindByID(mock.Anything, mock.Anything).Return(&sqlconfig.Category{}, nil)
	m.transactions.EXPECT().Insert(mock.Anything, mock.Anything).Return(uuid.Nil, errors.New("connection refused"))

	action := &CreateTransaction{UserID: uuid.Must(uuid.NewV4()), CategoryID: uuid.Must(uuid.NewV4()), Amount: decimal.NewFromInt(1)}
	err := action.Perform(context.Background(), writer)

	assert.EqualError(t, err, "connection refused")
}
