package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/service"
)

// mockTransactionService is a mock for transactionCreator.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, transaction service.Transaction) (uuid.UUID, error) {
	args := m.Called(ctx, transaction)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

var userID = uuid.Must(uuid.NewV4())

func userHeader() string {
	return "X-User-ID: " + userID.String()
}

// newTestAPI registers the handler against a humatest API and returns it.
func newTestAPI(t *testing.T, svc transactionCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	return api
}

// -- parseCreateTransactionInput unit tests --

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())

	input := &CreateTransactionInput{
		UserID: userID.String(),
		Body: CreateTransactionBody{
			CategoryID:      categoryID.String(),
			Amount:          "123.45",
			Description:     "Groceries",
			TransactionDate: "2025-01-15",
		},
	}

	tx, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.Equal(t, userID, tx.UserID)
	assert.Equal(t, categoryID, tx.CategoryID)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("123.45")))
	assert.Equal(t, "Groceries", tx.Description)
	assert.Equal(t, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), tx.TransactionDate)
}

func TestParseCreateTransactionInput_ValidInputWithoutDate(t *testing.T) {
	input := &CreateTransactionInput{
		UserID: userID.String(),
		Body: CreateTransactionBody{
			CategoryID:  uuid.Must(uuid.NewV4()).String(),
			Amount:      "-99.99",
			Description: "Refund",
		},
	}

	tx, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("-99.99")))
	assert.True(t, tx.TransactionDate.IsZero())
}

func TestParseCreateTransactionInput_NilUser(t *testing.T) {
	input := &CreateTransactionInput{
		UserID: uuid.Nil.String(),
		Body: CreateTransactionBody{
			CategoryID:  uuid.Must(uuid.NewV4()).String(),
			Amount:      "1",
			Description: "x",
		},
	}

	_, err := parseCreateTransactionInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(tx service.Transaction) bool {
		return tx.UserID == userID &&
			tx.CategoryID == categoryID &&
			tx.Amount.Equal(decimal.RequireFromString("12.50")) &&
			tx.Description == "Coffee"
	})).Return(txID, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", userHeader(), CreateTransactionBody{
		CategoryID:  categoryID.String(),
		Amount:      "12.50",
		Description: "Coffee",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_WithDate_Success(t *testing.T) {
	txID := uuid.Must(uuid.NewV4())
	txDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(tx service.Transaction) bool {
		return tx.TransactionDate.Equal(txDate)
	})).Return(txID, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", userHeader(), CreateTransactionBody{
		CategoryID:      uuid.Must(uuid.NewV4()).String(),
		Amount:          "5.00",
		Description:     "Lunch",
		TransactionDate: "2025-06-01",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingUserHeader(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		CategoryID:  uuid.Must(uuid.NewV4()).String(),
		Amount:      "10.00",
		Description: "Test",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", userHeader(), map[string]any{
		"categoryID": uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_DescriptionTooShort(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", userHeader(), CreateTransactionBody{
		CategoryID:  uuid.Must(uuid.NewV4()).String(),
		Amount:      "10.00",
		Description: "", // minLength:"1" violation
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidCategoryID(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma's format:"uuid" schema validation rejects this before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", userHeader(), CreateTransactionBody{
		CategoryID:  "not-a-uuid",
		Amount:      "10.00",
		Description: "Test",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Amount is a plain string with no Huma format tag, so parseCreateTransactionInput
	// handles validation and returns 400.
	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", userHeader(), CreateTransactionBody{
		CategoryID:  uuid.Must(uuid.NewV4()).String(),
		Amount:      "not-a-decimal",
		Description: "Test",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidTransactionDate(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma's format:"date" schema validation rejects this before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", userHeader(), CreateTransactionBody{
		CategoryID:      uuid.Must(uuid.NewV4()).String(),
		Amount:          "10.00",
		Description:     "Test",
		TransactionDate: "not-a-date",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_ZeroAmount(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(uuid.Nil, service.ErrInvalidAmount)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", userHeader(), CreateTransactionBody{
		CategoryID:  uuid.Must(uuid.NewV4()).String(),
		Amount:      "0",
		Description: "Nothing",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_UnknownCategory(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(uuid.Nil, service.ErrCategoryNotFound)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", userHeader(), CreateTransactionBody{
		CategoryID:  uuid.Must(uuid.NewV4()).String(),
		Amount:      "10.00",
		Description: "Test",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(uuid.Nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", userHeader(), CreateTransactionBody{
		CategoryID:  uuid.Must(uuid.NewV4()).String(),
		Amount:      "10.00",
		Description: "Test",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
