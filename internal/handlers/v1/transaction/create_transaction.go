package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	CategoryID      string `json:"categoryID" required:"true" format:"uuid" doc:"Category UUID"`
	Amount          string `json:"amount" required:"true" doc:"Decimal amount; the sign is dropped"`
	Description     string `json:"description" required:"true" minLength:"1" maxLength:"255" doc:"Description of the transaction"`
	TransactionDate string `json:"transactionDate,omitempty" format:"date" doc:"Date of the transaction, defaults to today"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"UUID of the acting user"`
	Body   CreateTransactionBody
}

// CreateTransactionResponse is the response body for a created transaction.
type CreateTransactionResponse struct {
	ID string `json:"id" doc:"UUID of the created transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body CreateTransactionResponse
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, transaction service.Transaction) (uuid.UUID, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses the API input into a service transaction.
// A missing transactionDate is left zero so storage defaults it to today.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.Transaction, error) {
	userID, err := apiutil.ParseUserID(input.UserID)
	if err != nil {
		return service.Transaction{}, err
	}
	categoryID, err := apiutil.ParseID("categoryID", input.Body.CategoryID)
	if err != nil {
		return service.Transaction{}, err
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var transactionDate time.Time
	if input.Body.TransactionDate != "" {
		transactionDate, err = time.Parse(dateLayout, input.Body.TransactionDate)
		if err != nil {
			return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
	}

	return service.Transaction{
		UserID:          userID,
		CategoryID:      categoryID,
		Amount:          amount,
		Description:     input.Body.Description,
		TransactionDate: transactionDate,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	transaction, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	id, err := h.TransactionService.CreateTransaction(ctx, transaction)
	if err != nil {
		return nil, apiutil.Error(err, "failed to create transaction")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", id.String())
	}

	return &CreateTransactionOutput{Body: CreateTransactionResponse{ID: id.String()}}, nil
}
