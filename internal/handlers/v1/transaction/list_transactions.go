package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// ListTransactionsCursor is an opaque-to-clients page marker. Clients echo
// the nextCursor of one response into the next request unchanged.
type ListTransactionsCursor struct {
	Position        int    `json:"position" minimum:"0" doc:"Rows already returned"`
	Limit           int    `json:"limit" minimum:"1" maximum:"100" doc:"Page size"`
	MaxCreationTime string `json:"maxCreationTime" format:"date-time" doc:"Transactions created after this are excluded, so pages stay stable"`
}

type ListTransactionsBody struct {
	Cursor *ListTransactionsCursor `json:"cursor,omitempty" doc:"nextCursor of the previous page; omit for the first page"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"UUID of the acting user"`
	Body   ListTransactionsBody
}

type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Newest first"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

type transactionLister interface {
	ListTransactions(ctx context.Context, userID uuid.UUID, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns a paginated list of the user's transactions, newest first, using cursor-based pagination.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput returns nil for a first page request; the
// service then picks the page size and pins maxCreationTime itself.
func parseListTransactionsInput(input *ListTransactionsInput) (*service.TransactionCursor, error) {
	if input.Body.Cursor == nil {
		return nil, nil
	}

	if input.Body.Cursor.Position < 0 {
		return nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
	}

	c := input.Body.Cursor
	maxCreationTime, err := time.Parse(time.RFC3339Nano, c.MaxCreationTime)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid cursor maxCreationTime", err)
	}

	return &service.TransactionCursor{
		Position:        c.Position,
		Limit:           c.Limit,
		MaxCreationTime: maxCreationTime,
	}, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := apiutil.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	requestCursor, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, nextCursor, err := h.TransactionService.ListTransactions(ctx, userID, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apiutil.Error(err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
		logData.AddData("lastPage", nextCursor == nil)
	}

	resp := ListTransactionsResponseBody{Transactions: make([]Transaction, 0, len(transactions))}
	for _, tx := range transactions {
		resp.Transactions = append(resp.Transactions, toTransaction(tx))
	}

	if nextCursor != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position:        nextCursor.Position,
			Limit:           nextCursor.Limit,
			MaxCreationTime: nextCursor.MaxCreationTime.Format(time.RFC3339Nano),
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
