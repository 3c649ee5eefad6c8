package receipt

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// SaveReceiptBody is the request body for saving a receipt.
type SaveReceiptBody struct {
	RawReceipt
	CategoryID string `json:"categoryID,omitempty" format:"uuid" doc:"Expense category UUID, overrides category"`
}

// SaveReceiptInput is the Huma input for saving a receipt.
type SaveReceiptInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"UUID of the acting user"`
	Body   SaveReceiptBody
}

type SaveReceiptResponseBody struct {
	TransactionID string            `json:"transactionID" doc:"UUID of the created transaction"`
	Receipt       NormalizedReceipt `json:"receipt" doc:"The receipt as it was saved"`
}

// SaveReceiptOutput is the Huma output for saving a receipt.
type SaveReceiptOutput struct {
	Body SaveReceiptResponseBody
}

type receiptSaver interface {
	SaveReceipt(ctx context.Context, userID uuid.UUID, raw service.RawReceipt, categoryID uuid.UUID) (*service.SavedReceipt, error)
}

// SaveReceiptHandler handles POST /v1/receipt.
type SaveReceiptHandler struct {
	ReceiptService receiptSaver
}

func NewSaveReceiptHandler(svc receiptSaver) *SaveReceiptHandler {
	return &SaveReceiptHandler{ReceiptService: svc}
}

// Register registers the save receipt endpoint with the Huma API.
func (h *SaveReceiptHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "save-receipt",
		Method:        http.MethodPost,
		Path:          "/v1/receipt",
		Summary:       "Save receipt",
		Description:   "Normalizes a receipt and records it as an expense transaction.",
		Tags:          []string{"Receipts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseSaveReceiptInput(input *SaveReceiptInput) (userID, categoryID uuid.UUID, err error) {
	userID, err = apiutil.ParseUserID(input.UserID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if input.Body.CategoryID == "" {
		return userID, uuid.Nil, nil
	}
	categoryID, err = apiutil.ParseID("categoryID", input.Body.CategoryID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return userID, categoryID, nil
}

func (h *SaveReceiptHandler) handle(ctx context.Context, input *SaveReceiptInput) (*SaveReceiptOutput, error) {
	userID, categoryID, err := parseSaveReceiptInput(input)
	if err != nil {
		return nil, err
	}

	saved, err := h.ReceiptService.SaveReceipt(ctx, userID, input.Body.RawReceipt.toService(), categoryID)
	if err != nil {
		return nil, apiutil.Error(err, "failed to save receipt")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", saved.TransactionID.String())
		logData.AddData("receiptWarnings", len(saved.Receipt.Warnings))
	}

	return &SaveReceiptOutput{Body: SaveReceiptResponseBody{
		TransactionID: saved.TransactionID.String(),
		Receipt:       fromService(saved.Receipt),
	}}, nil
}
