package receipt

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/service"
)

// NormalizeReceiptInput is the Huma input for normalizing a receipt.
type NormalizeReceiptInput struct {
	Body RawReceipt
}

// NormalizeReceiptOutput is the Huma output for normalizing a receipt.
type NormalizeReceiptOutput struct {
	Body NormalizedReceipt
}

type receiptNormalizer interface {
	Normalize(raw service.RawReceipt) service.NormalizedReceipt
}

// NormalizeReceiptHandler handles POST /v1/receipt/normalize.
type NormalizeReceiptHandler struct {
	ReceiptService receiptNormalizer
}

func NewNormalizeReceiptHandler(svc receiptNormalizer) *NormalizeReceiptHandler {
	return &NormalizeReceiptHandler{ReceiptService: svc}
}

// Register registers the normalize endpoint with the Huma API.
func (h *NormalizeReceiptHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "normalize-receipt",
		Method:      http.MethodPost,
		Path:        "/v1/receipt/normalize",
		Summary:     "Normalize receipt",
		Description: "Converts OCR date and amount strings into canonical form without saving anything.",
		Tags:        []string{"Receipts"},
	}, h.handle)
}

func (h *NormalizeReceiptHandler) handle(_ context.Context, input *NormalizeReceiptInput) (*NormalizeReceiptOutput, error) {
	normalized := h.ReceiptService.Normalize(input.Body.toService())
	return &NormalizeReceiptOutput{Body: fromService(normalized)}, nil
}
