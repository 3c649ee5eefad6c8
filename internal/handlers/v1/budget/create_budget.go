package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/logging"
)

// CreateBudgetBody is the request body for creating a budget.
type CreateBudgetBody struct {
	CategoryID string `json:"categoryID" required:"true" doc:"Category UUID"`
	Amount     string `json:"amount" required:"true" doc:"Decimal amount, zero or more"`
}

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"UUID of the acting user"`
	Body   CreateBudgetBody
}

type CreateBudgetResponseBody struct {
	ID string `json:"id" doc:"UUID of the created budget"`
}

// CreateBudgetOutput is the Huma output for creating a budget.
type CreateBudgetOutput struct {
	Body CreateBudgetResponseBody
}

type budgetCreator interface {
	CreateBudget(ctx context.Context, userID, categoryID uuid.UUID, amount decimal.Decimal) (uuid.UUID, error)
}

// CreateBudgetHandler handles POST /v1/budget.
type CreateBudgetHandler struct {
	BudgetService budgetCreator
}

func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc}
}

// Register registers the create budget endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-budget",
		Method:        http.MethodPost,
		Path:          "/v1/budget",
		Summary:       "Create budget",
		Description:   "Creates a budget for a category in the current month. A category can have one budget per month.",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateBudgetInput(input *CreateBudgetInput) (userID, categoryID uuid.UUID, amount decimal.Decimal, err error) {
	userID, err = apiutil.ParseUserID(input.UserID)
	if err != nil {
		return
	}
	categoryID, err = apiutil.ParseID("categoryID", input.Body.CategoryID)
	if err != nil {
		return
	}
	amount, parseErr := decimal.NewFromString(input.Body.Amount)
	if parseErr != nil {
		err = huma.NewError(http.StatusBadRequest, "invalid amount", parseErr)
		return
	}
	if amount.IsNegative() {
		err = huma.NewError(http.StatusBadRequest, "amount must not be negative")
	}
	return
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	userID, categoryID, amount, err := parseCreateBudgetInput(input)
	if err != nil {
		return nil, err
	}

	id, err := h.BudgetService.CreateBudget(ctx, userID, categoryID, amount)
	if err != nil {
		return nil, apiutil.Error(err, "failed to create budget")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("budgetID", id.String())
	}

	return &CreateBudgetOutput{Body: CreateBudgetResponseBody{ID: id.String()}}, nil
}
