package budget

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/service"
)

// UpdateBudgetBody is the request body for updating a budget. Absent fields
// are left unchanged.
type UpdateBudgetBody struct {
	CategoryID *string `json:"categoryID,omitempty" doc:"New category UUID"`
	Amount     *string `json:"amount,omitempty" doc:"New decimal amount"`
}

// UpdateBudgetInput is the Huma input for updating a budget.
type UpdateBudgetInput struct {
	UserID   string `header:"X-User-ID" required:"true" doc:"UUID of the acting user"`
	BudgetID string `path:"budgetID" doc:"Budget UUID"`
	Body     UpdateBudgetBody
}

type UpdateBudgetOutput struct{}

type budgetUpdater interface {
	UpdateBudget(ctx context.Context, userID, budgetID uuid.UUID, changes service.BudgetChanges) error
}

// UpdateBudgetHandler handles PATCH /v1/budget/{budgetID}.
type UpdateBudgetHandler struct {
	BudgetService budgetUpdater
}

func NewUpdateBudgetHandler(svc budgetUpdater) *UpdateBudgetHandler {
	return &UpdateBudgetHandler{BudgetService: svc}
}

// Register registers the update budget endpoint with the Huma API.
func (h *UpdateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-budget",
		Method:        http.MethodPatch,
		Path:          "/v1/budget/{budgetID}",
		Summary:       "Update budget",
		Description:   "Changes the amount and/or category of a budget owned by the user.",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func parseUpdateBudgetInput(input *UpdateBudgetInput) (userID, budgetID uuid.UUID, changes service.BudgetChanges, err error) {
	userID, err = apiutil.ParseUserID(input.UserID)
	if err != nil {
		return
	}
	budgetID, err = apiutil.ParseID("budgetID", input.BudgetID)
	if err != nil {
		return
	}

	if input.Body.CategoryID == nil && input.Body.Amount == nil {
		err = huma.NewError(http.StatusBadRequest, "nothing to update")
		return
	}
	if input.Body.CategoryID != nil {
		var categoryID uuid.UUID
		categoryID, err = apiutil.ParseID("categoryID", *input.Body.CategoryID)
		if err != nil {
			return
		}
		changes.CategoryID = omit.From(categoryID)
	}
	if input.Body.Amount != nil {
		amount, parseErr := decimal.NewFromString(*input.Body.Amount)
		if parseErr != nil {
			err = huma.NewError(http.StatusBadRequest, "invalid amount", parseErr)
			return
		}
		if amount.IsNegative() {
			err = huma.NewError(http.StatusBadRequest, "amount must not be negative")
			return
		}
		changes.Amount = omit.From(amount)
	}
	return
}

func (h *UpdateBudgetHandler) handle(ctx context.Context, input *UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	userID, budgetID, changes, err := parseUpdateBudgetInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.BudgetService.UpdateBudget(ctx, userID, budgetID, changes); err != nil {
		return nil, apiutil.Error(err, "failed to update budget")
	}
	return &UpdateBudgetOutput{}, nil
}
