package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
)

// DeleteBudgetInput is the Huma input for deleting a budget.
type DeleteBudgetInput struct {
	UserID   string `header:"X-User-ID" required:"true" doc:"UUID of the acting user"`
	BudgetID string `path:"budgetID" doc:"Budget UUID"`
}

type DeleteBudgetOutput struct{}

type budgetDeleter interface {
	DeleteBudget(ctx context.Context, userID, budgetID uuid.UUID) error
}

// DeleteBudgetHandler handles DELETE /v1/budget/{budgetID}.
type DeleteBudgetHandler struct {
	BudgetService budgetDeleter
}

func NewDeleteBudgetHandler(svc budgetDeleter) *DeleteBudgetHandler {
	return &DeleteBudgetHandler{BudgetService: svc}
}

// Register registers the delete budget endpoint with the Huma API.
func (h *DeleteBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-budget",
		Method:        http.MethodDelete,
		Path:          "/v1/budget/{budgetID}",
		Summary:       "Delete budget",
		Description:   "Deletes a budget of the current month. Budgets of past months are kept.",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteBudgetHandler) handle(ctx context.Context, input *DeleteBudgetInput) (*DeleteBudgetOutput, error) {
	userID, err := apiutil.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	budgetID, err := apiutil.ParseID("budgetID", input.BudgetID)
	if err != nil {
		return nil, err
	}

	if err := h.BudgetService.DeleteBudget(ctx, userID, budgetID); err != nil {
		return nil, apiutil.Error(err, "failed to delete budget")
	}
	return &DeleteBudgetOutput{}, nil
}
