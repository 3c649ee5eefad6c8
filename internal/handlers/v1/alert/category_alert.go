package alert

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/budget"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
)

// CategoryAlertInput is the Huma input for checking one category's budget.
type CategoryAlertInput struct {
	UserID     string `header:"X-User-ID" required:"true" doc:"UUID of the acting user"`
	CategoryID string `path:"categoryID" doc:"Category UUID"`
	Month      int    `query:"month" doc:"Month 1-12, defaults to the current month"`
	Year       int    `query:"year" doc:"Four digit year, defaults to the current year"`
}

// CategoryAlertOutput carries the alert, or a 204 with no body when the
// category has none.
type CategoryAlertOutput struct {
	Status int
	Body   *Alert
}

type categoryChecker interface {
	CheckCategoryBudget(ctx context.Context, userID, categoryID uuid.UUID, window budget.Window) (*budget.Alert, error)
}

// CategoryAlertHandler handles GET /v1/budget/alerts/category/{categoryID}.
type CategoryAlertHandler struct {
	AlertService categoryChecker
	now          func() time.Time
}

func NewCategoryAlertHandler(svc categoryChecker) *CategoryAlertHandler {
	return &CategoryAlertHandler{AlertService: svc, now: time.Now}
}

// Register registers the category alert endpoint with the Huma API.
func (h *CategoryAlertHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "check-category-budget",
		Method:      http.MethodGet,
		Path:        "/v1/budget/alerts/category/{categoryID}",
		Summary:     "Check category budget",
		Description: "Returns the alert for one category, or 204 when its budget is below the alert threshold.",
		Tags:        []string{"Alerts"},
	}, h.handle)
}

func (h *CategoryAlertHandler) handle(ctx context.Context, input *CategoryAlertInput) (*CategoryAlertOutput, error) {
	userID, err := apiutil.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	categoryID, err := apiutil.ParseID("categoryID", input.CategoryID)
	if err != nil {
		return nil, err
	}
	window, err := apiutil.Window(input.Month, input.Year, h.now().UTC())
	if err != nil {
		return nil, err
	}

	a, err := h.AlertService.CheckCategoryBudget(ctx, userID, categoryID, window)
	if err != nil {
		return nil, apiutil.Error(err, "failed to check category budget")
	}
	if a == nil {
		return &CategoryAlertOutput{Status: http.StatusNoContent}, nil
	}

	resp := fromBudgetAlert(*a)
	return &CategoryAlertOutput{Status: http.StatusOK, Body: &resp}, nil
}
