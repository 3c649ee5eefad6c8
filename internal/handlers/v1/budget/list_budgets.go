package budget

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	budgetcalc "github.com/carson-networks/finance-server/internal/budget"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// ListBudgetsInput is the Huma input for listing budgets.
type ListBudgetsInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"UUID of the acting user"`
	Month  int    `query:"month" doc:"Month 1-12, defaults to the current month"`
	Year   int    `query:"year" doc:"Four digit year, defaults to the current year"`
}

type ListBudgetsResponseBody struct {
	Budgets []Budget `json:"budgets" doc:"Budgets starting in the month"`
}

// ListBudgetsOutput is the Huma output for listing budgets.
type ListBudgetsOutput struct {
	Body ListBudgetsResponseBody
}

type budgetLister interface {
	ListBudgets(ctx context.Context, userID uuid.UUID, window budgetcalc.Window) ([]service.Budget, error)
}

// ListBudgetsHandler handles GET /v1/budgets.
type ListBudgetsHandler struct {
	BudgetService budgetLister
	now           func() time.Time
}

func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc, now: time.Now}
}

// Register registers the list budgets endpoint with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/budgets",
		Summary:     "List budgets",
		Description: "Returns the budgets of a month with what has been spent against each.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	userID, err := apiutil.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	window, err := apiutil.Window(input.Month, input.Year, h.now().UTC())
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listBudgetsMs")
	}
	budgets, err := h.BudgetService.ListBudgets(ctx, userID, window)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apiutil.Error(err, "failed to list budgets")
	}

	resp := ListBudgetsResponseBody{Budgets: make([]Budget, len(budgets))}
	for i, b := range budgets {
		resp.Budgets[i] = Budget{
			ID:           b.ID.String(),
			CategoryID:   b.CategoryID.String(),
			CategoryName: b.CategoryName,
			Amount:       b.Amount.String(),
			StartDate:    b.StartDate.Format(dateLayout),
			EndDate:      b.EndDate.Format(dateLayout),
			Spent:        b.Spent.String(),
			Remaining:    b.Remaining.String(),
			Percentage:   b.Percentage.StringFixed(2),
		}
	}

	return &ListBudgetsOutput{Body: resp}, nil
}
