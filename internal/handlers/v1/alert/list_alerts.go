package alert

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/budget"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/logging"
)

// ListAlertsInput is the Huma input for listing budget alerts.
type ListAlertsInput struct {
	UserID     string `header:"X-User-ID" required:"true" doc:"UUID of the acting user"`
	CategoryID string `query:"categoryID" doc:"Only report this category"`
	Month      int    `query:"month" doc:"Month 1-12, defaults to the current month"`
	Year       int    `query:"year" doc:"Four digit year, defaults to the current year"`
}

type ListAlertsResponseBody struct {
	Alerts []Alert `json:"alerts" doc:"Budgets at or above 85% of their amount"`
}

// ListAlertsOutput is the Huma output for listing budget alerts.
type ListAlertsOutput struct {
	Body ListAlertsResponseBody
}

type alertLister interface {
	GetAlerts(ctx context.Context, userID uuid.UUID, window budget.Window, categoryID *uuid.UUID) ([]budget.Alert, error)
}

// ListAlertsHandler handles GET /v1/budget/alerts.
type ListAlertsHandler struct {
	AlertService alertLister
	now          func() time.Time
}

func NewListAlertsHandler(svc alertLister) *ListAlertsHandler {
	return &ListAlertsHandler{AlertService: svc, now: time.Now}
}

// Register registers the list alerts endpoint with the Huma API.
func (h *ListAlertsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budget-alerts",
		Method:      http.MethodGet,
		Path:        "/v1/budget/alerts",
		Summary:     "List budget alerts",
		Description: "Returns an alert for every budget of the month whose spend reached 85% or more.",
		Tags:        []string{"Alerts"},
	}, h.handle)
}

func (h *ListAlertsHandler) handle(ctx context.Context, input *ListAlertsInput) (*ListAlertsOutput, error) {
	userID, err := apiutil.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	window, err := apiutil.Window(input.Month, input.Year, h.now().UTC())
	if err != nil {
		return nil, err
	}
	var categoryID *uuid.UUID
	if input.CategoryID != "" {
		id, err := apiutil.ParseID("categoryID", input.CategoryID)
		if err != nil {
			return nil, err
		}
		categoryID = &id
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getAlertsMs")
	}
	alerts, err := h.AlertService.GetAlerts(ctx, userID, window, categoryID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apiutil.Error(err, "failed to compute budget alerts")
	}
	if logData != nil {
		logData.AddData("alertCount", len(alerts))
	}

	resp := ListAlertsResponseBody{Alerts: make([]Alert, len(alerts))}
	for i, a := range alerts {
		resp.Alerts[i] = fromBudgetAlert(a)
	}
	return &ListAlertsOutput{Body: resp}, nil
}
