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

// AlertCountInput is the Huma input for counting budget alerts.
type AlertCountInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"UUID of the acting user"`
	Month  int    `query:"month" doc:"Month 1-12, defaults to the current month"`
	Year   int    `query:"year" doc:"Four digit year, defaults to the current year"`
}

type AlertCountResponseBody struct {
	Count int `json:"count" doc:"Number of budgets raising an alert"`
}

// AlertCountOutput is the Huma output for counting budget alerts.
type AlertCountOutput struct {
	Body AlertCountResponseBody
}

type alertCounter interface {
	GetAlertCount(ctx context.Context, userID uuid.UUID, window budget.Window) (int, error)
}

// AlertCountHandler handles GET /v1/budget/alerts/count.
type AlertCountHandler struct {
	AlertService alertCounter
	now          func() time.Time
}

func NewAlertCountHandler(svc alertCounter) *AlertCountHandler {
	return &AlertCountHandler{AlertService: svc, now: time.Now}
}

// Register registers the alert count endpoint with the Huma API.
func (h *AlertCountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "count-budget-alerts",
		Method:      http.MethodGet,
		Path:        "/v1/budget/alerts/count",
		Summary:     "Count budget alerts",
		Tags:        []string{"Alerts"},
	}, h.handle)
}

func (h *AlertCountHandler) handle(ctx context.Context, input *AlertCountInput) (*AlertCountOutput, error) {
	userID, err := apiutil.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	window, err := apiutil.Window(input.Month, input.Year, h.now().UTC())
	if err != nil {
		return nil, err
	}

	count, err := h.AlertService.GetAlertCount(ctx, userID, window)
	if err != nil {
		return nil, apiutil.Error(err, "failed to count budget alerts")
	}
	return &AlertCountOutput{Body: AlertCountResponseBody{Count: count}}, nil
}
