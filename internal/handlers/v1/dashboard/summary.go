package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/budget"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

const dateLayout = "2006-01-02"

// CategoryTotal is one category's total in the summary response.
type CategoryTotal struct {
	CategoryID   string `json:"categoryID" doc:"Category UUID"`
	CategoryName string `json:"categoryName" doc:"Category name"`
	Type         string `json:"type" enum:"income,expense" doc:"Category type"`
	Total        string `json:"total" doc:"Sum of the category's transactions"`
}

// SummaryInput is the Huma input for the monthly summary.
type SummaryInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"UUID of the acting user"`
	Month  int    `query:"month" doc:"Month 1-12, defaults to the current month"`
	Year   int    `query:"year" doc:"Four digit year, defaults to the current year"`
}

type SummaryResponseBody struct {
	StartDate    string          `json:"startDate" format:"date" doc:"First day of the month"`
	EndDate      string          `json:"endDate" format:"date" doc:"Last day of the month"`
	TotalIncome  string          `json:"totalIncome" doc:"Sum of income transactions"`
	TotalExpense string          `json:"totalExpense" doc:"Sum of expense transactions"`
	Net          string          `json:"net" doc:"Income minus expense"`
	Categories   []CategoryTotal `json:"categories" doc:"Per category totals, largest first"`
}

// SummaryOutput is the Huma output for the monthly summary.
type SummaryOutput struct {
	Body SummaryResponseBody
}

type summarizer interface {
	MonthlySummary(ctx context.Context, userID uuid.UUID, window budget.Window) (*service.MonthlySummary, error)
}

// SummaryHandler handles GET /v1/dashboard/summary.
type SummaryHandler struct {
	TransactionService summarizer
	now                func() time.Time
}

func NewSummaryHandler(svc summarizer) *SummaryHandler {
	return &SummaryHandler{TransactionService: svc, now: time.Now}
}

// Register registers the summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-summary",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/summary",
		Summary:     "Monthly summary",
		Description: "Totals the user's income and expense for a month, broken down by category.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
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
		stopTimer = logData.AddTiming("summaryMs")
	}
	summary, err := h.TransactionService.MonthlySummary(ctx, userID, window)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apiutil.Error(err, "failed to build summary")
	}

	resp := SummaryResponseBody{
		StartDate:    summary.Start.Format(dateLayout),
		EndDate:      summary.End.Format(dateLayout),
		TotalIncome:  summary.TotalIncome.String(),
		TotalExpense: summary.TotalExpense.String(),
		Net:          summary.Net.String(),
		Categories:   make([]CategoryTotal, len(summary.Categories)),
	}
	for i, c := range summary.Categories {
		resp.Categories[i] = CategoryTotal{
			CategoryID:   c.CategoryID.String(),
			CategoryName: c.CategoryName,
			Type:         string(c.Type),
			Total:        c.Total.String(),
		}
	}

	return &SummaryOutput{Body: resp}, nil
}
