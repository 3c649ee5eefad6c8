package alert

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/budget"
)

type mockAlertService struct {
	mock.Mock
}

func (m *mockAlertService) GetAlerts(ctx context.Context, userID uuid.UUID, window budget.Window, categoryID *uuid.UUID) ([]budget.Alert, error) {
	args := m.Called(ctx, userID, window, categoryID)
	alerts, _ := args.Get(0).([]budget.Alert)
	return alerts, args.Error(1)
}

func (m *mockAlertService) GetAlertCount(ctx context.Context, userID uuid.UUID, window budget.Window) (int, error) {
	args := m.Called(ctx, userID, window)
	return args.Int(0), args.Error(1)
}

func (m *mockAlertService) CheckCategoryBudget(ctx context.Context, userID, categoryID uuid.UUID, window budget.Window) (*budget.Alert, error) {
	args := m.Called(ctx, userID, categoryID, window)
	a, _ := args.Get(0).(*budget.Alert)
	return a, args.Error(1)
}

var (
	userID = uuid.Must(uuid.NewV4())
	june   = budget.MonthWindow(2025, time.June, time.UTC)
)

func fixedNow() time.Time {
	return time.Date(2025, time.June, 20, 18, 0, 0, 0, time.UTC)
}

func newTestAPI(t *testing.T, svc *mockAlertService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)

	list := NewListAlertsHandler(svc)
	list.now = fixedNow
	list.Register(api)

	count := NewAlertCountHandler(svc)
	count.now = fixedNow
	count.Register(api)

	category := NewCategoryAlertHandler(svc)
	category.now = fixedNow
	category.Register(api)
	return api
}

func criticalAlert() *budget.Alert {
	return budget.Evaluate(budget.Spend{
		BudgetID:     uuid.Must(uuid.NewV4()),
		CategoryID:   uuid.Must(uuid.NewV4()),
		CategoryName: "Travel",
		BudgetAmount: decimal.NewFromInt(500000),
		SpentAmount:  decimal.NewFromInt(600000),
	})
}

func TestHTTP_ListAlerts(t *testing.T) {
	svc := new(mockAlertService)
	a := criticalAlert()
	svc.On("GetAlerts", mock.Anything, userID, june, (*uuid.UUID)(nil)).Return([]budget.Alert{*a}, nil)

	resp := newTestAPI(t, svc).Get("/v1/budget/alerts", "X-User-ID: "+userID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAlertsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Alerts, 1)
	got := body.Alerts[0]
	assert.Equal(t, "critical", got.AlertLevel)
	assert.Equal(t, "120.00", got.Percentage)
	assert.Equal(t, "-100000", got.Remaining)
	assert.True(t, got.IsExceeded)
	assert.Equal(t, a.Message, got.Message)
	svc.AssertExpectations(t)
}

func TestHTTP_ListAlerts_CategoryFilterAndMonth(t *testing.T) {
	svc := new(mockAlertService)
	categoryID := uuid.Must(uuid.NewV4())
	march := budget.MonthWindow(2024, time.March, time.UTC)

	svc.On("GetAlerts", mock.Anything, userID, march, mock.MatchedBy(func(id *uuid.UUID) bool {
		return id != nil && *id == categoryID
	})).Return([]budget.Alert{}, nil)

	resp := newTestAPI(t, svc).Get("/v1/budget/alerts?month=3&year=2024&categoryID="+categoryID.String(), "X-User-ID: "+userID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAlertsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Alerts)
	svc.AssertExpectations(t)
}

func TestHTTP_ListAlerts_BadCategory(t *testing.T) {
	resp := newTestAPI(t, new(mockAlertService)).Get("/v1/budget/alerts?categoryID=food", "X-User-ID: "+userID.String())
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_ListAlerts_StorageError(t *testing.T) {
	svc := new(mockAlertService)
	svc.On("GetAlerts", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, svc).Get("/v1/budget/alerts", "X-User-ID: "+userID.String())
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_AlertCount(t *testing.T) {
	svc := new(mockAlertService)
	svc.On("GetAlertCount", mock.Anything, userID, june).Return(3, nil)

	resp := newTestAPI(t, svc).Get("/v1/budget/alerts/count", "X-User-ID: "+userID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body AlertCountResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body.Count)
}

func TestHTTP_CategoryAlert(t *testing.T) {
	svc := new(mockAlertService)
	a := criticalAlert()
	svc.On("CheckCategoryBudget", mock.Anything, userID, a.CategoryID, june).Return(a, nil)

	resp := newTestAPI(t, svc).Get("/v1/budget/alerts/category/"+a.CategoryID.String(), "X-User-ID: "+userID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Alert
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, a.BudgetID.String(), body.BudgetID)
}

func TestHTTP_CategoryAlert_NoAlert(t *testing.T) {
	svc := new(mockAlertService)
	categoryID := uuid.Must(uuid.NewV4())
	svc.On("CheckCategoryBudget", mock.Anything, userID, categoryID, june).Return(nil, nil)

	resp := newTestAPI(t, svc).Get("/v1/budget/alerts/category/"+categoryID.String(), "X-User-ID: "+userID.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
}
