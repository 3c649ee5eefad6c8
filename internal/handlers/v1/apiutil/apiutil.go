// Package apiutil holds the request parsing and error mapping shared by the
// v1 handlers.
package apiutil

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/budget"
	"github.com/carson-networks/finance-server/internal/service"
)

// UserHeader is the header that identifies the acting user.
const UserHeader = "X-User-ID"

// ParseUserID parses the X-User-ID header value.
func ParseUserID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+UserHeader+" header", err)
	}
	if id == uuid.Nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+UserHeader+" header")
	}
	return id, nil
}

// ParseID parses a uuid request field, naming it in the error.
func ParseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return id, nil
}

// Window returns the month window for month and year. Zero values default to
// the month and year of now.
func Window(month, year int, now time.Time) (budget.Window, error) {
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		return budget.Window{}, huma.NewError(http.StatusBadRequest, "month must be between 1 and 12")
	}
	if year < 1970 || year > 9999 {
		return budget.Window{}, huma.NewError(http.StatusBadRequest, "year out of range")
	}
	return budget.MonthWindow(year, time.Month(month), time.UTC), nil
}

// Error maps service errors onto HTTP errors. Anything unrecognised is a 500
// with message.
func Error(err error, message string) error {
	var statusErr huma.StatusError
	switch {
	case errors.As(err, &statusErr):
		return err
	case errors.Is(err, service.ErrBudgetNotFound),
		errors.Is(err, service.ErrCategoryNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrBudgetExists):
		return huma.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrBudgetNotCurrentMonth):
		return huma.NewError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrInvalidAmount):
		return huma.NewError(http.StatusBadRequest, err.Error())
	}
	return huma.NewError(http.StatusInternalServerError, message, err)
}
