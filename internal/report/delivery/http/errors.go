package http

import (
	"errors"
	"net/http"

	"dashboard-srv/internal/report"
	pkgErrors "dashboard-srv/pkg/errors"
)

var (
	errEmptySelection   = pkgErrors.NewHTTPError(http.StatusBadRequest, report.ErrEmptySelection.Error())
	errInvalidSelection = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid period selection")
	errInvalidView      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid view, expected day, week or month")
	errInvalidDate      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrEmptySelection):
		return errEmptySelection
	case errors.Is(err, report.ErrInvalidSelection):
		return errInvalidSelection
	case errors.Is(err, report.ErrInvalidView):
		return errInvalidView
	default:
		panic(err)
	}
}
