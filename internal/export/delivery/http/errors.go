package http

import (
	"errors"
	"net/http"

	"dashboard-srv/internal/export"
	"dashboard-srv/internal/report"
	pkgErrors "dashboard-srv/pkg/errors"
)

var (
	errEmptySelection   = pkgErrors.NewHTTPError(http.StatusBadRequest, report.ErrEmptySelection.Error())
	errInvalidSelection = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid period selection")
	errInvalidView      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid view, expected day, week or month")
	errInvalidDate      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	errInvalidKind      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid export kind, expected daily, publications or users")
	errStorageDisabled  = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Export storage is not configured")
	errExportFailed     = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Export failed")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrEmptySelection):
		return errEmptySelection
	case errors.Is(err, report.ErrInvalidSelection):
		return errInvalidSelection
	case errors.Is(err, report.ErrInvalidView):
		return errInvalidView
	case errors.Is(err, export.ErrInvalidKind):
		return errInvalidKind
	case errors.Is(err, export.ErrStorageDisabled):
		return errStorageDisabled
	case errors.Is(err, export.ErrUploadFailed),
		errors.Is(err, export.ErrPresignFailed):
		return errExportFailed
	default:
		panic(err)
	}
}
