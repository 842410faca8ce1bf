package http

import (
	"errors"
	"net/http"

	"fms-dashboard/internal/dashboard"
	pkgErrors "fms-dashboard/pkg/errors"
)

// mapError translates dashboard errors into HTTP errors from pkg/errors.
// Unknown errors become 500 without exposing their text.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, dashboard.ErrForbidden):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, dashboard.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, dashboard.ErrNoAssignments),
		errors.Is(err, dashboard.ErrInvalidAssignment),
		errors.Is(err, dashboard.ErrEmptyTaskNo),
		errors.Is(err, dashboard.ErrInvalidDateRange),
		errors.Is(err, dashboard.ErrInvalidExportType),
		errors.Is(err, dashboard.ErrInvalidTab),
		errors.Is(err, dashboard.ErrNoRecords):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, dashboard.ErrStoreUnavailable):
		return pkgErrors.ErrBadGateway
	default:
		return pkgErrors.ErrInternalServerError
	}
}
