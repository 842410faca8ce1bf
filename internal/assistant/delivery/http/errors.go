package http

import (
	"errors"
	"net/http"

	"fms-dashboard/internal/assistant"
	pkgErrors "fms-dashboard/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyQuestion):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, assistant.ErrUnavailable):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, assistant.ErrUnavailable.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
