package http

import (
	"errors"
	"net/http"

	"director-agent/internal/router"
	pkgErrors "director-agent/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Only an unrecognised classifier reply is the caller's fault; everything
// else is reported as 500 with its message.
func (h *handler) mapError(err error) error {
	var invalid *router.InvalidReplyError
	switch {
	case errors.As(err, &invalid):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, invalid.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
