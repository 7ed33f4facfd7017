package http

import (
	"context"
	"errors"
	"net/http"

	pkgErrors "task-portal/pkg/errors"
)

// mapError translates task store failures into HTTP errors. The store owns
// the error type, so anything it reports is surfaced as a bad gateway with
// its own message.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return pkgErrors.NewHTTPError(http.StatusGatewayTimeout, "task store timed out")
	case errors.Is(err, context.Canceled):
		return pkgErrors.NewHTTPError(499, "request canceled")
	default:
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	}
}
