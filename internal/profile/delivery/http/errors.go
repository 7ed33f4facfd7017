package http

import (
	"errors"
	"net/http"

	"task-portal/internal/model"
	"task-portal/internal/profile"
	pkgErrors "task-portal/pkg/errors"
)

var (
	errNotFound   = pkgErrors.NewHTTPError(http.StatusNotFound, "Profile not found")
	errInvalidID  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid profile id")
	errBadProfile = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "Profile has an unknown role")
)

// mapError returns nil for errors that should be served as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, profile.ErrProfileNotFound):
		return errNotFound
	case errors.Is(err, profile.ErrInvalidID):
		return errInvalidID
	case errors.Is(err, model.ErrInvalidRole):
		return errBadProfile
	}
	return nil
}
