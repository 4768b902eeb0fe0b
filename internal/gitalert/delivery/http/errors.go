package http

import (
	"teamboard/internal/gitalert"
	pkgErrors "teamboard/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case gitalert.ErrAlertNotFound:
		return pkgErrors.ErrNotFound
	case gitalert.ErrInvalidEventType:
		return pkgErrors.NewHTTPError(400, "invalid alert type")
	case gitalert.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(400, "invalid alert status")
	case gitalert.ErrNotRecipient:
		return pkgErrors.NewHTTPError(403, "not a recipient of this alert")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
