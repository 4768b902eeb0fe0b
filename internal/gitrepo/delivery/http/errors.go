package http

import (
	"teamboard/internal/gitrepo"
	pkgErrors "teamboard/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case gitrepo.ErrRepositoryNotFound:
		return pkgErrors.ErrNotFound
	case gitrepo.ErrDuplicateRemote:
		return pkgErrors.NewHTTPError(409, "remote already linked to this project")
	case gitrepo.ErrInvalidProvider:
		return pkgErrors.NewHTTPError(400, "invalid provider")
	case gitrepo.ErrProjectNotFound:
		return pkgErrors.NewHTTPError(400, "project not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
