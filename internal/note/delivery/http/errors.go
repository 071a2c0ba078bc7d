package http

import (
	"errors"

	"readshelf-share/internal/note"
	pkgErrors "readshelf-share/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, note.ErrNotFound), errors.Is(err, note.ErrAmbiguous):
		return pkgErrors.ErrNotFound
	case errors.Is(err, note.ErrInvalidCategory):
		return pkgErrors.NewHTTPError(400, "invalid category")
	case errors.Is(err, note.ErrUnauthenticated):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, note.ErrEmptyComment):
		return pkgErrors.NewHTTPError(400, "comment text is required")
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// commentErrorCode is the query flag the share page turns into a form message.
func commentErrorCode(err error) string {
	switch {
	case errors.Is(err, note.ErrUnauthenticated):
		return "signin"
	case errors.Is(err, note.ErrEmptyComment):
		return "empty"
	default:
		return "failed"
	}
}
