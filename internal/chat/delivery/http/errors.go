package http

import (
	"errors"
	"net/http"

	"coffee-assistant/internal/conversation"
	pkgErrors "coffee-assistant/pkg/errors"
)

var (
	errInvalidMessage  = pkgErrors.NewHTTPError(http.StatusBadRequest, "message is required")
	errSessionNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "session not found")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, conversation.ErrSessionNotFound), errors.Is(err, conversation.ErrEmptySessionID):
		return errSessionNotFound
	default:
		return pkgErrors.ErrInternalServerError
	}
}
