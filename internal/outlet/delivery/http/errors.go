package http

import (
	"errors"
	"net/http"

	"coffee-assistant/internal/outlet"
)

const detailInvalidBody = "query is required."

func (h *handler) mapError(err error) (int, string) {
	switch {
	case errors.Is(err, outlet.ErrEmptyQuery):
		return http.StatusUnprocessableEntity, detailInvalidBody
	case errors.Is(err, outlet.ErrUnavailable):
		return http.StatusServiceUnavailable, "Outlet information is unavailable right now."
	default:
		return http.StatusInternalServerError, "An error occurred while querying outlets."
	}
}
