package http

import (
	"errors"
	"net/http"

	"coffee-assistant/internal/product"
)

const detailInvalidBody = "query is required."

func (h *handler) mapError(err error) (int, string) {
	switch {
	case errors.Is(err, product.ErrEmptyQuery):
		return http.StatusUnprocessableEntity, detailInvalidBody
	case errors.Is(err, product.ErrUnavailable):
		return http.StatusServiceUnavailable, "Product search is unavailable right now."
	default:
		return http.StatusInternalServerError, "An error occurred while searching products."
	}
}
