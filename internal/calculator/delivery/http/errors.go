package http

import (
	"errors"
	"net/http"

	"coffee-assistant/internal/calculator"
)

const detailInvalidBody = "num1, operator and num2 are required."

// mapError translates calculator errors into a status and a user-safe detail.
func (h *handler) mapError(err error) (int, string) {
	var rejected *calculator.RejectedError
	switch {
	case errors.As(err, &rejected):
		return http.StatusBadRequest, rejected.Detail
	case errors.Is(err, calculator.ErrUnreachable):
		return http.StatusServiceUnavailable, "Calculator is unavailable."
	default:
		return http.StatusInternalServerError, "An unexpected error occurred."
	}
}
