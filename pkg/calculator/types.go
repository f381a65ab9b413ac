package calculator

import (
	"errors"
	"time"
)

const (
	DefaultTimeout = 5 * time.Second

	defaultRejectionDetail = "Invalid input for calculation."
)

// ErrUnreachable is returned when the service cannot be reached or does not
// answer in time.
var ErrUnreachable = errors.New("calculator service unreachable")

// ErrInvalidResponse is returned when a 200 response carries no result.
var ErrInvalidResponse = errors.New("calculator service returned no result")

// RejectedError is returned when the service refuses the input (HTTP 400).
type RejectedError struct {
	Detail string
}

func (e *RejectedError) Error() string {
	return "calculator rejected input: " + e.Detail
}

// Request is the body of POST /calculate.
type Request struct {
	Num1     float64 `json:"num1"`
	Operator string  `json:"operator"`
	Num2     float64 `json:"num2"`
}

// Response is the success body of POST /calculate.
type Response struct {
	Result *float64 `json:"result"`
}

// ErrorResponse is the failure body of POST /calculate.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
