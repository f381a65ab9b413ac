package calculator

import "errors"

// User-facing rejection details.
const (
	DetailDivisionByZero  = "Division by zero is not allowed."
	DetailInvalidOperator = "Invalid operator. Supported operators are +, -, * and /."
)

var (
	ErrDivisionByZero  = &RejectedError{Detail: DetailDivisionByZero}
	ErrInvalidOperator = &RejectedError{Detail: DetailInvalidOperator}

	// ErrUnreachable means the calculator could not be reached or timed out.
	ErrUnreachable = errors.New("calculator unreachable")
)

// RejectedError means the calculator refused the input. Detail is safe to
// show to the user.
type RejectedError struct {
	Detail string
}

func (e *RejectedError) Error() string {
	return "calculation rejected: " + e.Detail
}
