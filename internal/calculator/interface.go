package calculator

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Calculate applies operator (+, -, *, /) to num1 and num2.
	Calculate(ctx context.Context, num1 float64, operator string, num2 float64) (float64, error)
}
