package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"coffee-assistant/internal/calculator"
	pkgCalculator "coffee-assistant/pkg/calculator"
)

// Calculate applies the operator locally.
func (uc *implUseCase) Calculate(ctx context.Context, num1 float64, operator string, num2 float64) (float64, error) {
	var result float64
	switch operator {
	case "+":
		result = num1 + num2
	case "-":
		result = num1 - num2
	case "*":
		result = num1 * num2
	case "/":
		if num2 == 0 {
			return 0, calculator.ErrDivisionByZero
		}
		result = num1 / num2
	default:
		return 0, calculator.ErrInvalidOperator
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, &calculator.RejectedError{Detail: "The result is too large to represent."}
	}
	return result, nil
}

// Calculate calls the remote service and maps its failures to domain errors.
func (uc *remoteUseCase) Calculate(ctx context.Context, num1 float64, operator string, num2 float64) (float64, error) {
	result, err := uc.client.Calculate(ctx, num1, operator, num2)
	if err == nil {
		return result, nil
	}

	var rejected *pkgCalculator.RejectedError
	switch {
	case errors.As(err, &rejected):
		return 0, &calculator.RejectedError{Detail: rejected.Detail}
	case errors.Is(err, pkgCalculator.ErrUnreachable), errors.Is(err, context.DeadlineExceeded):
		uc.l.Warnf(ctx, "internal.calculator.usecase.Calculate: %v", err)
		return 0, fmt.Errorf("%w: %v", calculator.ErrUnreachable, err)
	default:
		uc.l.Errorf(ctx, "internal.calculator.usecase.Calculate: %v", err)
		return 0, err
	}
}
