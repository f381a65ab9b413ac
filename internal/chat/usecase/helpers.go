package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"coffee-assistant/internal/calculator"
)

func newSessionID() string {
	return uuid.NewString()
}

// formatNumber prints whole numbers without a decimal part: 15, 2.5, -0.25.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func withOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func rejectionDetail(err error) string {
	var rejected *calculator.RejectedError
	if errors.As(err, &rejected) {
		return rejected.Detail
	}
	return err.Error()
}
