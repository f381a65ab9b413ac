package chat

import (
	"context"
	"errors"

	"coffee-assistant/internal/calculator"
	"coffee-assistant/internal/outlet"
	"coffee-assistant/pkg/llmprovider"
)

// Collaborators.
const (
	CollaboratorCalculator = "calculator"
	CollaboratorOutlet     = "outlet"
	CollaboratorLLM        = "llm"
	CollaboratorStore      = "store"
)

// Failure categories.
const (
	CategoryUnreachable = "unreachable"
	CategoryRejected    = "rejected"
	CategoryUnknown     = "unknown"
)

var ErrLLMNotConfigured = errors.New("no chat model configured")

// CollaboratorError tags a failure with the collaborator that produced it.
type CollaboratorError struct {
	Collaborator string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return e.Collaborator + ": " + e.Err.Error()
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// Categorize sorts a dispatch failure into unreachable, rejected or unknown.
func Categorize(err error) string {
	var rejected *calculator.RejectedError
	switch {
	case errors.As(err, &rejected):
		return CategoryRejected
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, calculator.ErrUnreachable),
		errors.Is(err, outlet.ErrUnavailable),
		errors.Is(err, llmprovider.ErrAllProvidersFailed),
		errors.Is(err, llmprovider.ErrNoProvidersConfigured),
		errors.Is(err, ErrLLMNotConfigured):
		return CategoryUnreachable
	default:
		return CategoryUnknown
	}
}
