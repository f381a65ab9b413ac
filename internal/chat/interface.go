package chat

import (
	"context"

	"coffee-assistant/internal/conversation"
)

// UseCase is the dispatch controller. It plans each message, calls the
// matching collaborator and records the exchange in the session transcript.
type UseCase interface {
	// HandleTurn never fails: collaborator failures become user-facing replies.
	HandleTurn(ctx context.Context, text, sessionID string) string
	Turn(ctx context.Context, in TurnInput) TurnOutput
	History(ctx context.Context, sessionID string) (conversation.Transcript, error)
}
