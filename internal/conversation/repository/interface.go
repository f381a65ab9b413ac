package repository

import (
	"context"

	"coffee-assistant/internal/conversation"
)

// Repository stores one transcript per session id. Implementations are safe
// for concurrent use, and transcripts of distinct sessions never share state.
//
//go:generate mockery --name Repository
type Repository interface {
	// GetOrCreate returns the transcript for sessionID, or an empty one if none
	// exists. It stores nothing: a session exists once Append has written to it.
	GetOrCreate(ctx context.Context, sessionID string) (conversation.Transcript, error)

	// Get returns conversation.ErrSessionNotFound for sessions with no turns.
	Get(ctx context.Context, sessionID string) (conversation.Transcript, error)

	// Append adds turns to the end of the session's transcript, creating it if needed.
	Append(ctx context.Context, sessionID string, turns ...conversation.Turn) error
}
