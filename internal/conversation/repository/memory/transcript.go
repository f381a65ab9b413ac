package memory

import (
	"context"

	"coffee-assistant/internal/conversation"
)

func (r *implRepository) GetOrCreate(ctx context.Context, sessionID string) (conversation.Transcript, error) {
	if sessionID == "" {
		return conversation.Transcript{}, conversation.ErrEmptySessionID
	}

	t, ok := r.sessions.Peek(sessionID)
	if !ok {
		return conversation.Transcript{SessionID: sessionID}, nil
	}
	return clone(t), nil
}

func (r *implRepository) Get(ctx context.Context, sessionID string) (conversation.Transcript, error) {
	if sessionID == "" {
		return conversation.Transcript{}, conversation.ErrEmptySessionID
	}

	t, ok := r.sessions.Peek(sessionID)
	if !ok {
		return conversation.Transcript{}, conversation.ErrSessionNotFound
	}
	return clone(t), nil
}

func (r *implRepository) Append(ctx context.Context, sessionID string, turns ...conversation.Turn) error {
	if sessionID == "" {
		return conversation.ErrEmptySessionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.sessions.Peek(sessionID)
	if !ok {
		t = conversation.Transcript{SessionID: sessionID}
	}

	updated := make([]conversation.Turn, 0, len(t.Turns)+len(turns))
	updated = append(updated, t.Turns...)
	updated = append(updated, turns...)
	t.Turns = updated

	// Re-adding refreshes both recency and expiry.
	r.sessions.Add(sessionID, t)
	return nil
}

// Len returns the number of live sessions.
func (r *implRepository) Len() int {
	return r.sessions.Len()
}

func clone(t conversation.Transcript) conversation.Transcript {
	out := conversation.Transcript{SessionID: t.SessionID}
	if len(t.Turns) > 0 {
		out.Turns = append([]conversation.Turn(nil), t.Turns...)
	}
	return out
}
