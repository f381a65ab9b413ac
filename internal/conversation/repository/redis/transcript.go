package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"coffee-assistant/internal/conversation"
)

// GetOrCreate reads the session list. A session with no turns has no key, so
// an empty transcript is returned without writing.
func (r *implRepository) GetOrCreate(ctx context.Context, sessionID string) (conversation.Transcript, error) {
	if sessionID == "" {
		return conversation.Transcript{}, conversation.ErrEmptySessionID
	}
	return r.load(ctx, sessionID)
}

func (r *implRepository) Get(ctx context.Context, sessionID string) (conversation.Transcript, error) {
	if sessionID == "" {
		return conversation.Transcript{}, conversation.ErrEmptySessionID
	}

	n, err := r.client.Exists(ctx, r.key(sessionID)).Result()
	if err != nil {
		return conversation.Transcript{}, fmt.Errorf("redis exists: %w", err)
	}
	if n == 0 {
		return conversation.Transcript{}, conversation.ErrSessionNotFound
	}
	return r.load(ctx, sessionID)
}

// Append pushes the turns and refreshes the session expiry in one transaction.
func (r *implRepository) Append(ctx context.Context, sessionID string, turns ...conversation.Turn) error {
	if sessionID == "" {
		return conversation.ErrEmptySessionID
	}
	if len(turns) == 0 {
		return nil
	}

	values := make([]any, len(turns))
	for i, turn := range turns {
		raw, err := json.Marshal(turn)
		if err != nil {
			return fmt.Errorf("marshal turn: %w", err)
		}
		values[i] = raw
	}

	key := r.key(sessionID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, values...)
		if r.opts.TTL > 0 {
			pipe.Expire(ctx, key, r.opts.TTL)
		}
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "internal.conversation.repository.redis.Append: %v", err)
		return fmt.Errorf("redis append: %w", err)
	}
	return nil
}

func (r *implRepository) load(ctx context.Context, sessionID string) (conversation.Transcript, error) {
	raw, err := r.client.LRange(ctx, r.key(sessionID), 0, -1).Result()
	if err != nil {
		return conversation.Transcript{}, fmt.Errorf("redis lrange: %w", err)
	}

	t := conversation.Transcript{SessionID: sessionID}
	if len(raw) == 0 {
		return t, nil
	}

	t.Turns = make([]conversation.Turn, 0, len(raw))
	for _, item := range raw {
		var turn conversation.Turn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			r.l.Warnf(ctx, "internal.conversation.repository.redis.load: skipping corrupt turn in %s: %v", sessionID, err)
			continue
		}
		t.Turns = append(t.Turns, turn)
	}
	return t, nil
}
