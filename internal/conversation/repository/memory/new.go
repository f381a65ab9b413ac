package memory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"coffee-assistant/internal/conversation"
	"coffee-assistant/internal/conversation/repository"
)

// Options bound the store. MaxSessions 0 keeps every session, TTL 0 never
// expires one. Reads never refresh a session, so both evict the least
// recently written session first.
type Options struct {
	MaxSessions int
	TTL         time.Duration
}

type implRepository struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, conversation.Transcript]
}

var _ repository.Repository = (*implRepository)(nil)

// New creates an in-process transcript store.
func New(opts Options) *implRepository {
	return &implRepository{
		sessions: expirable.NewLRU[string, conversation.Transcript](opts.MaxSessions, nil, opts.TTL),
	}
}
