package redis

import (
	"time"

	"github.com/redis/go-redis/v9"

	"coffee-assistant/internal/conversation/repository"
	"coffee-assistant/pkg/log"
)

const defaultKeyPrefix = "coffee:conversation:"

// Options configure the Redis transcript store. TTL 0 keeps sessions forever.
type Options struct {
	KeyPrefix string
	TTL       time.Duration
}

type implRepository struct {
	client *redis.Client
	opts   Options
	l      log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a transcript store keeping one Redis list per session.
func New(client *redis.Client, opts Options, l log.Logger) *implRepository {
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = defaultKeyPrefix
	}
	return &implRepository{client: client, opts: opts, l: l}
}

func (r *implRepository) key(sessionID string) string {
	return r.opts.KeyPrefix + sessionID
}
