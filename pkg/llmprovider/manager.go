package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"coffee-assistant/pkg/log"
)

// Manager tries providers in priority order with per-provider retries.
// Safe for concurrent use once built.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // bounds the whole fallback chain
}

func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateContent returns the first non-empty response. A cancelled or expired
// ctx stops the chain and its error is kept in the returned chain.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	tried := 0
	for _, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: gave up after %d provider(s): %w", ErrAllProvidersFailed, tried, err)
		}

		tried++
		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry backs off linearly between attempts. Permanent errors
// and an expired ctx end the loop early.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error

	attempts := max(m.config.RetryAttempts, 1)
	attempt := 0
	for attempt < attempts {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * m.config.RetryDelay):
			case <-ctx.Done():
				return nil, &ProviderError{Provider: provider.Name(), Attempts: attempt, Err: ctx.Err()}
			}
		}
		attempt++

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil && (resp == nil || strings.TrimSpace(resp.Content.Text()) == "") {
			err = ErrEmptyResponse
		}
		if err == nil {
			return resp, nil
		}

		lastErr = err
		if IsPermanent(err) || ctx.Err() != nil {
			break
		}
	}

	return nil, &ProviderError{Provider: provider.Name(), Attempts: attempt, Err: lastErr}
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "pkg.llmprovider.GenerateContent: provider=%s model=%s input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), in, out)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "pkg.llmprovider.GenerateContent: provider=%s model=%s failed: %v",
		provider.Name(), provider.Model(), err)
}
