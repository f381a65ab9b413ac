package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrBlocked means the prompt or every candidate was refused by safety filters.
var ErrBlocked = errors.New("gemini: response blocked")

// Client implements IGemini over the generateContent REST endpoint.
type Client struct {
	apiKey string
	model  string
	apiURL string
	client *http.Client
}

var _ IGemini = (*Client)(nil)

// New creates a Gemini client. Only APIKey is required.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		apiURL: strings.TrimRight(cfg.APIURL, "/"),
		client: httpClient,
	}, nil
}

func (c *Client) Model() string {
	return c.model
}

// GenerateContent runs one generation. The key travels in a header so it
// never shows up in a logged URL.
func (c *Client) GenerateContent(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.apiURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, raw)
	}

	var result GenerateResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}
	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return nil, fmt.Errorf("%w: %s", ErrBlocked, result.PromptFeedback.BlockReason)
	}
	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("gemini: empty candidates")
	}
	if result.Text() == "" && result.Candidates[0].FinishReason == FinishReasonSafety {
		return nil, fmt.Errorf("%w: %s", ErrBlocked, FinishReasonSafety)
	}

	return &result, nil
}

func apiError(status int, raw []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error.Message != "" {
		return fmt.Errorf("gemini: API error %d (%s): %s", status, errResp.Error.Status, errResp.Error.Message)
	}
	if len(raw) > maxErrorBody {
		raw = raw[:maxErrorBody]
	}
	return fmt.Errorf("gemini: API error %d: %s", status, string(raw))
}
