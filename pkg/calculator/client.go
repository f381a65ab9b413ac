package calculator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client calls a remote calculator service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the service at baseURL. timeout bounds each call.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Calculate posts the operation and returns the numeric result.
func (c *Client) Calculate(ctx context.Context, num1 float64, operator string, num2 float64) (float64, error) {
	body, err := json.Marshal(Request{Num1: num1, Operator: operator, Num2: num2})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/calculate", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		var out Response
		if err := json.Unmarshal(raw, &out); err != nil {
			return 0, fmt.Errorf("failed to decode response: %w", err)
		}
		if out.Result == nil {
			return 0, ErrInvalidResponse
		}
		return *out.Result, nil

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		var errResp ErrorResponse
		if err := json.Unmarshal(raw, &errResp); err != nil || errResp.Detail == "" {
			return 0, &RejectedError{Detail: defaultRejectionDetail}
		}
		return 0, &RejectedError{Detail: errResp.Detail}

	default:
		return 0, fmt.Errorf("calculator API error %d: %s", resp.StatusCode, string(raw))
	}
}
