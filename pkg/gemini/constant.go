package gemini

import "time"

const (
	DefaultModel   = "gemini-1.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	apiKeyHeader = "x-goog-api-key"

	// Error bodies are echoed into logs, keep them short.
	maxErrorBody = 512
)
