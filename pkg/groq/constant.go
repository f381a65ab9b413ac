package groq

import "time"

const (
	// DefaultBaseURL is the default Groq OpenAI-compatible endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the default model to use
	DefaultModel = "llama3-8b-8192"

	DefaultTimeout = 60 * time.Second
)
