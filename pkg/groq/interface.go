package groq

import "context"

// IGroq defines the interface for an OpenAI-compatible chat completions client.
type IGroq interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
