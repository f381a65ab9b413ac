package gemini

import "context"

// IGemini generates text with a Gemini model. Safe for concurrent use.
type IGemini interface {
	GenerateContent(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)
	Model() string
}
