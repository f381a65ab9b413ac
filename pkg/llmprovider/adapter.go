package llmprovider

import (
	"context"
	"errors"

	"coffee-assistant/pkg/gemini"
	"coffee-assistant/pkg/groq"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.GenerateRequest{
		Contents: make([]gemini.Content, 0, len(req.Messages)),
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = &gemini.Content{Parts: toGeminiParts(req.SystemInstruction.Parts)}
	}
	for _, msg := range req.Messages {
		role := msg.Role
		if role == RoleAssistant {
			role = "model"
		}
		geminiReq.Contents = append(geminiReq.Contents, gemini.Content{Role: role, Parts: toGeminiParts(msg.Parts)})
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		geminiReq.GenerationConfig = &gemini.GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		if errors.Is(err, gemini.ErrBlocked) {
			return nil, Permanent(err)
		}
		return nil, err
	}

	usage := &Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = resp.UsageMetadata.PromptTokenCount
		usage.OutputTokens = resp.UsageMetadata.CandidatesTokenCount
		usage.TotalTokens = resp.UsageMetadata.TotalTokenCount
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, resp.Text()),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func toGeminiParts(parts []Part) []gemini.Part {
	out := make([]gemini.Part, len(parts))
	for i, p := range parts {
		out[i] = gemini.Part{Text: p.Text}
	}
	return out
}

// GroqAdapter adapts pkg/groq, or any OpenAI-compatible server behind it,
// to llmprovider.Provider interface
type GroqAdapter struct {
	client groq.IGroq
	name   string
}

// NewGroqAdapter creates a new adapter reporting the given provider name
func NewGroqAdapter(client groq.IGroq, name string) *GroqAdapter {
	return &GroqAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	groqReq := &groq.Request{
		Messages:    make([]groq.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		groqReq.Messages = append(groqReq.Messages, groq.Message{Role: RoleSystem, Content: req.SystemInstruction.Text()})
	}
	for _, msg := range req.Messages {
		groqReq.Messages = append(groqReq.Messages, groq.Message{Role: msg.Role, Content: msg.Text()})
	}

	resp, err := a.client.GenerateContent(ctx, groqReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, resp.Choices[0].Message.Content),
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GroqAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}
