package http

import (
	"coffee-assistant/internal/chat"
	"coffee-assistant/internal/conversation"
	"coffee-assistant/pkg/response"
)

type chatReq struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

func (r chatReq) toInput() chat.TurnInput {
	return chat.TurnInput{Message: r.Message, SessionID: r.SessionID}
}

type chatResp struct {
	Reply         string         `json:"reply"`
	SessionID     string         `json:"session_id"`
	Intent        string         `json:"intent"`
	Action        string         `json:"action"`
	Confidence    float64        `json:"confidence"`
	ExtractedData map[string]any `json:"extracted_data,omitempty"`
}

func (h *handler) newChatResp(out chat.TurnOutput) chatResp {
	return chatResp{
		Reply:         out.Reply,
		SessionID:     out.SessionID,
		Intent:        string(out.Plan.Intent),
		Action:        string(out.Plan.Action),
		Confidence:    out.Plan.Confidence,
		ExtractedData: out.Plan.ExtractedData(),
	}
}

type turnResp struct {
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	CreatedAt response.DateTime `json:"created_at"`
}

type transcriptResp struct {
	SessionID string     `json:"session_id"`
	Turns     []turnResp `json:"turns"`
}

func (h *handler) newTranscriptResp(t conversation.Transcript) transcriptResp {
	turns := make([]turnResp, 0, len(t.Turns))
	for _, turn := range t.Turns {
		turns = append(turns, turnResp{
			Role:      string(turn.Role),
			Content:   turn.Content,
			CreatedAt: response.DateTime(turn.CreatedAt),
		})
	}
	return transcriptResp{SessionID: t.SessionID, Turns: turns}
}
