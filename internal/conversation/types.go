package conversation

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one utterance in a session.
type Turn struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Transcript is the ordered, append-only list of turns for one session.
type Transcript struct {
	SessionID string
	Turns     []Turn
}

// UserTurns returns the content of every user turn, oldest first.
func (t Transcript) UserTurns() []string {
	out := make([]string, 0, len(t.Turns)/2+1)
	for _, turn := range t.Turns {
		if turn.Role == RoleUser {
			out = append(out, turn.Content)
		}
	}
	return out
}

func NewUserTurn(content string, at time.Time) Turn {
	return Turn{Role: RoleUser, Content: content, CreatedAt: at}
}

func NewAssistantTurn(content string, at time.Time) Turn {
	return Turn{Role: RoleAssistant, Content: content, CreatedAt: at}
}
