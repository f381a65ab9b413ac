package chat

import "coffee-assistant/internal/planner"

// TurnInput is one user message. An empty SessionID starts a new session.
type TurnInput struct {
	Message   string
	SessionID string
}

// TurnOutput is the reply to one user message together with the plan that
// produced it.
type TurnOutput struct {
	Reply     string
	SessionID string
	Plan      planner.PlanningResult
}
