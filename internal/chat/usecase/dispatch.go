package usecase

import (
	"context"
	"fmt"
	"strings"

	"coffee-assistant/internal/chat"
	"coffee-assistant/internal/conversation"
	"coffee-assistant/internal/planner"
	"coffee-assistant/pkg/llmprovider"
)

// dispatcher handles the action of a single turn. transcript holds the turns
// before this one.
type dispatcher struct {
	uc         *implUseCase
	transcript conversation.Transcript
}

var _ planner.ActionHandler = (*dispatcher)(nil)

func (d *dispatcher) AskForInfo(ctx context.Context, r planner.PlanningResult) (string, error) {
	if r.MissingInfo == "" {
		return chat.MsgNeedMoreInfo, nil
	}
	return r.MissingInfo, nil
}

func (d *dispatcher) UseCalculator(ctx context.Context, r planner.PlanningResult) (string, error) {
	if r.Calculation == nil {
		return chat.MsgRephraseCalc, nil
	}
	c := *r.Calculation

	ctx, cancel := withOptionalTimeout(ctx, d.uc.opts.CalculatorTimeout)
	defer cancel()

	result, err := d.uc.deps.Calculator.Calculate(ctx, c.Num1, c.Operator, c.Num2)
	if err != nil {
		return "", &chat.CollaboratorError{Collaborator: chat.CollaboratorCalculator, Err: err}
	}

	return fmt.Sprintf(chat.MsgCalculationResult,
		formatNumber(c.Num1), c.Operator, formatNumber(c.Num2), formatNumber(result)), nil
}

func (d *dispatcher) UseOutletLookup(ctx context.Context, r planner.PlanningResult) (string, error) {
	if r.Outlet == nil {
		return chat.MsgNeedOutletDetails, nil
	}

	ctx, cancel := withOptionalTimeout(ctx, d.uc.opts.OutletTimeout)
	defer cancel()

	reply, err := d.uc.deps.Outlet.Lookup(ctx, r.Outlet.Location, r.Outlet.InfoType)
	if err != nil {
		return "", &chat.CollaboratorError{Collaborator: chat.CollaboratorOutlet, Err: err}
	}
	return reply, nil
}

// RespondDirectly sends the prior transcript and the new message to the chat model.
func (d *dispatcher) RespondDirectly(ctx context.Context, r planner.PlanningResult) (string, error) {
	if d.uc.deps.LLM == nil {
		return "", &chat.CollaboratorError{Collaborator: chat.CollaboratorLLM, Err: chat.ErrLLMNotConfigured}
	}

	messages := make([]llmprovider.Message, 0, len(d.transcript.Turns)+1)
	for _, turn := range d.transcript.Turns {
		role := llmprovider.RoleUser
		if turn.Role == conversation.RoleAssistant {
			role = llmprovider.RoleAssistant
		}
		messages = append(messages, llmprovider.TextMessage(role, turn.Content))
	}
	messages = append(messages, llmprovider.TextMessage(llmprovider.RoleUser, r.Text))

	system := llmprovider.TextMessage(llmprovider.RoleSystem, d.uc.opts.SystemPrompt)
	resp, err := d.uc.deps.LLM.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          messages,
		Temperature:       chat.DefaultChatTemperature,
	})
	if err != nil {
		return "", &chat.CollaboratorError{Collaborator: chat.CollaboratorLLM, Err: err}
	}

	return strings.TrimSpace(resp.Content.Text()), nil
}
