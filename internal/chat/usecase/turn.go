package usecase

import (
	"context"
	"errors"
	"fmt"

	"coffee-assistant/internal/chat"
	"coffee-assistant/internal/conversation"
	"coffee-assistant/internal/metrics"
	"coffee-assistant/internal/planner"
	"coffee-assistant/pkg/log"
)

func (uc *implUseCase) HandleTurn(ctx context.Context, text, sessionID string) string {
	return uc.Turn(ctx, chat.TurnInput{Message: text, SessionID: sessionID}).Reply
}

// Turn plans and answers one message, then appends exactly one user turn and
// one assistant turn to the session.
func (uc *implUseCase) Turn(ctx context.Context, in chat.TurnInput) chat.TurnOutput {
	sessionID := in.SessionID
	if sessionID == "" {
		sessionID = uc.newID()
	}
	ctx = log.WithSessionID(ctx, sessionID)
	start := uc.now()

	transcript, err := uc.deps.Repo.GetOrCreate(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.chat.usecase.Turn: load transcript: %v", err)
		metrics.RecordCollaboratorError(chat.CollaboratorStore, chat.CategoryUnknown)
		transcript = conversation.Transcript{SessionID: sessionID}
	}

	plan, reply := uc.respond(ctx, in.Message, transcript)

	err = uc.deps.Repo.Append(ctx, sessionID,
		conversation.NewUserTurn(in.Message, start),
		conversation.NewAssistantTurn(reply, uc.now()),
	)
	if err != nil {
		uc.l.Errorf(ctx, "internal.chat.usecase.Turn: append transcript: %v", err)
		metrics.RecordCollaboratorError(chat.CollaboratorStore, chat.CategoryUnknown)
	}

	metrics.RecordTurn(string(plan.Intent), string(plan.Action), uc.now().Sub(start))
	uc.l.Infof(ctx, "internal.chat.usecase.Turn: intent=%s action=%s confidence=%.2f carried=%t",
		plan.Intent, plan.Action, plan.Confidence, plan.CarriedOver)

	return chat.TurnOutput{Reply: reply, SessionID: sessionID, Plan: plan}
}

// respond never panics. A failure anywhere in planning or dispatch becomes a
// user-facing reply.
func (uc *implUseCase) respond(ctx context.Context, text string, transcript conversation.Transcript) (plan planner.PlanningResult, reply string) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "internal.chat.usecase.respond: recovered panic: %v", r)
			metrics.RecordCollaboratorError("", chat.CategoryUnknown)
			if plan.Intent == "" {
				plan = planner.PlanningResult{Text: text, Intent: planner.IntentUnknown}
			}
			reply = chat.MsgUnknownFailure
		}
	}()

	if uc.opts.CarryOverSlots {
		plan = uc.deps.Planner.PlanWithHistory(text, transcript.UserTurns())
	} else {
		plan = uc.deps.Planner.Plan(text)
	}

	reply, err := plan.Dispatch(ctx, &dispatcher{uc: uc, transcript: transcript})
	if err != nil {
		return plan, uc.replyForError(ctx, err)
	}
	return plan, reply
}

func (uc *implUseCase) replyForError(ctx context.Context, err error) string {
	category := chat.Categorize(err)

	collaborator := ""
	var ce *chat.CollaboratorError
	if errors.As(err, &ce) {
		collaborator = ce.Collaborator
	}

	metrics.RecordCollaboratorError(collaborator, category)
	if category == chat.CategoryUnknown {
		uc.l.Errorf(ctx, "internal.chat.usecase.replyForError: %v", err)
	} else {
		uc.l.Warnf(ctx, "internal.chat.usecase.replyForError: %s: %v", category, err)
	}

	switch {
	case category == chat.CategoryRejected:
		return fmt.Sprintf(chat.MsgCalculationError, rejectionDetail(err))
	case category == chat.CategoryUnreachable && collaborator == chat.CollaboratorCalculator:
		return chat.MsgCalculatorDown
	case category == chat.CategoryUnreachable && collaborator == chat.CollaboratorOutlet:
		return chat.MsgOutletDown
	case category == chat.CategoryUnreachable && collaborator == chat.CollaboratorLLM:
		return chat.MsgChatDown
	default:
		return chat.MsgUnknownFailure
	}
}

func (uc *implUseCase) History(ctx context.Context, sessionID string) (conversation.Transcript, error) {
	return uc.deps.Repo.Get(ctx, sessionID)
}
