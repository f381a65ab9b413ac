package usecase

import (
	"context"
	"time"

	"coffee-assistant/internal/calculator"
	"coffee-assistant/internal/chat"
	"coffee-assistant/internal/conversation/repository"
	"coffee-assistant/internal/outlet"
	"coffee-assistant/internal/planner"
	"coffee-assistant/pkg/llmprovider"
	"coffee-assistant/pkg/log"
)

// LLM generates open-ended replies.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Options tune the controller. Zero timeouts leave collaborator calls bounded
// only by the caller's context.
type Options struct {
	CarryOverSlots    bool
	CalculatorTimeout time.Duration
	OutletTimeout     time.Duration
	SystemPrompt      string
}

// Deps are the controller's collaborators. LLM may be nil.
type Deps struct {
	Planner    planner.Planner
	Repo       repository.Repository
	Calculator calculator.UseCase
	Outlet     outlet.UseCase
	LLM        LLM
}

type implUseCase struct {
	l     log.Logger
	deps  Deps
	opts  Options
	now   func() time.Time
	newID func() string
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates the dispatch controller.
func New(l log.Logger, deps Deps, opts Options) *implUseCase {
	if opts.SystemPrompt == "" {
		opts.SystemPrompt = chat.DefaultSystemPrompt
	}
	return &implUseCase{
		l:     l,
		deps:  deps,
		opts:  opts,
		now:   time.Now,
		newID: newSessionID,
	}
}
