package planner

import "context"

// Planner turns one user message into a PlanningResult.
type Planner interface {
	Classify(text string) Intent
	ExtractCalculation(text string) (CalculationData, bool)
	ExtractOutlet(text string) (OutletData, bool)
	Plan(text string) PlanningResult
	PlanWithHistory(text string, priorUserTurns []string) PlanningResult
}

// ActionHandler performs the work of each action. Dispatch calls exactly one
// method per PlanningResult.
type ActionHandler interface {
	AskForInfo(ctx context.Context, r PlanningResult) (string, error)
	UseCalculator(ctx context.Context, r PlanningResult) (string, error)
	UseOutletLookup(ctx context.Context, r PlanningResult) (string, error)
	RespondDirectly(ctx context.Context, r PlanningResult) (string, error)
}

// RulePlanner is the ordered, first-match-wins rule planner.
type RulePlanner struct {
	rules []rule
}

var _ Planner = (*RulePlanner)(nil)

// New creates a RulePlanner with the built-in rule list.
func New() *RulePlanner {
	return &RulePlanner{rules: defaultRules()}
}
