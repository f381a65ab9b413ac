package planner

import (
	"context"
	"fmt"
)

// Plan classifies text, extracts slots for the chosen intent and decides the
// next action. It never touches conversation state.
func (p *RulePlanner) Plan(text string) PlanningResult {
	return p.plan(text, nil)
}

// PlanWithHistory behaves like Plan, but an outlet turn without a location
// inherits the most recent specific outlet named in priorUserTurns (oldest
// first). City-level mentions are never carried and stop the search.
func (p *RulePlanner) PlanWithHistory(text string, priorUserTurns []string) PlanningResult {
	return p.plan(text, priorUserTurns)
}

func (p *RulePlanner) plan(text string, prior []string) PlanningResult {
	intent := p.Classify(text)

	switch intent {
	case IntentCalculation:
		return p.planCalculation(text)
	case IntentOutletInfo:
		return p.planOutlet(text, prior)
	default:
		return PlanningResult{
			Text:       text,
			Intent:     intent,
			Action:     ActionRespondDirectly,
			Confidence: ConfidenceRespondDirectly,
		}
	}
}

func (p *RulePlanner) planCalculation(text string) PlanningResult {
	data, ok := p.ExtractCalculation(text)
	if !ok {
		return PlanningResult{
			Text:        text,
			Intent:      IntentCalculation,
			Action:      ActionAskForInfo,
			MissingInfo: MsgCalculationMissing,
			Confidence:  ConfidenceCalculatorMissing,
		}
	}
	return PlanningResult{
		Text:        text,
		Intent:      IntentCalculation,
		Action:      ActionUseCalculator,
		Calculation: &data,
		Confidence:  ConfidenceCalculator,
	}
}

func (p *RulePlanner) planOutlet(text string, prior []string) PlanningResult {
	result := PlanningResult{Text: text, Intent: IntentOutletInfo, Action: ActionAskForInfo}

	data, ok := p.ExtractOutlet(text)
	if ok {
		d := data
		result.Outlet = &d
	}

	if data.Location == "" && prior != nil {
		if loc := p.lastSpecificOutlet(prior); loc != "" {
			data.Location = loc
			result.Outlet = &data
			result.Action = ActionUseOutletLookup
			result.Confidence = ConfidenceOutletCarriedOver
			result.CarriedOver = true
			return result
		}
	}

	switch {
	case IsSpecificOutlet(data.Location):
		result.Action = ActionUseOutletLookup
		result.Confidence = ConfidenceOutletLookup
	case ok && data.InfoType != "":
		result.MissingInfo = askWithInfo(data.Location, data.InfoType)
		result.Confidence = ConfidenceOutletCityLevel
	case ok && IsCityLevel(data.Location):
		result.MissingInfo = fmt.Sprintf(MsgOutletCityWithoutInfo, data.Location, outletExamples(data.Location))
		result.Confidence = ConfidenceOutletCityLevel
	default:
		result.MissingInfo = MsgOutletUnresolved
		result.Confidence = ConfidenceOutletUnresolved
	}
	return result
}

// lastSpecificOutlet scans prior outlet turns newest first and returns the
// first location found if it names a single outlet.
func (p *RulePlanner) lastSpecificOutlet(prior []string) string {
	for i := len(prior) - 1; i >= 0; i-- {
		if p.Classify(prior[i]) != IntentOutletInfo {
			continue
		}
		data, ok := p.ExtractOutlet(prior[i])
		if !ok || data.Location == "" {
			continue
		}
		if IsSpecificOutlet(data.Location) {
			return data.Location
		}
		return ""
	}
	return ""
}

func askWithInfo(location, infoType string) string {
	info := HumanizeInfoType(infoType)
	if location == "" {
		return fmt.Sprintf(MsgOutletAnyWithInfo, outletExamples(location), info)
	}
	return fmt.Sprintf(MsgOutletCityWithInfo, location, outletExamples(location), info)
}

func outletExamples(location string) string {
	examples, ok := cityOutletExamples[location]
	if !ok {
		return ""
	}
	return " (e.g., " + examples + ")"
}

// Dispatch invokes the handler method matching r.Action.
func (r PlanningResult) Dispatch(ctx context.Context, h ActionHandler) (string, error) {
	switch r.Action {
	case ActionAskForInfo:
		return h.AskForInfo(ctx, r)
	case ActionUseCalculator:
		return h.UseCalculator(ctx, r)
	case ActionUseOutletLookup:
		return h.UseOutletLookup(ctx, r)
	case ActionRespondDirectly:
		return h.RespondDirectly(ctx, r)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, r.Action)
	}
}
