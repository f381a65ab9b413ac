package planner

import "strings"

// Intent is the coarse category of a user message.
type Intent string

const (
	IntentCalculation Intent = "calculation"
	IntentOutletInfo  Intent = "outlet_info"
	IntentGeneralChat Intent = "general_chat"
	IntentUnknown     Intent = "unknown"
)

// Action is the next step the dispatch layer takes for a turn.
type Action string

const (
	ActionAskForInfo      Action = "ask_for_info"
	ActionUseCalculator   Action = "use_calculator"
	ActionUseOutletLookup Action = "use_outlet_lookup"
	ActionRespondDirectly Action = "respond_directly"
)

// Outlet locations recognised by the slot extractor.
const (
	LocationSS2          = "SS2"
	LocationSS15         = "SS15"
	LocationDamansara    = "Damansara"
	LocationPetalingJaya = "Petaling Jaya"
	LocationKualaLumpur  = "Kuala Lumpur"
)

// Outlet info types recognised by the slot extractor.
const (
	InfoOpeningHours = "opening_hours"
	InfoClosingHours = "closing_hours"
	InfoHours        = "hours"
)

// Arithmetic operators.
const (
	OpAdd      = "+"
	OpSubtract = "-"
	OpMultiply = "*"
	OpDivide   = "/"
)

// CalculationData holds the slots of a calculation turn. All three fields are
// always set; a failed extraction yields no CalculationData at all.
type CalculationData struct {
	Num1     float64 `json:"num1"`
	Operator string  `json:"operator"`
	Num2     float64 `json:"num2"`
}

// OutletData holds the slots of an outlet turn. Empty string means absent;
// at least one of the two is set.
type OutletData struct {
	Location string `json:"location,omitempty"`
	InfoType string `json:"info_type,omitempty"`
}

// PlanningResult is the planner's decision for one turn.
type PlanningResult struct {
	Text        string           `json:"-"`
	Intent      Intent           `json:"intent"`
	Action      Action           `json:"action"`
	MissingInfo string           `json:"missing_info,omitempty"`
	Calculation *CalculationData `json:"calculation,omitempty"`
	Outlet      *OutletData      `json:"outlet,omitempty"`
	Confidence  float64          `json:"confidence"`
	CarriedOver bool             `json:"carried_over,omitempty"`
}

// ExtractedData renders the slots as a flat key/value mapping, nil when
// nothing was extracted.
func (r PlanningResult) ExtractedData() map[string]any {
	switch {
	case r.Calculation != nil:
		return map[string]any{
			"num1":     r.Calculation.Num1,
			"operator": r.Calculation.Operator,
			"num2":     r.Calculation.Num2,
		}
	case r.Outlet != nil:
		data := map[string]any{"location": nil, "info_type": nil}
		if r.Outlet.Location != "" {
			data["location"] = r.Outlet.Location
		}
		if r.Outlet.InfoType != "" {
			data["info_type"] = r.Outlet.InfoType
		}
		return data
	default:
		return nil
	}
}

// IsCityLevel reports whether location names a whole city rather than an outlet.
func IsCityLevel(location string) bool {
	return location == LocationPetalingJaya || location == LocationKualaLumpur
}

// IsSpecificOutlet reports whether location names a single outlet.
func IsSpecificOutlet(location string) bool {
	return location != "" && !IsCityLevel(location)
}

// HumanizeInfoType turns "closing_hours" into "closing hours".
func HumanizeInfoType(infoType string) string {
	return strings.ReplaceAll(infoType, "_", " ")
}
