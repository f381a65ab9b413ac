package planner

// Confidence levels per decision branch.
const (
	ConfidenceCalculator        = 0.9
	ConfidenceCalculatorMissing = 0.8
	ConfidenceOutletLookup      = 0.9
	ConfidenceOutletCarriedOver = 0.8
	ConfidenceOutletCityLevel   = 0.85
	ConfidenceOutletUnresolved  = 0.7
	ConfidenceRespondDirectly   = 0.5
)

// Clarifying questions.
const (
	MsgCalculationMissing = "I can help with calculations! What numbers and operation do you need? (e.g., '5 + 3' or '10 times 5')"

	MsgOutletCityWithInfo    = "Yes, we have outlets in %s! Which specific outlet are you referring to%s, so I can check the %s?"
	MsgOutletAnyWithInfo     = "We have several outlets! Which specific outlet are you referring to%s, so I can check the %s?"
	MsgOutletCityWithoutInfo = "Yes, we have outlets in %s! Which specific outlet are you referring to%s?"
	MsgOutletUnresolved      = "Which outlet are you asking about? Please specify a location (e.g., SS2, SS15, Damansara) or what kind of information you're looking for."
)

// cityOutletExamples lists the named outlets suggested for each city bucket.
var cityOutletExamples = map[string]string{
	LocationPetalingJaya: "SS2, SS15, Damansara",
	"":                   "SS2, SS15, Damansara",
}
