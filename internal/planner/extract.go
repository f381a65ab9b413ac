package planner

import (
	"regexp"
	"strconv"
	"strings"
)

// ExtractCalculation pulls two numbers and an operator out of text. Symbolic
// form is tried first, then word operators, then "what is N op N".
func (p *RulePlanner) ExtractCalculation(text string) (CalculationData, bool) {
	lower := strings.ToLower(text)

	if data, ok := matchCalculation(symbolicRe, lower, nil); ok {
		return data, true
	}
	if data, ok := matchCalculation(wordOperatorRe, lower, wordOperators); ok {
		return data, true
	}
	if data, ok := matchCalculation(whatIsRe, lower, nil); ok {
		return data, true
	}
	return CalculationData{}, false
}

func matchCalculation(re *regexp.Regexp, text string, words map[string]string) (CalculationData, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return CalculationData{}, false
	}

	op := m[2]
	if words != nil {
		symbol, ok := words[op]
		if !ok {
			return CalculationData{}, false
		}
		op = symbol
	}

	n1, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return CalculationData{}, false
	}
	n2, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return CalculationData{}, false
	}

	return CalculationData{Num1: n1, Operator: op, Num2: n2}, true
}

// ExtractOutlet finds a location and an info type by substring. Location
// priority is SS2, SS15, Damansara, Petaling Jaya, Kuala Lumpur.
func (p *RulePlanner) ExtractOutlet(text string) (OutletData, bool) {
	lower := strings.ToLower(text)

	var data OutletData
	switch {
	case containsAny(lower, "ss2", "ss 2"):
		data.Location = LocationSS2
	case containsAny(lower, "ss15", "ss 15"):
		data.Location = LocationSS15
	case containsAny(lower, "damansara"):
		data.Location = LocationDamansara
	case containsAny(lower, "petaling jaya", "pj"):
		data.Location = LocationPetalingJaya
	case containsAny(lower, "kuala lumpur", "kl"):
		data.Location = LocationKualaLumpur
	}

	switch {
	case containsAny(lower, "opening", "open"):
		data.InfoType = InfoOpeningHours
	case containsAny(lower, "closing", "close"):
		data.InfoType = InfoClosingHours
	case containsAny(lower, "hours", "time"):
		data.InfoType = InfoHours
	}

	if data.Location == "" && data.InfoType == "" {
		return OutletData{}, false
	}
	return data, true
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
