package planner

import (
	"regexp"
	"strings"
)

const numberPattern = `(\d+(?:\.\d+)?)`

// Word operators, longest phrasing first inside each family.
const wordOperatorPattern = `(divided by|divide|multiplied by|multiply|times|plus|add|minus|subtract|substract)`

var (
	symbolicRe     = regexp.MustCompile(numberPattern + `\s*([-+*/])\s*` + numberPattern)
	whatIsRe       = regexp.MustCompile(`what is ` + numberPattern + `\s*([-+*/])\s*` + numberPattern)
	wordOperatorRe = regexp.MustCompile(numberPattern + `\s*` + wordOperatorPattern + `\s*` + numberPattern)
)

var wordOperators = map[string]string{
	"plus":          OpAdd,
	"add":           OpAdd,
	"minus":         OpSubtract,
	"subtract":      OpSubtract,
	"substract":     OpSubtract,
	"times":         OpMultiply,
	"multiply":      OpMultiply,
	"multiplied by": OpMultiply,
	"divide":        OpDivide,
	"divided by":    OpDivide,
}

type rule struct {
	name   string
	intent Intent
	re     *regexp.Regexp
}

// defaultRules returns calculation rules strictly before outlet rules.
func defaultRules() []rule {
	return []rule{
		{name: "symbolic_arithmetic", intent: IntentCalculation, re: symbolicRe},
		{name: "what_is_arithmetic", intent: IntentCalculation, re: whatIsRe},
		{name: "word_arithmetic", intent: IntentCalculation, re: wordOperatorRe},
		{name: "aggregate_phrase", intent: IntentCalculation, re: regexp.MustCompile(`sum of|difference of|product of|quotient of`)},
		{name: "calculation_keyword", intent: IntentCalculation, re: regexp.MustCompile(`calculat|math`)},
		// Needs a digit after either spelling, so "what's the opening time" falls through.
		{name: "whats_with_number", intent: IntentCalculation, re: regexp.MustCompile(`what'?s\s+[\w\s]*\d+`)},

		{name: "ss_area", intent: IntentOutletInfo, re: regexp.MustCompile(`ss\s*\d+`)},
		{name: "outlet_noun", intent: IntentOutletInfo, re: regexp.MustCompile(`outlet|store|shop|location|branch`)},
		{name: "hours_keyword", intent: IntentOutletInfo, re: regexp.MustCompile(`opening|closing|hours|time`)},
		{name: "place_name", intent: IntentOutletInfo, re: regexp.MustCompile(`damansara|petaling jaya|kuala lumpur|pj|kl`)},
	}
}

// Classify returns the intent of the first matching rule, or general chat.
func (p *RulePlanner) Classify(text string) Intent {
	lower := strings.ToLower(text)
	for _, r := range p.rules {
		if r.re.MatchString(lower) {
			return r.intent
		}
	}
	return IntentGeneralChat
}
