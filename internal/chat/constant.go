package chat

// Fallback replies when a plan carries no usable data.
const (
	MsgNeedMoreInfo        = "I need more information."
	MsgRephraseCalc        = "I encountered an issue with the calculation. Could you please rephrase the calculation clearly?"
	MsgNeedOutletDetails   = "I need more details to find outlet information. Please specify a location or what you're looking for."
	MsgUnknownFailure      = "I'm sorry, something went wrong while handling your request. Please try again."
	MsgCalculationError    = "Calculation Error: %s"
	MsgCalculatorDown      = "Could not connect to the calculator service. Please try again later."
	MsgOutletDown          = "Could not reach the outlet directory. Please try again later."
	MsgChatDown            = "I can't chat right now, but I can still help with calculations and outlet information. Please try again later."
	MsgCalculationResult   = "%s %s %s = %s"
	DefaultSystemPrompt    = "You are a helpful and friendly assistant."
	DefaultChatTemperature = 0.7
)
