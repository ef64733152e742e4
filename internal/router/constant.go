package router

import "regexp"

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = "You manage agents. Respond with one of: calendar, financial, audience, touring."
)

// Router configuration
const (
	RouterTemperature = 0.1
)

// labelPattern matches any label token. The leftmost match wins.
var labelPattern = regexp.MustCompile(`(calendar|financial|audience|touring)`)

// Error messages
const (
	ErrMsgLLMCallFailed      = "LLM call failed"
	ErrMsgEmptyResponse      = "no valid response from LLM"
	ErrMsgInvalidReplyFormat = "Invalid agent response: %s. Expected one of: calendar, financial, audience, touring."
	ErrMsgCapabilityMissing  = "AI binding is not configured correctly."
)
