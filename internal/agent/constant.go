package agent

// Result messages
const (
	MsgCapabilityMissing = "AI binding is not configured correctly."
	MsgNoValidResponse   = "No valid response from LLM."
	MsgErrorOccurred     = "An error occurred: %s"
)

// Error messages
const (
	ErrMsgAgentNotFound = `Agent with ID "%s" not found.`
)
