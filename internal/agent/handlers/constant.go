package handlers

// Log prefixes
const (
	LogPrefixHandle = "internal.agent.handlers.Handle"
)

// Prompt formats
const (
	UserMessageFormat = `Query: "%s"`
)
