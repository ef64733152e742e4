package agent

import (
	"context"

	"director-agent/internal/model"
	"director-agent/pkg/llmprovider"
)

// Payload is what the director hands to an agent.
type Payload struct {
	Query string `json:"query"`
}

// Result is the outcome of an agent run. Exactly one field is set.
type Result struct {
	LLMReasoning string `json:"llmReasoning,omitempty"`
	Error        string `json:"error,omitempty"`
}

// IsError reports whether the result is the error variant.
func (r Result) IsError() bool {
	return r.Error != ""
}

// Handler answers a query routed to its label.
// Implementations never return Go errors or panic: failures are reported as
// the error variant of Result. The inference capability is passed per call
// and may be nil.
type Handler interface {
	// Label returns the label this handler serves.
	Label() model.Label

	// Handle runs the agent for one query.
	Handle(ctx context.Context, payload Payload, llm llmprovider.Generator) Result
}
