package handlers

import (
	"director-agent/internal/model"
	"director-agent/pkg/log"
)

// NewAudience creates the audience agent.
func NewAudience(agentModel string, l log.Logger) *PromptAgent {
	return &PromptAgent{
		label: model.LabelAudience,
		role:  "You are a smart assistant analysing the audience of a touring artist.",
		capabilities: []string{
			"Summarize audience demographics.",
			"Report fan engagement across platforms.",
			"Answer questions about ticket buyers.",
		},
		stateTitle: "Current audience summary",
		state: []string{
			"City: New York, Tickets sold: 4,800, Top age group: 25-34",
			"City: Los Angeles, Tickets sold: 3,950, Top age group: 18-24",
		},
		model: agentModel,
		l:     l,
	}
}
