package handlers

import (
	"director-agent/internal/model"
	"director-agent/pkg/log"
)

// NewTouring creates the touring agent.
func NewTouring(agentModel string, l log.Logger) *PromptAgent {
	return &PromptAgent{
		label: model.LabelTouring,
		role:  "You are a smart assistant planning tours and logistics.",
		capabilities: []string{
			"Plan tour routes between cities.",
			"Track venue bookings and travel.",
			"Answer questions about the tour schedule.",
		},
		stateTitle: "Current tour summary",
		state: []string{
			"Leg: East Coast, Dates: 2024-01-01 to 2024-01-20, Venues booked: 6 of 8",
			"Leg: West Coast, Dates: 2024-02-10 to 2024-02-28, Venues booked: 3 of 7",
		},
		model: agentModel,
		l:     l,
	}
}
