package handlers

import (
	"director-agent/internal/model"
	"director-agent/pkg/log"
)

// NewCalendar creates the calendar agent.
func NewCalendar(agentModel string, l log.Logger) *PromptAgent {
	return &PromptAgent{
		label: model.LabelCalendar,
		role:  "You are a smart assistant managing a calendar system.",
		capabilities: []string{
			"Add events to the database.",
			"Sync events with Google Calendar.",
			"Answer questions about the calendar.",
		},
		stateTitle: "Current calendar summary",
		state: []string{
			"Date: 2024-01-01, City: New York, Event: New Year's Celebration",
			"Date: 2024-02-14, City: Los Angeles, Event: Valentine's Day Dinner",
		},
		model: agentModel,
		l:     l,
	}
}
