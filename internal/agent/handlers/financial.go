package handlers

import (
	"director-agent/internal/model"
	"director-agent/pkg/log"
)

// NewFinancial creates the financial agent.
func NewFinancial(agentModel string, l log.Logger) *PromptAgent {
	return &PromptAgent{
		label: model.LabelFinancial,
		role:  "You are a smart assistant managing the finances of a touring artist.",
		capabilities: []string{
			"Track income and expenses.",
			"Summarize budgets per tour leg.",
			"Answer questions about payments and fees.",
		},
		stateTitle: "Current financial summary",
		state: []string{
			"Month: 2024-01, Income: $42,000, Expenses: $18,500, Note: New York venue fee paid",
			"Month: 2024-02, Income: $27,300, Expenses: $21,100, Note: Los Angeles catering deposit pending",
		},
		model: agentModel,
		l:     l,
	}
}
