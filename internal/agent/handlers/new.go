package handlers

import (
	"director-agent/internal/agent"
	"director-agent/pkg/log"
)

// RegisterAll registers the four stub agents on r.
func RegisterAll(r *agent.Registry, agentModel string, l log.Logger) {
	r.Register(NewCalendar(agentModel, l))
	r.Register(NewFinancial(agentModel, l))
	r.Register(NewAudience(agentModel, l))
	r.Register(NewTouring(agentModel, l))
}
