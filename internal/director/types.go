package director

import (
	"director-agent/internal/agent"
	"director-agent/internal/model"
)

// --- UseCase Inputs ---

type RouteTaskInput struct {
	UserQuery string
}

// --- UseCase Outputs ---

type RouteTaskOutput struct {
	Agent    model.Label
	Response agent.Result
}

type DebugOutput struct {
	AvailableBindings []string
	AI                string
}
