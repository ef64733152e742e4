package http

import (
	"director-agent/internal/agent"
	"director-agent/internal/director"
)

// --- Request DTOs ---

type routeTaskReq struct {
	UserQuery string `json:"userQuery"`
}

func (r routeTaskReq) toInput() director.RouteTaskInput {
	return director.RouteTaskInput{UserQuery: r.UserQuery}
}

// --- Response DTOs ---

type routeTaskResp struct {
	Agent    string       `json:"agent"`
	Response agent.Result `json:"response"`
}

func (h *handler) newRouteTaskResp(out director.RouteTaskOutput) routeTaskResp {
	return routeTaskResp{
		Agent:    string(out.Agent),
		Response: out.Response,
	}
}

type debugResp struct {
	AvailableBindings []string `json:"availableBindings"`
	AI                string   `json:"AI"`
}

func (h *handler) newDebugResp(out director.DebugOutput) debugResp {
	bindings := out.AvailableBindings
	if bindings == nil {
		bindings = []string{}
	}
	return debugResp{
		AvailableBindings: bindings,
		AI:                out.AI,
	}
}
