package director

import "context"

// UseCase routes user queries to agents.
type UseCase interface {
	// RouteTask classifies the query and dispatches it to the matching agent.
	RouteTask(ctx context.Context, input RouteTaskInput) (RouteTaskOutput, error)

	// Debug reports which bindings are configured.
	Debug(ctx context.Context) DebugOutput
}
