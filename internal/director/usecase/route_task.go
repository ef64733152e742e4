package usecase

import (
	"context"

	"director-agent/internal/agent"
	"director-agent/internal/director"
	"director-agent/pkg/metrics"
)

// RouteTask classifies the query, then runs the selected agent.
// Classification always completes before the agent is called.
func (uc *implUseCase) RouteTask(ctx context.Context, input director.RouteTaskInput) (director.RouteTaskOutput, error) {
	out, err := uc.router.Classify(ctx, input.UserQuery)
	if err != nil {
		uc.l.Errorf(ctx, "director.usecase.RouteTask: Classify: %v", err)
		return director.RouteTaskOutput{}, err
	}

	h, err := uc.registry.Get(out.Label)
	if err != nil {
		uc.l.Errorf(ctx, "director.usecase.RouteTask: %v", err)
		return director.RouteTaskOutput{}, err
	}

	uc.l.Infof(ctx, "Routing task to agent: %s", out.Label)
	metrics.RoutedTasks.WithLabelValues(string(out.Label)).Inc()

	res := h.Handle(ctx, agent.Payload{Query: out.Query}, uc.llm)

	return director.RouteTaskOutput{
		Agent:    out.Label,
		Response: res,
	}, nil
}
