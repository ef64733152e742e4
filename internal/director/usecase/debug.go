package usecase

import (
	"context"

	"director-agent/internal/director"
)

// Debug lists the configured bindings. The AI binding is listed first when
// an inference capability is present.
func (uc *implUseCase) Debug(ctx context.Context) director.DebugOutput {
	bindings := make([]string, 0, len(uc.bindings)+1)

	status := director.MsgBindingAbsent
	if uc.llm != nil {
		status = director.MsgBindingExists
		bindings = append(bindings, director.BindingAI)
	}
	bindings = append(bindings, uc.bindings...)

	return director.DebugOutput{
		AvailableBindings: bindings,
		AI:                status,
	}
}
