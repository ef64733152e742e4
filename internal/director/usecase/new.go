package usecase

import (
	"director-agent/internal/agent"
	"director-agent/internal/director"
	"director-agent/internal/router"
	"director-agent/pkg/llmprovider"
	"director-agent/pkg/log"
)

// implUseCase is the private implementation of director.UseCase.
type implUseCase struct {
	l        log.Logger
	llm      llmprovider.Generator
	router   router.Router
	registry *agent.Registry
	bindings []string
}

var _ director.UseCase = (*implUseCase)(nil)

// New creates a new director UseCase.
// llm is handed to agents on every call and may be nil. bindings lists the
// configured provider names for the debug view.
func New(l log.Logger, llm llmprovider.Generator, r router.Router, registry *agent.Registry, bindings []string) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		router:   r,
		registry: registry,
		bindings: bindings,
	}
}
