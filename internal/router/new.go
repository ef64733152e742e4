package router

import (
	"context"

	"director-agent/pkg/llmprovider"
	"director-agent/pkg/log"
)

// Router is the interface for semantic routing
type Router interface {
	Classify(ctx context.Context, query string) (RouterOutput, error)
}

// SemanticRouter classifies a query into a label using the LLM
type SemanticRouter struct {
	llm   llmprovider.Generator
	model string
	l     log.Logger
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter.
// llm may be nil, in which case every Classify call fails with ErrCapabilityMissing.
// model overrides the provider's default model when non-empty.
func New(llm llmprovider.Generator, model string, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm:   llm,
		model: model,
		l:     l,
	}
}
