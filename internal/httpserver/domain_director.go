package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"director-agent/internal/agent"
	"director-agent/internal/agent/handlers"
	directorHTTP "director-agent/internal/director/delivery/http"
	directorUC "director-agent/internal/director/usecase"
	"director-agent/internal/middleware"
	"director-agent/internal/router"
)

// setupDirectorDomain wires router, agents, use case and HTTP handler, then
// registers GET /, GET /debug and POST /route-task.
func (srv *HTTPServer) setupDirectorDomain(ctx context.Context, r gin.IRouter, mw middleware.Middleware) error {
	// 1. Classifier
	semanticRouter := router.New(srv.llm, srv.classifierModel, srv.l)

	// 2. Agents
	registry := agent.NewRegistry()
	handlers.RegisterAll(registry, srv.agentModel, srv.l)

	// 3. UseCase
	uc := directorUC.New(srv.l, srv.llm, semanticRouter, registry, srv.bindings)

	// 4. HTTP Handler + routes
	h := directorHTTP.New(srv.l, uc)
	directorHTTP.RegisterRoutes(r, h, mw.RateLimit(srv.rateLimitPerMin))

	if srv.llm == nil {
		srv.l.Warnf(ctx, "Director domain registered without an AI binding: requests will fail until a provider is configured")
	} else {
		srv.l.Infof(ctx, "Director domain registered with agents: %v", registry.Labels())
	}
	return nil
}
