package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"director-agent/pkg/llmprovider"
	"director-agent/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Director domain
	llm             llmprovider.Generator
	bindings        []string
	classifierModel string
	agentModel      string
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Generator is the inference capability. Leave it nil to run without one;
	// requests then fail with a configuration error.
	Generator llmprovider.Generator
	// Bindings are the provider names reported by /debug.
	Bindings []string

	ClassifierModel string
	AgentModel      string
	RateLimitPerMin int
}

// New creates a new HTTPServer instance and registers all routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		llm:             cfg.Generator,
		bindings:        cfg.Bindings,
		classifierModel: cfg.ClassifierModel,
		agentModel:      cfg.AgentModel,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
