package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"director-agent/config"
	_ "director-agent/docs" // Swagger docs
	"director-agent/internal/httpserver"
	"director-agent/pkg/llmprovider"
	"director-agent/pkg/log"
)

// @title       Director Agent API
// @description Routes free-text queries to calendar, financial, audience and touring agents via an LLM classifier.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Director Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Inference capability
	generator, bindings := initLLM(ctx, cfg, logger)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Generator:       generator,
		Bindings:        bindings,
		ClassifierModel: cfg.Director.ClassifierModel,
		AgentModel:      cfg.Director.AgentModel,
		RateLimitPerMin: cfg.Director.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// initLLM builds the provider manager. With no usable provider it returns a
// nil Generator so the service still starts and reports the binding as missing.
func initLLM(ctx context.Context, cfg *config.Config, logger log.Logger) (llmprovider.Generator, []string) {
	if !cfg.LLM.HasEnabledProvider() {
		logger.Warn(ctx, "No LLM provider enabled: AI binding is missing")
		return nil, nil
	}

	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	var partial *llmprovider.PartialInitError
	switch {
	case errors.As(err, &partial):
		logger.Warnf(ctx, "Some LLM providers were skipped: %v", partial)
	case err != nil:
		logger.Warnf(ctx, "LLM providers unavailable, AI binding is missing: %v", err)
		return nil, nil
	}

	manager := llmprovider.NewManager(providers, llmprovider.ManagerConfigFrom(&cfg.LLM), logger)
	names := manager.ProviderNames()
	logger.Infof(ctx, "✅ LLM providers initialized: %v", names)

	return manager, names
}
