package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"data-analysis-agents/config"
	_ "data-analysis-agents/docs" // Swagger docs
	analysisHTTP "data-analysis-agents/internal/analysis/delivery/http"
	"data-analysis-agents/internal/analysis/usecase"
	"data-analysis-agents/internal/artifact"
	"data-analysis-agents/internal/httpserver"
	"data-analysis-agents/internal/middleware"
	"data-analysis-agents/internal/session"
	"data-analysis-agents/pkg/llmprovider"
	"data-analysis-agents/pkg/log"
)

// @title       Data Analysis Agents API
// @description Multi-agent data analysis with keyword routing, response caching, and LLM tool calling.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Data Analysis Agents...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	logger.Infof(ctx, "Initialized %d LLM provider(s)", len(providers))

	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDurationOr(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDurationOr(cfg.LLM.MaxTotalTimeout, 90*time.Second),
	}, logger)

	// 4. Artifact store
	artifacts, err := artifact.New(cfg.Artifact.OutputDir, cfg.Artifact.BaseURL)
	if err != nil {
		logger.Error(ctx, "Failed to initialize artifact store: ", err)
		return
	}

	// 5. Session manager
	sessions, err := session.NewManager(session.Deps{
		LLM:         llm,
		Artifacts:   artifacts,
		Logger:      logger,
		MaxSessions: cfg.Session.MaxSessions,
		TTL:         parseDurationOr(cfg.Session.TTL, session.DefaultTTL),
		MaxHistory:  cfg.Session.MaxHistory,
		MaxSteps:    cfg.Agent.MaxSteps,
		Temperature: cfg.Agent.Temperature,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize session manager: ", err)
		return
	}

	// 6. Analysis domain
	analysisUC, err := usecase.New(logger, sessions, artifacts)
	if err != nil {
		logger.Error(ctx, "Failed to initialize analysis usecase: ", err)
		return
	}
	analysisHandler := analysisHTTP.New(logger, analysisUC)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AnalysisHandler: analysisHandler,
		Middleware:      middleware.New(logger, cfg.RateLimit),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
