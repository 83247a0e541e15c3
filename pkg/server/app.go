package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"CryptoProphet/internal/domain/repository"
	"CryptoProphet/internal/domain/service"
	"CryptoProphet/internal/usecase"
	"CryptoProphet/pkg/config"
	xhttp "CryptoProphet/pkg/http"
	xlogger "CryptoProphet/pkg/logger"
)

const helpText = `Welcome to Crypto Prophet!
 1) To immediately receive a prediction for a particular cryptocurrency in your Discord server, set the MODE environment variable to DISCORD, pass in the ticker using the TICKER environment variable, and pass in the Discord Webhook URL using the DISCORD environment variable.
 2) To start a REST API running Crypto Prophet, set the MODE environment variable to API. Then, to receive predictions once this app starts running, navigate to http://localhost:8080/{TICKER}`

// App encapsulates the application lifecycle for both run modes.
type App struct {
	cfg         *config.Config
	pipeline    *usecase.Pipeline
	notifier    service.Notifier
	publisher   repository.EventPublisher
	httpHandler xhttp.Handler
	httpServer  *xhttp.Server
	logger      *xlogger.Logger
}

// New creates a new App instance with all dependencies. publisher may be
// nil when no event backend is configured.
func New(
	cfg *config.Config,
	pipeline *usecase.Pipeline,
	notifier service.Notifier,
	httpHandler xhttp.Handler,
	publisher repository.EventPublisher,
	logger *xlogger.Logger,
) *App {
	return &App{
		cfg:         cfg,
		pipeline:    pipeline,
		notifier:    notifier,
		httpHandler: httpHandler,
		publisher:   publisher,
		logger:      logger,
	}
}

// Run dispatches on the configured mode: serve queries, push once, or show
// the help screen.
func (a *App) Run() error {
	switch a.cfg.Mode {
	case config.ModeAPI:
		return a.serve()
	case config.ModeDiscord:
		return a.pushOnce()
	default:
		fmt.Println(helpText)
		return nil
	}
}

// serve starts the query API and blocks until interrupted.
func (a *App) serve() error {
	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
	}

	a.httpServer = xhttp.NewServer(a.httpHandler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
	)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", xlogger.Error(err))
		return err
	}
	a.logger.Info("query api started", xlogger.Int("port", a.cfg.Server.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// pushOnce runs the pipeline a single time and posts the narrative to the
// configured webhook. Output mirrors the interactive contract: the
// narrative or a human-readable error on stdout.
func (a *App) pushOnce() error {
	if a.cfg.Push.Symbol == "" {
		fmt.Println("Error: Please supply a ticker symbol, such as btcusd, using the TICKER environment variable")
		return nil
	}
	if a.cfg.Push.WebhookURL == "" {
		fmt.Println("Error: Please provide a Discord Webhook to post the result to a Discord channel using the DISCORD environment variable")
		return nil
	}

	ctx := context.Background()

	var run usecase.PushRun
	result, err := run.Execute(ctx, a.pipeline, a.notifier, a.cfg.Push.Symbol, a.logger)
	if err != nil {
		fmt.Println("Error: " + err.Error())
		return nil
	}
	fmt.Println(result.Description)

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("event publisher close error", xlogger.Error(err))
		}
	}
	return nil
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if a.httpServer != nil {
		if err := a.httpServer.Stop(shutdownCtx); err != nil {
			a.logger.Error("http shutdown error", xlogger.Error(err))
		}
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("event publisher close error", xlogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
