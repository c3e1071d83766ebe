package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	appservice "github.com/turtacn/opspulse/internal/application/service"
	"github.com/turtacn/opspulse/internal/config"
	domainservice "github.com/turtacn/opspulse/internal/domain/service"
	"github.com/turtacn/opspulse/internal/infrastructure/monitoring"
	"github.com/turtacn/opspulse/internal/infrastructure/persistence/memory"
	opshttp "github.com/turtacn/opspulse/internal/interfaces/http"
	"github.com/turtacn/opspulse/internal/interfaces/http/handlers"
	"github.com/turtacn/opspulse/internal/interfaces/http/middleware"
	"github.com/turtacn/opspulse/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	startedAt := time.Now()

	// Logger for startup
	startupLogger, _ := monitoring.NewZapLogger(&config.LogConfig{Level: "info"})

	// Load config
	cfg, v, err := config.LoadConfig(startupLogger)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger, err := monitoring.NewZapLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize tracing
	tracing, err := monitoring.NewTracingManager(&cfg.Tracing, appLogger)
	if err != nil {
		appLogger.Fatal(ctx, "Failed to initialize tracing", err)
	}

	// Initialize infrastructure
	metrics := monitoring.NewMetrics()
	aggregator := domainservice.NewRequestAggregator(domainservice.AggregatorConfig{
		SampleCapacity:          cfg.Metrics.SampleCapacity,
		RecentCapacity:          cfg.Metrics.RecentCapacity,
		EnablePeriodicRecompute: cfg.Metrics.EnablePeriodicRecompute,
		RecomputeInterval:       cfg.Metrics.RecomputePeriod(),
	}, appLogger)
	aggregator.Start(ctx)

	userRepo := memory.NewUserStore(&cfg.Store, appLogger)
	dataRepo := memory.NewDataStore(&cfg.Store, appLogger)

	// Initialize application services
	userSvc := appservice.NewUserAppService(userRepo, appLogger)
	dataSvc := appservice.NewDataAppService(dataRepo, appLogger)

	// Initialize HTTP handlers and router
	router := opshttp.NewRouter(opshttp.RouterDependencies{
		Config:         cfg,
		Logger:         appLogger,
		Tracer:         tracing.Tracer(),
		HealthHandler:  handlers.NewHealthHandler(aggregator, appLogger),
		StatusHandler:  handlers.NewStatusHandler(aggregator, cfg, version, startedAt),
		MetricsHandler: handlers.NewMetricsHandler(aggregator),
		AdminHandler:   handlers.NewAdminHandler(aggregator, userRepo, dataRepo, metrics, appLogger),
		UserHandler:    handlers.NewUserHandler(userSvc),
		DataHandler:    handlers.NewDataHandler(dataSvc),
		Observability:  middleware.Observability(tracing.Tracer(), metrics, aggregator),
	})

	// Reload log level and dashboard intervals on config file change
	config.WatchConfig(v, appLogger, func(fresh *config.Config) {
		appLogger.Info(ctx, "Configuration reloaded", logger.Fields{
			"log_level": fresh.Log.Level,
		})
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return router.Start()
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		aggregator.Stop()
		if err := router.Stop(shutdownCtx); err != nil {
			appLogger.Error(shutdownCtx, "Server forced to shutdown", err)
		}
		return tracing.Shutdown(shutdownCtx)
	})

	appLogger.Info(ctx, "OpsPulse started", logger.Fields{
		"version":     version,
		"environment": cfg.Server.Environment,
		"address":     cfg.Server.Address(),
	})

	if err := g.Wait(); err != nil {
		appLogger.Fatal(context.Background(), "Server exited with error", err)
	}
	appLogger.Info(context.Background(), "OpsPulse stopped")
}
