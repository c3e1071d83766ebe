// Package http assembles the gin engine, routes and HTTP server lifecycle.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/turtacn/opspulse/internal/config"
	"github.com/turtacn/opspulse/internal/interfaces/http/handlers"
	"github.com/turtacn/opspulse/pkg/logger"
	"github.com/turtacn/opspulse/web"
	"go.opentelemetry.io/otel/trace"
)

// RouterDependencies bundles everything the router needs, injected by the
// bootstrap.
type RouterDependencies struct {
	Config         *config.Config
	Logger         logger.Logger
	Tracer         trace.Tracer
	HealthHandler  *handlers.HealthHandler
	StatusHandler  *handlers.StatusHandler
	MetricsHandler *handlers.MetricsHandler
	AdminHandler   *handlers.AdminHandler
	UserHandler    *handlers.UserHandler
	DataHandler    *handlers.DataHandler

	// Observability is the request-recording middleware; it must be the
	// outermost handler so every request, including panics recovered
	// further in and unmatched routes, is recorded exactly once.
	Observability gin.HandlerFunc
}

// Router owns the gin engine and the HTTP server.
type Router struct {
	engine *gin.Engine
	deps   RouterDependencies
	server *http.Server
}

// NewRouter creates the router and registers all routes.
func NewRouter(deps RouterDependencies) *Router {
	if deps.Config.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := &Router{
		engine: gin.New(),
		deps:   deps,
	}
	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	deps := r.deps

	r.engine.Use(deps.Observability)
	r.engine.Use(handlers.RequestIDMiddleware())
	r.engine.Use(handlers.RecoveryMiddleware(deps.Logger))
	r.engine.Use(handlers.LoggingMiddleware(deps.Logger))

	corsConfig := cors.Config{
		AllowOrigins:     deps.Config.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 1 && corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
	}
	r.engine.Use(cors.New(corsConfig))

	// Health endpoints
	r.engine.GET("/health", deps.HealthHandler.HealthCheck)
	r.engine.GET("/live", deps.HealthHandler.LivenessCheck)

	// Prometheus exposition
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Pprof, outside production only
	if deps.Config.Server.Environment != "production" {
		pprof.Register(r.engine)
	}

	// Embedded dashboard
	staticFS := web.Static()
	r.engine.StaticFS("/static", http.FS(staticFS))
	r.engine.GET("/", func(c *gin.Context) {
		c.FileFromFS("index.html", http.FS(staticFS))
	})

	// API routes
	api := r.engine.Group("/api")
	{
		api.GET("/status", deps.StatusHandler.Status)
		api.GET("/config", deps.StatusHandler.DashboardConfig)
		api.GET("/metrics", deps.MetricsHandler.GetMetrics)
		api.GET("/metrics/window", deps.MetricsHandler.GetWindow)

		admin := api.Group("/admin")
		{
			admin.POST("/reset", deps.AdminHandler.Reset)
			admin.GET("/stats", deps.AdminHandler.Stats)
		}

		users := api.Group("/users")
		{
			users.GET("", deps.UserHandler.ListUsers)
			users.POST("", deps.UserHandler.CreateUser)
			users.GET("/:id", deps.UserHandler.GetUser)
			users.PUT("/:id", deps.UserHandler.UpdateUser)
			users.DELETE("/:id", deps.UserHandler.DeleteUser)
		}

		data := api.Group("/data")
		{
			data.GET("", deps.DataHandler.ListEntries)
			data.POST("", deps.DataHandler.CreateEntry)
			data.GET("/:id", deps.DataHandler.GetEntry)
			data.PUT("/:id", deps.DataHandler.UpdateEntry)
			data.DELETE("/:id", deps.DataHandler.DeleteEntry)
		}
	}

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":             "not_found",
			"error_description": "The requested resource was not found",
		})
	})
}

// Engine exposes the gin engine, used by tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Start runs the HTTP server and blocks until it stops.
func (r *Router) Start() error {
	cfg := r.deps.Config.Server
	r.server = &http.Server{
		Addr:           cfg.Address(),
		Handler:        r.engine,
		ReadTimeout:    time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.IdleTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	r.deps.Logger.Info(context.Background(), "Starting HTTP server", logger.Fields{
		"address": cfg.Address(),
	})

	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the HTTP server down gracefully.
func (r *Router) Stop(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	r.deps.Logger.Info(ctx, "Stopping HTTP server")
	return r.server.Shutdown(ctx)
}
