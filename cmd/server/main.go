// Package main is the entry point for the UnifiedUI Collection Service.
// @title UnifiedUI Collection Service API
// @version 1.0
// @description Collection operations over a document database: bulk writes, queries, aggregation and index management

// @contact.name API Support
// @contact.url https://github.com/unifiedui/collection-service
// @contact.email support@unifiedui.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/event"

	_ "github.com/unifiedui/collection-service/docs"

	"github.com/unifiedui/collection-service/internal/api/handlers"
	"github.com/unifiedui/collection-service/internal/api/middleware"
	"github.com/unifiedui/collection-service/internal/api/routes"
	"github.com/unifiedui/collection-service/internal/config"
	"github.com/unifiedui/collection-service/internal/core/docdb"
	"github.com/unifiedui/collection-service/internal/infrastructure/docdb/mongodb"
	"github.com/unifiedui/collection-service/internal/pkg/metrics"
	"github.com/unifiedui/collection-service/internal/services/collection"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogger(cfg.Log)

	ctx := context.Background()

	// Metrics are exported from a dedicated registry
	registry := prometheus.NewRegistry()
	m := metrics.New()
	registry.MustRegister(
		m,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Initialize document db driver using factory pattern
	driver, err := createDriver(ctx, cfg.DocDB, mongodb.NewCommandMonitor(log.Logger, m))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize document db driver")
	}
	defer driver.Close(ctx)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Setup router
	router := setupRouter(cfg, driver, m, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Create HTTP server
	srv := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("address", cfg.Server.Address()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	m.LogCommandTotals(log.Logger)
	log.Info().Msg("server exited")
}

// setupLogger configures the global zerolog logger.
func setupLogger(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	log.Logger = log.With().Str("service", "collection-service").Logger()
}

// createDriver creates a document database driver based on the configuration.
func createDriver(ctx context.Context, cfg config.DocDBConfig, monitor *event.CommandMonitor) (docdb.Driver, error) {
	switch docdb.Type(cfg.Type) {
	case docdb.TypeMongoDB, docdb.TypeCosmosDB:
		// CosmosDB uses MongoDB protocol, so we can use the same client
		connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()

		return mongodb.NewClient(connectCtx, &mongodb.ClientConfig{
			URI:            cfg.URI,
			ConnectTimeout: cfg.ConnectTimeout,
			Monitor:        monitor,
		})
	default:
		return nil, fmt.Errorf("unsupported docdb type: %s", cfg.Type)
	}
}

// collectionOptions maps the configured write defaults to collection options.
func collectionOptions(cfg config.WriteConfig) []collection.Option {
	opts := []collection.Option{
		collection.WithWriteConcern(cfg.WriteConcern),
		collection.WithReadPreference(cfg.ReadPreference),
	}
	if cfg.BulkOrdered != nil {
		opts = append(opts, collection.WithBulkDefaults(collection.BulkOptions{Ordered: cfg.BulkOrdered}))
	}
	return opts
}

// setupRouter creates and configures the Gin router.
func setupRouter(cfg *config.Config, driver docdb.Driver, m *metrics.Metrics, metricsHandler http.Handler) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Create middleware
	loggingMw := middleware.NewLoggingMiddleware()
	errorMw := middleware.NewErrorMiddleware()

	// Create handlers
	healthHandler := handlers.NewHealthHandler(driver)
	collectionsHandler := handlers.NewCollectionsHandler(driver, collectionOptions(cfg.Write)...)

	// Setup routes
	routesCfg := &routes.Config{
		HealthHandler:      healthHandler,
		CollectionsHandler: collectionsHandler,
		MetricsHandler:     metricsHandler,
	}

	routes.SetupWithMiddleware(router, routesCfg, loggingMw, errorMw, m, middleware.NewCORSConfig(cfg.CORS.AllowOrigins))

	// Swagger documentation endpoint
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
