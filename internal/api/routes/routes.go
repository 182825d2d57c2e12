// Package routes defines the HTTP routes for the UnifiedUI Collection Service.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedui/collection-service/internal/api/handlers"
	"github.com/unifiedui/collection-service/internal/api/middleware"
	"github.com/unifiedui/collection-service/internal/pkg/metrics"
)

// Config holds the dependencies for setting up routes.
type Config struct {
	HealthHandler      *handlers.HealthHandler
	CollectionsHandler *handlers.CollectionsHandler
	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
}

// Setup configures all routes on the Gin engine.
func Setup(r *gin.Engine, cfg *Config) {
	if cfg.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}

	// API v1 routes - all routes under /api/v1/collection-service
	v1 := r.Group("/api/v1/collection-service")
	{
		v1.GET("/health", cfg.HealthHandler.Health)
		v1.GET("/ready", cfg.HealthHandler.Ready)
		v1.GET("/live", cfg.HealthHandler.Live)

		h := cfg.CollectionsHandler
		namespaces := v1.Group("/namespaces/:namespace")
		{
			namespaces.DELETE("", h.Drop)

			// --- Writes ---
			namespaces.POST("/bulk-write", h.BulkWrite)
			namespaces.POST("/insert-one", h.InsertOne)
			namespaces.POST("/insert-many", h.InsertMany)
			namespaces.POST("/update-one", h.UpdateOne)
			namespaces.POST("/update-many", h.UpdateMany)
			namespaces.POST("/replace-one", h.ReplaceOne)
			namespaces.POST("/delete-one", h.DeleteOne)
			namespaces.POST("/delete-many", h.DeleteMany)

			// --- Reads ---
			namespaces.POST("/find", h.Find)
			namespaces.POST("/find-one", h.FindOne)
			namespaces.POST("/count", h.Count)
			namespaces.POST("/distinct", h.Distinct)
			namespaces.POST("/aggregate", h.Aggregate)
			namespaces.POST("/find-one-and-delete", h.FindOneAndDelete)
			namespaces.POST("/find-one-and-replace", h.FindOneAndReplace)
			namespaces.POST("/find-one-and-update", h.FindOneAndUpdate)

			// --- Indexes ---
			indexes := namespaces.Group("/indexes")
			{
				indexes.GET("", h.ListIndexes)
				indexes.POST("", h.CreateIndexes)
				indexes.DELETE("", h.DropIndexes)
				indexes.DELETE("/:name", h.DropIndex)
			}
		}
	}

	r.NoRoute(middleware.NotFound())
	r.NoMethod(middleware.MethodNotAllowed())
}

// SetupWithMiddleware sets up routes with common middleware.
func SetupWithMiddleware(
	r *gin.Engine,
	cfg *Config,
	loggingMw *middleware.LoggingMiddleware,
	errorMw *middleware.ErrorMiddleware,
	m *metrics.Metrics,
	cors middleware.CORSConfig,
) {
	// Apply global middleware
	r.Use(middleware.NewCORSMiddleware(cors))
	r.Use(loggingMw.RequestLogger())
	r.Use(loggingMw.Logger())
	r.Use(middleware.Metrics(m))
	r.Use(errorMw.Recovery())

	middleware.SetupCORSRoutes(r, cors)

	// Setup routes
	Setup(r, cfg)
}
