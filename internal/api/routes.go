package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JustJay7/court-case-sync/internal/cache"
	"github.com/JustJay7/court-case-sync/internal/config"
	"github.com/JustJay7/court-case-sync/internal/database"
	"github.com/JustJay7/court-case-sync/pkg/logger"
)

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, store *database.Store, cache cache.Cache, s Syncer, logger *logger.Logger, cfg *config.Config) {
	h := NewHandlers(store, cache, s, logger, cfg)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", h.HealthCheck)
		api.GET("/cache/stats", h.CacheStats)

		// Cases
		api.POST("/cases", h.CreateCase)
		api.GET("/cases", h.ListCases)
		api.GET("/cases/:id", h.GetCase)
		api.GET("/cases/:id/updates", h.ListUpdates)
		api.GET("/cases/:id/deadlines", h.ListDeadlines)
		api.GET("/cases/:id/parties", h.ListParties)
		api.GET("/cases/:id/runs", h.ListSyncRuns)

		// Sync
		api.POST("/cases/:id/sync", h.SyncCase)
		api.POST("/sync", h.SyncAll)

		// Deadlines
		api.GET("/deadline-types", h.DeadlineCatalog)
		api.PUT("/deadlines/:id/complete", h.CompleteDeadline)

		api.GET("/case-types/:number", h.ResolveCaseType)
	}
}
