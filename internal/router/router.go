package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutriscope/backend/internal/api"
	"github.com/nutriscope/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	analyzeHandler *api.AnalyzeHandler,
	consultHandler *api.ConsultHandler,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	router.GET("/health", api.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	analyzeHandler.RegisterRoutes(v1)
	consultHandler.RegisterRoutes(v1)

	// Unversioned aliases kept for the original frontend paths
	root := router.Group("")
	analyzeHandler.RegisterRoutes(root)
	consultHandler.RegisterRoutes(root)

	return router
}
