package router

import (
	"github.com/gin-gonic/gin"

	"faena/internal/handler"
	"faena/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	importH *handler.ImportHandler,
	providerH *handler.ProviderHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	providers := v1.Group("/providers")
	providers.POST("/import", importH.ImportFiles)
	providers.POST("/import/text", importH.ImportText)
	providers.POST("/import/json", importH.ImportJSON)
	providers.GET("", providerH.List)
	providers.GET("/search", providerH.Search)
	providers.GET("/export", providerH.Export)

	return r
}
