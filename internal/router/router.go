package router

import (
	"github.com/gin-gonic/gin"

	"nuamx/internal/handler"
	"nuamx/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	batchH *handler.BatchHandler,
	ratingH *handler.RatingHandler,
	resolveH *handler.ResolveHandler,
	reportH *handler.ReportHandler,
	templateH *handler.TemplateHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	ratings := v1.Group("/ratings")
	ratings.POST("/batch/preview", batchH.Preview)
	ratings.POST("/batch/commit", batchH.Commit)
	ratings.POST("/resolve", resolveH.Resolve)
	ratings.GET("", ratingH.List)
	ratings.GET("/template", templateH.Download)
	ratings.GET("/:id", ratingH.GetByID)

	reports := v1.Group("/reports")
	reports.GET("/summary", reportH.Summary)

	return r
}
