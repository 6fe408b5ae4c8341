package v1

import (
	"summary_service/internal/domain/summaries"
	"summary_service/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	cfg *config.RestConfig,
	summaryCreationService summaries.SummaryCreationService,
	summaryMetadataService summaries.SummaryMetadataService) {

	// Health check lives at the root, outside the versioned group
	healthHandler := NewHealthHandler(cfg)
	r.GET("/ping", healthHandler.Ping)

	v1 := r.Group(BasePath) // lookup in version file

	// Summaries Routes
	summaryHandler := NewSummaryHandler(summaryCreationService, summaryMetadataService)
	v1.POST("/summaries", summaryHandler.Create)
	v1.GET("/summaries", summaryHandler.ListMetadata)
	v1.GET("/summaries/:id", summaryHandler.GetByID)
	v1.DELETE("/summaries/:id", summaryHandler.DeleteByID)
}
