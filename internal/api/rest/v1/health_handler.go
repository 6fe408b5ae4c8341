package v1

import (
	"net/http"

	"summary_service/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// HealthHandler defines the interface for handling health-check operations
type HealthHandler interface {
	Ping(ctx *gin.Context)
}

type healthHandler struct {
	cfg *config.RestConfig
}

// NewHealthHandler creates a new HealthHandler bound to the given config
func NewHealthHandler(cfg *config.RestConfig) HealthHandler {
	return &healthHandler{cfg: cfg}
}

// Ping handles the GET request for the health check
// @Summary Health check
// @Description Report service liveness together with the resolved environment and testing flags.
// @Tags Health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (handler *healthHandler) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, PingResponse{
		Ping:        "pong!",
		Environment: handler.cfg.Environment,
		Testing:     handler.cfg.Testing,
	})
}
