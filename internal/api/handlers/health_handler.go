package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Piero-Micciulla/project-management-dashboard/pkg/response"
	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *repository.Repos.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// @Summary Liveness and database check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Failure 503 {object} response.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.HealthResponse{Status: "degraded", Database: "down"})
		return
	}
	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok", Database: "up"})
}
