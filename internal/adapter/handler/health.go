package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/adapter/dto/common"
)

// healthCheck returns health status
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  common.HealthResponse  "Service is up"
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Time:        time.Now().UTC(),
		Environment: rt.cfg.Server.Environment,
	})
}
