package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/reelkeep/reeldb/internal/config"
	"github.com/reelkeep/reeldb/internal/services"
	"github.com/reelkeep/reeldb/internal/store"
)

// HealthHandler handles the service health route
type HealthHandler struct {
	Cfg   *config.Config
	Store store.Store
}

// Health handles GET /health
// @Summary Service health
// @Description Reports persistence store reachability
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.Store)

	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
