package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/reelkeep/reeldb/internal/models"
	"github.com/reelkeep/reeldb/internal/services"
	"github.com/reelkeep/reeldb/internal/utils"
)

// AuthHandler handles the admin session routes
type AuthHandler struct {
	Sessions *services.Sessions
}

// Login handles POST /api/auth/login
// @Summary Admin login
// @Description Exchanges the shared admin password for a session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Admin password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "catalog.validation.input")
	}

	token, err := h.Sessions.Login(req.Password)
	if err != nil {
		return utils.RespondError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     services.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.Sessions.TTL().Seconds()),
		HTTPOnly: true,
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
	})
}

// Logout handles POST /api/auth/logout
// @Summary Admin logout
// @Description Expires the session token immediately and clears the cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(services.SessionCookie); token != "" {
		h.Sessions.Logout(token)
	}

	c.Cookie(&fiber.Cookie{
		Name:     services.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}
