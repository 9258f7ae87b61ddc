package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "hrms_backend/internals/helpers"
	authMiddleware "hrms_backend/internals/middlewares/auth"
)

// GET /api/u/me/capabilities
func MyCapabilities(c *fiber.Ctx) error {
	return helper.JsonOK(c, "OK", fiber.Map{
		"role":         helper.GetRoleFromToken(c),
		"capabilities": authMiddleware.CapabilitiesFrom(c).List(),
	})
}
