package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms_backend/internals/constants"
	helper "hrms_backend/internals/helpers"
)

func TestOnlyRoles(t *testing.T) {
	for role, want := range map[string]int{
		constants.RoleAdmin:    http.StatusNoContent,
		constants.RoleHR:       http.StatusForbidden,
		constants.RoleEmployee: http.StatusForbidden,
		"":                     http.StatusUnauthorized,
	} {
		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals(helper.LocUserRole, role)
			}
			return c.Next()
		})
		app.Get("/", OnlyRoles(constants.RoleErrorAdmin("role permissions"), constants.AdminOnly...), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusNoContent)
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, "role=%q", role)
	}
}
