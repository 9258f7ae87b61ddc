package auth

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"hrms_backend/internals/constants"
	permService "hrms_backend/internals/features/users/permissions/service"
	helper "hrms_backend/internals/helpers"
)

const LocCapabilities = "capabilities"

// PermissionLoader: ambil entri "module:action" untuk satu role dari store.
type PermissionLoader func(ctx context.Context, role string) ([]string, error)

// LoadCapabilities membangun CapabilitySet per request; jalan setelah AuthJWT.
func LoadCapabilities(load PermissionLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromToken(c)
		if role == "" {
			c.Locals(LocCapabilities, permService.CapabilitySet{})
			return c.Next()
		}
		entries, err := load(c.UserContext(), role)
		if err != nil {
			log.Printf("[ERROR] load permissions role=%s: %v", role, err)
			return helper.JsonRetryableError(c, "Gagal memuat hak akses")
		}
		c.Locals(LocCapabilities, permService.NewCapabilitySet(entries))
		return c.Next()
	}
}

// CapabilitiesFrom: set kosong kalau LoadCapabilities belum jalan.
func CapabilitiesFrom(c *fiber.Ctx) permService.CapabilitySet {
	if set, ok := c.Locals(LocCapabilities).(permService.CapabilitySet); ok {
		return set
	}
	return permService.CapabilitySet{}
}

func RequireCapability(m constants.Module, a constants.Action) fiber.Handler {
	want := constants.Cap(m, a)
	return func(c *fiber.Ctx) error {
		if !CapabilitiesFrom(c).Can(m, a) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.CapabilityError(want))
		}
		return c.Next()
	}
}
