package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	LocUserID   = "user_id"
	LocUserRole = "userRole"
	LocUserName = "user_name"
	LocRawToken = "raw_token"
)

// Ambil user_id (employee id) dari c.Locals("user_id") yang di-set AuthJWT.
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
	}
}

// GetRoleFromToken: role dari c.Locals("userRole"), kosong kalau tidak ada.
func GetRoleFromToken(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocUserRole).(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
