package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "hrms_backend/internals/helpers"
)

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, "Terlalu banyak permintaan. Silakan coba lagi nanti.")
		},
	})
}

// Rate limiter untuk login route (lebih ketat)
func LoginRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, "Terlalu banyak percobaan login. Coba beberapa saat lagi.")
		},
	})
}

// Check-in/out dipencet berkali-kali dari UI: batasi per employee, bukan per IP.
func AttendanceRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			if id, ok := c.Locals(helper.LocUserID).(string); ok && id != "" {
				return "emp:" + id
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, "Terlalu banyak permintaan absensi. Coba lagi sebentar.")
		},
	})
}
