package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"hrms_backend/internals/middlewares/logger"
)

// RequestContext: X-Request-ID + timeout guard di UserContext (selaras statement_timeout DB).
func RequestContext(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)

		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// SetupMiddlewares: urutan penting, recover paling luar.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext(5 * time.Second))
	app.Use(logger.LoggerMiddleware("UTC"))
	app.Use(CorsMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(GlobalRateLimiter())
}
