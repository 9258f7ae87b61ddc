package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"hrms_backend/internals/configs"
)

// CorsMiddleware membuat middleware CORS dari CORS_ALLOW_ORIGINS
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(configs.CorsAllowOrigins, ", "),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders:    "Retry-After, X-Request-ID",
		AllowCredentials: true,
	})
}
