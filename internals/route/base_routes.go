package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	database "hrms_backend/internals/databases"
)

func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("HRMS backend jalan")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := database.Ping(); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int64(time.Since(startTime).Seconds()),
		})
	})
}
