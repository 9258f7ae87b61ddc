package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	"hrms_backend/internals/features/users/auth/controller"
	"hrms_backend/internals/middlewares"
	authMiddleware "hrms_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ac := controller.NewAuthController(db, configs.JWTSecret, configs.AccessTokenTTL)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ac.Login)

	jwt := authMiddleware.DefaultAuthJWT(db, configs.JWTSecret)
	auth.Post("/logout", jwt, ac.Logout)
	auth.Get("/me", jwt, ac.Me)
}
