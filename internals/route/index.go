package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	permRepo "hrms_backend/internals/features/users/permissions/repository"
	authMiddleware "hrms_backend/internals/middlewares/auth"
	routeDetails "hrms_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, attCfg configs.AttendanceConfig) {
	startTime = time.Now()

	BaseRoutes(app)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================
	jwt := authMiddleware.DefaultAuthJWT(db, configs.JWTSecret)
	caps := authMiddleware.LoadCapabilities(permRepo.Loader(db))

	log.Println("[INFO] Setting up PRIVATE (employee) group...")
	private := app.Group("/api/u", jwt, caps)

	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", jwt, caps)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(private)
	routeDetails.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Attendance routes...")
	routeDetails.AttendanceUserRoutes(private, db, attCfg)
	routeDetails.AttendanceAdminRoutes(admin, db, attCfg)
}
