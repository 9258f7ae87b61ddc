package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	attendanceRoute "hrms_backend/internals/features/attendance/sessions/route"
)

// /api/u
func AttendanceUserRoutes(r fiber.Router, db *gorm.DB, cfg configs.AttendanceConfig) {
	attendanceRoute.AttendanceUserRoutes(r, db, cfg)
}

// /api/a
func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB, cfg configs.AttendanceConfig) {
	attendanceRoute.AttendanceAdminRoutes(r, db, cfg)
}
