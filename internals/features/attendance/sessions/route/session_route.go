package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	"hrms_backend/internals/constants"
	"hrms_backend/internals/features/attendance/sessions/controller"
	"hrms_backend/internals/features/attendance/sessions/repository"
	"hrms_backend/internals/features/attendance/sessions/service"
	"hrms_backend/internals/middlewares"
	authMiddleware "hrms_backend/internals/middlewares/auth"
)

func newController(db *gorm.DB, cfg configs.AttendanceConfig) *controller.AttendanceController {
	tr := service.NewTracker(repository.NewGormStore(db), service.SystemClock{}, cfg.Location, cfg.StandardShiftMinutes)
	return controller.NewAttendanceController(tr, cfg.Location)
}

// /api/u/attendance: milik employee yang login
func AttendanceUserRoutes(r fiber.Router, db *gorm.DB, cfg configs.AttendanceConfig) {
	ctl := newController(db, cfg)

	canRead := authMiddleware.RequireCapability(constants.ModuleAttendance, constants.ActionRead)
	canWrite := authMiddleware.RequireCapability(constants.ModuleAttendance, constants.ActionCreate)

	g := r.Group("/attendance")
	g.Get("/active", canRead, ctl.Active)
	g.Get("/history", canRead, ctl.History)

	limit := middlewares.AttendanceRateLimiter()
	g.Post("/start", canWrite, limit, ctl.Start)
	g.Post("/stop", canWrite, limit, ctl.Stop)
	g.Post("/break/start", canWrite, limit, ctl.StartBreak)
	g.Post("/break/end", canWrite, limit, ctl.EndBreak)
}

// /api/a/attendance: HR/admin
func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB, cfg configs.AttendanceConfig) {
	ctl := newController(db, cfg)

	canManage := authMiddleware.RequireCapability(constants.ModuleAttendance, constants.ActionManage)
	r.Get("/attendance/sessions", canManage, ctl.ListSessions)
}
