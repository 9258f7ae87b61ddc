package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/constants"
	"hrms_backend/internals/features/users/employees/controller"
	authMiddleware "hrms_backend/internals/middlewares/auth"
)

// /api/a/employees
func EmployeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ec := controller.NewEmployeeController(db)

	g := r.Group("/employees")
	g.Get("/", authMiddleware.RequireCapability(constants.ModuleEmployee, constants.ActionRead), ec.List)
	g.Post("/", authMiddleware.RequireCapability(constants.ModuleEmployee, constants.ActionCreate), ec.Create)
	g.Patch("/:id", authMiddleware.RequireCapability(constants.ModuleEmployee, constants.ActionUpdate), ec.Update)
}
