package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	employeeRoute "hrms_backend/internals/features/users/employees/route"
	permissionRoute "hrms_backend/internals/features/users/permissions/route"
)

// /api/u
func UserRoutes(r fiber.Router) {
	permissionRoute.PermissionUserRoutes(r)
}

// /api/a
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	employeeRoute.EmployeeAdminRoutes(r, db)
	permissionRoute.PermissionAdminRoutes(r, db)
}
