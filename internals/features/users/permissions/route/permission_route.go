package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/constants"
	"hrms_backend/internals/features/users/permissions/controller"
	authMiddleware "hrms_backend/internals/middlewares/auth"
)

// /api/u/me/capabilities
func PermissionUserRoutes(r fiber.Router) {
	r.Get("/me/capabilities", controller.MyCapabilities)
}

// /api/a/roles
func PermissionAdminRoutes(r fiber.Router, db *gorm.DB) {
	rc := controller.NewRolePermissionController(db)

	g := r.Group("/roles")
	g.Get("/permissions", authMiddleware.RequireCapability(constants.ModuleRole, constants.ActionRead), rc.List)
	g.Put("/:role/permissions",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("role permissions"), constants.AdminOnly...),
		authMiddleware.RequireCapability(constants.ModuleRole, constants.ActionUpdate),
		rc.Replace,
	)
}
