package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/constants"
	"hrms_backend/internals/features/users/permissions/dto"
	"hrms_backend/internals/features/users/permissions/repository"
	helper "hrms_backend/internals/helpers"
)

type RolePermissionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRolePermissionController(db *gorm.DB) *RolePermissionController {
	return &RolePermissionController{DB: db, Validator: validator.New()}
}

// GET /api/a/roles/permissions
func (rc *RolePermissionController) List(c *fiber.Ctx) error {
	rows, err := repository.ListRolePermissions(c.UserContext(), rc.DB)
	if err != nil {
		log.Println("[ERROR] list role permissions:", err)
		return helper.JsonRetryableError(c, "Gagal mengambil role permissions")
	}
	out := make([]dto.RolePermissionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromModel(r))
	}
	return helper.JsonOK(c, "OK", out)
}

// PUT /api/a/roles/:role/permissions
func (rc *RolePermissionController) Replace(c *fiber.Ctx) error {
	role := strings.ToLower(strings.TrimSpace(c.Params("role")))
	if !constants.IsKnownRole(role) {
		return helper.JsonError(c, fiber.StatusNotFound, "Role tidak dikenal")
	}

	var req dto.UpdateRolePermissionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := rc.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if unknown := req.Normalize(); len(unknown) > 0 {
		return helper.JsonValidationError(c, map[string][]string{"permissions": unknown})
	}

	row, err := repository.UpsertRolePermissions(c.UserContext(), rc.DB, role, req.Permissions)
	if err != nil {
		log.Println("[ERROR] upsert role permissions:", err)
		return helper.JsonRetryableError(c, "Gagal menyimpan role permissions")
	}
	log.Printf("[INFO] permissions role=%s diganti (%d entri)", role, len(req.Permissions))
	return helper.JsonUpdated(c, "Role permissions diperbarui", dto.FromModel(*row))
}
