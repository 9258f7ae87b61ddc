package permissions

import (
	"context"
	"log"

	permRepo "hrms_backend/internals/features/users/permissions/repository"
	permService "hrms_backend/internals/features/users/permissions/service"

	"gorm.io/gorm"
)

// SeedDefaultRolePermissions: hanya role yang belum punya baris.
func SeedDefaultRolePermissions(ctx context.Context, db *gorm.DB) error {
	if err := permRepo.SeedRolePermissions(ctx, db, permService.DefaultEntries()); err != nil {
		return err
	}
	log.Println("[INFO] Role permissions default siap")
	return nil
}
