package repository

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hrms_backend/internals/features/users/permissions/model"
)

// FindPermissionsByRole: role tanpa baris → slice kosong (tanpa izin).
func FindPermissionsByRole(ctx context.Context, db *gorm.DB, role string) ([]string, error) {
	var row model.RolePermissionModel
	err := db.WithContext(ctx).Where("role_permission_role = ?", role).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return []string(row.Permissions), nil
}

// Loader membungkus FindPermissionsByRole untuk middleware capability.
func Loader(db *gorm.DB) func(ctx context.Context, role string) ([]string, error) {
	return func(ctx context.Context, role string) ([]string, error) {
		return FindPermissionsByRole(ctx, db, role)
	}
}

// SeedRolePermissions hanya insert role yang belum ada (tidak menimpa editan HR).
func SeedRolePermissions(ctx context.Context, db *gorm.DB, perms map[string][]string) error {
	rows := make([]model.RolePermissionModel, 0, len(perms))
	for role, list := range perms {
		rows = append(rows, model.RolePermissionModel{Role: role, Permissions: pq.StringArray(list)})
	}
	if len(rows) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func ListRolePermissions(ctx context.Context, db *gorm.DB) ([]model.RolePermissionModel, error) {
	rows := make([]model.RolePermissionModel, 0)
	err := db.WithContext(ctx).Order("role_permission_role ASC").Find(&rows).Error
	return rows, err
}

// UpsertRolePermissions menimpa daftar izin satu role.
func UpsertRolePermissions(ctx context.Context, db *gorm.DB, role string, entries []string) (*model.RolePermissionModel, error) {
	row := model.RolePermissionModel{Role: role, Permissions: pq.StringArray(entries)}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "role_permission_role"}},
			DoUpdates: clause.AssignmentColumns([]string{"role_permission_permissions", "role_permission_updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
