package model

import (
	"time"

	"github.com/lib/pq"
)

// RolePermissionModel: satu baris per role, isi "module:action".
type RolePermissionModel struct {
	Role        string         `gorm:"type:varchar(32);primaryKey;column:role_permission_role" json:"role"`
	Permissions pq.StringArray `gorm:"type:text[];not null;default:'{}';column:role_permission_permissions" json:"permissions"`
	UpdatedAt   time.Time      `gorm:"type:timestamptz;autoUpdateTime;column:role_permission_updated_at" json:"updated_at"`
}

func (RolePermissionModel) TableName() string { return "role_permissions" }
