package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeModel: identitas login sekaligus baris yang di-lock per transisi absensi.
type EmployeeModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	EmployeeCode string         `gorm:"type:varchar(32);not null;uniqueIndex;column:employee_code" json:"employee_code"`
	FullName     string         `gorm:"type:varchar(120);not null;column:full_name" json:"full_name"`
	Email        string         `gorm:"type:varchar(255);not null;uniqueIndex;column:email" json:"email"`
	Password     string         `gorm:"type:varchar(255);not null;column:password" json:"-"`
	Role         string         `gorm:"type:varchar(32);not null;default:'employee';column:role" json:"role"`
	IsActive     bool           `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt    time.Time      `gorm:"type:timestamptz;autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"type:timestamptz;autoUpdateTime;column:updated_at" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index;column:deleted_at" json:"-"`
}

func (EmployeeModel) TableName() string { return "employees" }

func (e *EmployeeModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
