package seeds

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	"hrms_backend/internals/constants"
	"hrms_backend/internals/seeds/employees"
	"hrms_backend/internals/seeds/permissions"
)

// RunAllSeeds dijalankan kalau DB_SEED=true. Idempotent.
func RunAllSeeds(db *gorm.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	//* Permissions
	if err := permissions.SeedDefaultRolePermissions(ctx, db); err != nil {
		log.Printf("[ERROR] seed role permissions: %v", err)
	}

	//* Admin awal
	if email := configs.GetEnv("SEED_ADMIN_EMAIL"); email != "" {
		err := employees.SeedEmployee(ctx, db, employees.EmployeeSeed{
			EmployeeCode: configs.GetEnv("SEED_ADMIN_CODE", "ADM-0001"),
			FullName:     configs.GetEnv("SEED_ADMIN_NAME", "Administrator"),
			Email:        email,
			Password:     configs.GetEnv("SEED_ADMIN_PASSWORD"),
			Role:         constants.RoleAdmin,
		})
		if err != nil {
			log.Printf("[ERROR] seed admin: %v", err)
		}
	}

	//* Employees dari file
	if path := configs.GetEnv("SEED_EMPLOYEES_FILE"); path != "" {
		if err := employees.SeedEmployeesFromJSON(ctx, db, path); err != nil {
			log.Printf("[ERROR] seed employees: %v", err)
		}
	}
}
