package employees

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"hrms_backend/internals/constants"
	"hrms_backend/internals/features/users/auth/service"
	"hrms_backend/internals/features/users/employees/model"
)

// EmployeeSeed: employee_code & password disediakan, tidak di-generate.
type EmployeeSeed struct {
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
}

// SeedEmployeesFromJSON: email yang sudah ada dilewati.
func SeedEmployeesFromJSON(ctx context.Context, db *gorm.DB, filePath string) error {
	log.Println("[INFO] Membaca file employee:", filePath)

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	var inputs []EmployeeSeed
	if err := sonic.Unmarshal(raw, &inputs); err != nil {
		return err
	}

	for _, in := range inputs {
		if err := SeedEmployee(ctx, db, in); err != nil {
			log.Printf("[WARN] seed employee %q: %v", in.Email, err)
		}
	}
	return nil
}

func SeedEmployee(ctx context.Context, db *gorm.DB, in EmployeeSeed) error {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Role = strings.ToLower(strings.TrimSpace(in.Role))
	if in.Email == "" || in.Password == "" || in.EmployeeCode == "" {
		return errors.New("email, password, employee_code wajib diisi")
	}
	if !constants.IsKnownRole(in.Role) {
		return errors.New("role tidak dikenal: " + in.Role)
	}

	var existing model.EmployeeModel
	err := db.WithContext(ctx).Where("email = ?", in.Email).Take(&existing).Error
	if err == nil {
		log.Printf("[INFO] Employee '%s' sudah ada, dilewati.", in.Email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := service.HashPassword(in.Password)
	if err != nil {
		return err
	}
	emp := model.EmployeeModel{
		EmployeeCode: strings.TrimSpace(in.EmployeeCode),
		FullName:     strings.TrimSpace(in.FullName),
		Email:        in.Email,
		Password:     hashed,
		Role:         in.Role,
		IsActive:     true,
	}
	if err := db.WithContext(ctx).Create(&emp).Error; err != nil {
		return err
	}
	log.Printf("[INFO] Berhasil insert employee '%s' (%s)", in.Email, in.Role)
	return nil
}
