package dto

import (
	"strings"
	"time"

	employeeModel "hrms_backend/internals/features/users/employees/model"
)

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,max=255"`
	Password   string `json:"password" validate:"required,min=6,max=128"`
}

func (r *LoginRequest) Normalize() {
	r.Identifier = strings.TrimSpace(r.Identifier)
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
}

func FromEmployee(e *employeeModel.EmployeeModel) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID.String(),
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName,
		Email:        e.Email,
		Role:         e.Role,
	}
}

type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	ExpiresAt   time.Time        `json:"expires_at"`
	Employee    EmployeeResponse `json:"employee"`
}
