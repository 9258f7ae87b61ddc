package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"hrms_backend/internals/features/users/employees/model"
)

// CreateEmployeeRequest: kode & password diberikan HR (tidak di-generate).
type CreateEmployeeRequest struct {
	EmployeeCode string `json:"employee_code" validate:"required,max=32"`
	FullName     string `json:"full_name" validate:"required,max=120"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Password     string `json:"password" validate:"required,min=8,max=128"`
	Role         string `json:"role" validate:"required,oneof=employee manager hr admin"`
}

func (r *CreateEmployeeRequest) Normalize() {
	r.EmployeeCode = strings.TrimSpace(r.EmployeeCode)
	r.FullName = cleanName(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

// UpdateEmployeeRequest: PATCH parsial, field nil tidak diubah.
type UpdateEmployeeRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=120"`
	Role     *string `json:"role" validate:"omitempty,oneof=employee manager hr admin"`
	IsActive *bool   `json:"is_active"`
}

func (r *UpdateEmployeeRequest) Normalize() {
	if r.FullName != nil {
		v := cleanName(*r.FullName)
		r.FullName = &v
	}
	if r.Role != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Role))
		r.Role = &v
	}
}

// cleanName: NFC supaya nama beraksen/devanagari dari input berbeda tetap sama,
// spasi ganda dirapatkan.
func cleanName(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// Apply mengembalikan kolom yang berubah (untuk Updates map).
func (r UpdateEmployeeRequest) Apply() map[string]any {
	out := map[string]any{}
	if r.FullName != nil {
		out["full_name"] = *r.FullName
	}
	if r.Role != nil {
		out["role"] = *r.Role
	}
	if r.IsActive != nil {
		out["is_active"] = *r.IsActive
	}
	return out
}

type EmployeeResponse struct {
	ID           uuid.UUID `json:"id"`
	EmployeeCode string    `json:"employee_code"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromModel(m *model.EmployeeModel) EmployeeResponse {
	return EmployeeResponse{
		ID:           m.ID,
		EmployeeCode: m.EmployeeCode,
		FullName:     m.FullName,
		Email:        m.Email,
		Role:         m.Role,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func FromModels(rows []model.EmployeeModel) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
