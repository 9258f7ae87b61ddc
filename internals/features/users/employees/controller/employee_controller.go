package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hrms_backend/internals/constants"
	authService "hrms_backend/internals/features/users/auth/service"
	"hrms_backend/internals/features/users/employees/dto"
	"hrms_backend/internals/features/users/employees/model"
	helper "hrms_backend/internals/helpers"
)

type EmployeeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db, Validator: validator.New()}
}

// GET /api/a/employees?q=&role=&active=&page=&per_page=
func (ec *EmployeeController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "asc", helper.AdminOpts)

	q := ec.DB.WithContext(c.UserContext()).Model(&model.EmployeeModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		q = q.Where("full_name ILIKE ? OR email ILIKE ? OR employee_code ILIKE ?", like, like, like)
	}
	if role := strings.ToLower(strings.TrimSpace(c.Query("role"))); role != "" {
		q = q.Where("role = ?", role)
	}
	switch strings.ToLower(c.Query("active")) {
	case "1", "true":
		q = q.Where("is_active = TRUE")
	case "0", "false":
		q = q.Where("is_active = FALSE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] count employees:", err)
		return helper.JsonRetryableError(c, "Gagal mengambil data employee")
	}

	order := "employee_code ASC"
	if p.Desc() {
		order = "employee_code DESC"
	}
	rows := make([]model.EmployeeModel, 0)
	if err := q.Order(order).Offset(p.Offset()).Limit(p.Limit()).Find(&rows).Error; err != nil {
		log.Println("[ERROR] list employees:", err)
		return helper.JsonRetryableError(c, "Gagal mengambil data employee")
	}
	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildMeta(total, p))
}

// POST /api/a/employees
func (ec *EmployeeController) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ec.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Role == constants.RoleAdmin && !isAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdmin("pembuatan akun admin"))
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	emp := model.EmployeeModel{
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Email:        req.Email,
		Password:     hashed,
		Role:         req.Role,
		IsActive:     true,
	}
	if err := ec.DB.WithContext(c.UserContext()).Create(&emp).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email atau kode employee sudah dipakai")
		}
		log.Println("[ERROR] create employee:", err)
		return helper.JsonRetryableError(c, "Gagal membuat employee")
	}
	log.Printf("[INFO] employee dibuat code=%s role=%s", emp.EmployeeCode, emp.Role)
	return helper.JsonCreated(c, "Employee dibuat", dto.FromModel(&emp))
}

// PATCH /api/a/employees/:id
func (ec *EmployeeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ec.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	changes := req.Apply()
	if len(changes) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada perubahan")
	}

	admin := isAdmin(c)
	if !admin {
		if req.Role != nil && *req.Role == constants.RoleAdmin {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdmin("penetapan role admin"))
		}
		if callerID, err := helper.GetUserIDFromToken(c); err == nil && callerID == id && req.Role != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh mengubah role sendiri")
		}
	}

	var emp model.EmployeeModel
	err = ec.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&emp, "id = ?", id).Error; err != nil {
			return err
		}
		if emp.Role == constants.RoleAdmin && !admin {
			return errAdminTarget
		}
		return tx.Model(&emp).Updates(changes).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Employee tidak ditemukan")
	}
	if errors.Is(err, errAdminTarget) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdmin("perubahan akun admin"))
	}
	if err != nil {
		log.Println("[ERROR] update employee:", err)
		return helper.JsonRetryableError(c, "Gagal mengubah employee")
	}
	return helper.JsonUpdated(c, "Employee diperbarui", dto.FromModel(&emp))
}

var errAdminTarget = errors.New("akun admin hanya boleh diubah admin")

// isAdmin: role pemanggil dari locals (diisi AuthJWT dari baris employee).
func isAdmin(c *fiber.Ctx) bool {
	return helper.GetRoleFromToken(c) == constants.RoleAdmin
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
