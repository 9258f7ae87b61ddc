package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"hrms_backend/internals/features/users/auth/dto"
	authRepo "hrms_backend/internals/features/users/auth/repository"
	"hrms_backend/internals/features/users/auth/service"
	helper "hrms_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Secret    string
	TTL       time.Duration
	Now       func() time.Time
}

func NewAuthController(db *gorm.DB, secret string, ttl time.Duration) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
		Secret:    secret,
		TTL:       ttl,
		Now:       time.Now,
	}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ac.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	emp, err := authRepo.FindEmployeeByEmailOrCode(c.UserContext(), ac.DB, req.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, service.ErrInvalidCredentials.Error())
		}
		log.Printf("[ERROR] login lookup: %v", err)
		return helper.JsonRetryableError(c, "Gagal memproses login")
	}
	if err := service.CheckPasswordHash(emp.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if !emp.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	token, exp, err := service.IssueAccessToken(ac.Secret, *emp, ac.TTL, ac.Now())
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  exp,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   exp,
		Employee:    dto.FromEmployee(emp),
	})
}

// POST /api/auth/logout (butuh AuthJWT)
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	raw, _ := c.Locals(helper.LocRawToken).(string)
	claims, _ := c.Locals("jwt_claims").(jwt.MapClaims)

	exp := service.TokenExpiry(claims, ac.Now().Add(ac.TTL))
	if err := authRepo.BlacklistToken(c.UserContext(), ac.DB, raw, ac.Secret, exp); err != nil {
		log.Printf("[ERROR] blacklist token: %v", err)
		return helper.JsonRetryableError(c, "Gagal logout")
	}

	c.ClearCookie("access_token")
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// GET /api/auth/me (butuh AuthJWT)
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	emp, err := authRepo.FindEmployeeByID(c.UserContext(), ac.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
		}
		return helper.JsonRetryableError(c, "Gagal mengambil profil")
	}
	return helper.JsonOK(c, "ok", dto.FromEmployee(emp))
}
