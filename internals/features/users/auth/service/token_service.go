// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	employeeModel "hrms_backend/internals/features/users/employees/model"
)

var ErrMissingSecret = errors.New("JWT_SECRET kosong")

// IssueAccessToken: klaim minimal (id, role, user_name). Izin TIDAK ditaruh
// di token; dihitung ulang per request dari role_permissions.
func IssueAccessToken(secret string, emp employeeModel.EmployeeModel, ttl time.Duration, now time.Time) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	exp := now.Add(ttl).UTC()
	claims := jwt.MapClaims{
		"id":        emp.ID.String(),
		"role":      emp.Role,
		"user_name": emp.FullName,
		"iat":       now.Unix(),
		"exp":       exp.Unix(),
		"jti":       uuid.NewString(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// TokenExpiry membaca exp dari token yang sudah diverifikasi middleware.
func TokenExpiry(claims jwt.MapClaims, fallback time.Time) time.Time {
	switch v := claims["exp"].(type) {
	case float64:
		return time.Unix(int64(v), 0).UTC()
	case int64:
		return time.Unix(v, 0).UTC()
	}
	return fallback
}
