// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "hrms_backend/internals/features/users/auth/model"
	employeeModel "hrms_backend/internals/features/users/employees/model"
)

/* ====================== EMPLOYEE ====================== */

func FindEmployeeByEmailOrCode(ctx context.Context, db *gorm.DB, identifier string) (*employeeModel.EmployeeModel, error) {
	identifier = strings.TrimSpace(identifier)
	var emp employeeModel.EmployeeModel
	if err := db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?) OR employee_code = ?", identifier, identifier).
		First(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func FindEmployeeByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*employeeModel.EmployeeModel, error) {
	var emp employeeModel.EmployeeModel
	if err := db.WithContext(ctx).First(&emp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

// FindEmployeeAccess: role & status aktif terkini. active=false (tanpa error) kalau employee tidak ada.
func FindEmployeeAccess(ctx context.Context, db *gorm.DB, id uuid.UUID) (role string, active bool, err error) {
	var row struct {
		Role     string
		IsActive bool
	}
	err = db.WithContext(ctx).
		Model(&employeeModel.EmployeeModel{}).
		Select("role", "is_active").
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Role, row.IsActive, nil
}

/* ====================== BLACKLIST TOKEN ====================== */

func hmacHex(msg, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(msg))
	return hex.EncodeToString(m.Sum(nil))
}

func BlacklistToken(ctx context.Context, db *gorm.DB, rawToken, secret string, expiredAt time.Time) error {
	if strings.TrimSpace(rawToken) == "" {
		return nil
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&authModel.TokenBlacklist{
			Token:     hmacHex(rawToken, secret),
			ExpiredAt: expiredAt.UTC(),
		}).Error
}

func IsTokenBlacklisted(ctx context.Context, db *gorm.DB, rawToken, secret string) (bool, error) {
	var exists bool
	err := db.WithContext(ctx).
		Raw(`SELECT EXISTS(SELECT 1 FROM token_blacklist WHERE token = ? AND deleted_at IS NULL)`, hmacHex(rawToken, secret)).
		Scan(&exists).Error
	return exists, err
}

// CleanupExpiredBlacklist hard delete baris yang expired sebelum `before`.
func CleanupExpiredBlacklist(ctx context.Context, db *gorm.DB, before time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Unscoped().
		Where("expired_at < ?", before.UTC()).
		Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
