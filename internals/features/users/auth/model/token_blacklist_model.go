package model

import (
	"time"

	"gorm.io/gorm"
)

// TokenBlacklist menyimpan HMAC(access_token), bukan token mentah.
type TokenBlacklist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Token     string         `gorm:"type:text;not null;unique" json:"-"`
	ExpiredAt time.Time      `gorm:"type:timestamptz;not null;index" json:"expired_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
