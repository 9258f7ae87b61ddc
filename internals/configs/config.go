package configs

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret        string
	AccessTokenTTL   time.Duration
	BlacklistTTLDays int
	CorsAllowOrigins []string
	DBAutoMigrate    bool
	DBSeed           bool
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] .env tidak ditemukan, pakai ENV dari sistem")
		} else {
			log.Println("[INFO] .env file dimuat")
		}
	} else {
		log.Println("[INFO] Running in Railway, pakai ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AccessTokenTTL = time.Duration(GetEnvInt("JWT_ACCESS_TTL_MINUTES", 60)) * time.Minute
	BlacklistTTLDays = GetEnvInt("TOKEN_BLACKLIST_TTL_DAYS", 7)
	CorsAllowOrigins = splitCSV(GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"))
	DBAutoMigrate = GetEnvBool("DB_AUTO_MIGRATE", true)
	DBSeed = GetEnvBool("DB_SEED", false)

	if JWTSecret == "" {
		log.Println("[ERROR] JWT_SECRET belum diset!")
	} else {
		log.Println("[INFO] JWT_SECRET berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || strings.TrimSpace(value) == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if s := strings.TrimSpace(os.Getenv(key)); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		log.Printf("[WARN] %s=%q bukan angka, pakai default %d", key, s, def)
	}
	return def
}

func GetEnvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "on", "yes":
		return true
	case "0", "false", "off", "no":
		return false
	}
	return def
}

func splitCSV(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	level := gormLogger.Warn
	if GetEnvBool("DB_LOG_QUERIES", false) {
		level = gormLogger.Info
	}
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error && !isRecordNotFound(err):
		sql, rows := fc()
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		sql, rows := fc()
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		sql, rows := fc()
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
