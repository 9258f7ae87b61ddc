package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	attendanceModel "hrms_backend/internals/features/attendance/sessions/model"
	authModel "hrms_backend/internals/features/users/auth/model"
	employeeModel "hrms_backend/internals/features/users/employees/model"
	permissionModel "hrms_backend/internals/features/users/permissions/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] Koneksi ke PostgreSQL...")

	// statement_timeout selaras dengan timeout request (5s)
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=hrms&options=-c%%20statement_timeout=3000",
		configs.GetEnv("DB_USER"),
		configs.GetEnv("DB_PASSWORD"),
		configs.GetEnv("DB_HOST", "localhost"),
		configs.GetEnv("DB_PORT", "5432"),
		configs.GetEnv("DB_NAME"),
		configs.GetEnv("DB_SSLMODE", "require"),
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger:  configs.NewGormLogger(),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("[ERROR] Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	// isi pool dulu supaya request pertama tidak kena cold start
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(); err != nil {
			log.Printf("[WARN] warm-up ping err: %v", err)
			return
		}
		DB.Exec("SELECT 1 FROM attendance_sessions LIMIT 1")
	}()
}

// AutoMigrate: tabel + index partial yang tidak bisa diekspresikan lewat tag GORM.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("[WARN] pgcrypto: %v", err)
	}
	if err := db.AutoMigrate(
		&employeeModel.EmployeeModel{},
		&authModel.TokenBlacklist{},
		&permissionModel.RolePermissionModel{},
		&attendanceModel.AttendanceSessionModel{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	if err := db.Exec(attendanceModel.OpenSessionIndexSQL).Error; err != nil {
		return fmt.Errorf("index sesi terbuka: %w", err)
	}
	return nil
}

func Ping() error {
	if DB == nil {
		return fmt.Errorf("db belum terkoneksi")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
