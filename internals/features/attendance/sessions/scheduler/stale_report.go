package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	"hrms_backend/internals/features/attendance/sessions/model"
	"hrms_backend/internals/features/attendance/sessions/repository"
	"hrms_backend/internals/features/attendance/sessions/service"
	"hrms_backend/internals/helpers/dbtime"
)

// StaleLister: sumber sesi terbuka dari hari-hari sebelumnya.
type StaleLister interface {
	StaleOpenSessions(ctx context.Context) ([]model.AttendanceSessionModel, error)
}

// ReportStaleSessions hanya mencatat; sesi basi wajib ditutup manual.
func ReportStaleSessions(ctx context.Context, src StaleLister) (int, error) {
	rows, err := src.StaleOpenSessions(ctx)
	if err != nil {
		return 0, err
	}
	for _, s := range rows {
		log.Printf("[WARN] sesi absensi belum ditutup: employee=%s tanggal=%s mulai=%s",
			s.AttendanceSessionEmployeeID, dbtime.FormatDay(s.Day()), s.AttendanceSessionStartedAt.Format(time.RFC3339))
	}
	if len(rows) > 0 {
		log.Printf("[WARN] total %d sesi absensi basi", len(rows))
	}
	return len(rows), nil
}

// RegisterStaleSessionReport memasang job ke cron (ekspresi 5 field, zona UTC server).
func RegisterStaleSessionReport(c *cron.Cron, db *gorm.DB, cfg configs.AttendanceConfig) (cron.EntryID, error) {
	tr := service.NewTracker(repository.NewGormStore(db), service.SystemClock{}, cfg.Location, cfg.StandardShiftMinutes)
	return c.AddFunc(cfg.StaleReportCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := ReportStaleSessions(ctx, tr); err != nil {
			log.Printf("[ERROR] laporan sesi basi: %v", err)
		}
	})
}
