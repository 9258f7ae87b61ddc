package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	authRepo "hrms_backend/internals/features/users/auth/repository"
)

// RegisterBlacklistCleanup: tiap hari jam 03:00, hapus token blacklist yang
// sudah expired lebih dari ttlDays.
func RegisterBlacklistCleanup(c *cron.Cron, db *gorm.DB, ttlDays int) (cron.EntryID, error) {
	if ttlDays <= 0 {
		ttlDays = 7
	}
	return c.AddFunc("0 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		before := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)
		n, err := authRepo.CleanupExpiredBlacklist(ctx, db, before)
		if err != nil {
			log.Printf("[CLEANUP ERROR] Gagal hapus token kadaluarsa: %v", err)
			return
		}
		log.Printf("[CLEANUP] %d token kadaluarsa dihapus", n)
	})
}
