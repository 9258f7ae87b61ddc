package configs

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"hrms_backend/internals/helpers/dbtime"
)

type AttendanceConfig struct {
	Location             *time.Location
	UTCOffset            string
	StandardShiftMinutes int
	StaleReportCron      string
}

// LoadAttendanceConfig: offset/shift tidak valid → error saat boot, bukan diam-diam default.
func LoadAttendanceConfig() (AttendanceConfig, error) {
	offset := GetEnv("ATTENDANCE_UTC_OFFSET", "+05:45")
	loc, err := dbtime.ParseUTCOffset(offset)
	if err != nil {
		return AttendanceConfig{}, fmt.Errorf("ATTENDANCE_UTC_OFFSET: %w", err)
	}

	shiftRaw := strings.TrimSpace(GetEnv("ATTENDANCE_STANDARD_SHIFT_HOURS", "8"))
	hours, err := strconv.ParseFloat(shiftRaw, 64)
	if err != nil || math.IsNaN(hours) || hours <= 0 || hours > 24 {
		return AttendanceConfig{}, fmt.Errorf("ATTENDANCE_STANDARD_SHIFT_HOURS=%q harus angka 0 < x <= 24", shiftRaw)
	}
	// minimal 1 menit, kalau tidak semua menit kerja jadi lembur
	minutes := int(math.Round(hours * 60))
	if minutes < 1 {
		return AttendanceConfig{}, fmt.Errorf("ATTENDANCE_STANDARD_SHIFT_HOURS=%q kurang dari 1 menit", shiftRaw)
	}

	staleCron := strings.TrimSpace(GetEnv("ATTENDANCE_STALE_CRON", "30 0 * * *"))
	if _, err := cron.ParseStandard(staleCron); err != nil {
		return AttendanceConfig{}, fmt.Errorf("ATTENDANCE_STALE_CRON=%q: %w", staleCron, err)
	}

	return AttendanceConfig{
		Location:             loc,
		UTCOffset:            offset,
		StandardShiftMinutes: minutes,
		StaleReportCron:      staleCron,
	}, nil
}
