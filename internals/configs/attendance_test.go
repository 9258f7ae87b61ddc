package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAttendanceConfigDefaults(t *testing.T) {
	t.Setenv("ATTENDANCE_UTC_OFFSET", "")
	t.Setenv("ATTENDANCE_STANDARD_SHIFT_HOURS", "")
	t.Setenv("ATTENDANCE_STALE_CRON", "")

	cfg, err := LoadAttendanceConfig()
	require.NoError(t, err)

	_, secs := time.Now().In(cfg.Location).Zone()
	assert.Equal(t, 5*3600+45*60, secs)
	assert.Equal(t, 480, cfg.StandardShiftMinutes)
	assert.Equal(t, "30 0 * * *", cfg.StaleReportCron)
}

func TestLoadAttendanceConfigFractionalShift(t *testing.T) {
	t.Setenv("ATTENDANCE_UTC_OFFSET", "-03:30")
	t.Setenv("ATTENDANCE_STANDARD_SHIFT_HOURS", "7.5")

	cfg, err := LoadAttendanceConfig()
	require.NoError(t, err)

	_, secs := time.Now().In(cfg.Location).Zone()
	assert.Equal(t, -(3*3600 + 30*60), secs)
	assert.Equal(t, 450, cfg.StandardShiftMinutes)
}

func TestLoadAttendanceConfigRejectsInvalid(t *testing.T) {
	t.Setenv("ATTENDANCE_UTC_OFFSET", "Asia/Kathmandu")
	_, err := LoadAttendanceConfig()
	assert.Error(t, err)

	t.Setenv("ATTENDANCE_UTC_OFFSET", "+05:45")
	for _, shift := range []string{"0", "-1", "25", "abc", "NaN", "0.001"} {
		t.Setenv("ATTENDANCE_STANDARD_SHIFT_HOURS", shift)
		_, err = LoadAttendanceConfig()
		assert.Error(t, err, "shift %q", shift)
	}

	t.Setenv("ATTENDANCE_STANDARD_SHIFT_HOURS", "8")
	t.Setenv("ATTENDANCE_STALE_CRON", "every night")
	_, err = LoadAttendanceConfig()
	assert.Error(t, err)
}

func TestLoadAttendanceConfigRoundsShiftMinutes(t *testing.T) {
	t.Setenv("ATTENDANCE_UTC_OFFSET", "+00:00")
	t.Setenv("ATTENDANCE_STANDARD_SHIFT_HOURS", "0.0167")
	t.Setenv("ATTENDANCE_STALE_CRON", "*/15 * * * *")

	cfg, err := LoadAttendanceConfig()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.StandardShiftMinutes)
	assert.Equal(t, "*/15 * * * *", cfg.StaleReportCron)
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("X_FLAG", "yes")
	assert.True(t, GetEnvBool("X_FLAG", false))
	t.Setenv("X_FLAG", "off")
	assert.False(t, GetEnvBool("X_FLAG", true))
	t.Setenv("X_FLAG", "maybe")
	assert.True(t, GetEnvBool("X_FLAG", true))
}
