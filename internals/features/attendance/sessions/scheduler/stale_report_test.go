package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"hrms_backend/internals/configs"
	"hrms_backend/internals/features/attendance/sessions/model"
)

type listerFunc func(ctx context.Context) ([]model.AttendanceSessionModel, error)

func (f listerFunc) StaleOpenSessions(ctx context.Context) ([]model.AttendanceSessionModel, error) {
	return f(ctx)
}

func TestReportStaleSessionsCounts(t *testing.T) {
	rows := []model.AttendanceSessionModel{
		{
			AttendanceSessionEmployeeID: uuid.New(),
			AttendanceSessionDate:       datatypes.Date(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)),
			AttendanceSessionStartedAt:  time.Date(2025, 3, 9, 3, 0, 0, 0, time.UTC),
		},
	}
	n, err := ReportStaleSessions(context.Background(), listerFunc(func(context.Context) ([]model.AttendanceSessionModel, error) {
		return rows, nil
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReportStaleSessionsPropagatesError(t *testing.T) {
	_, err := ReportStaleSessions(context.Background(), listerFunc(func(context.Context) ([]model.AttendanceSessionModel, error) {
		return nil, errors.New("db down")
	}))
	assert.Error(t, err)
}

func TestRegisterRejectsInvalidCron(t *testing.T) {
	c := cron.New()
	_, err := RegisterStaleSessionReport(c, nil, configs.AttendanceConfig{Location: time.UTC, StaleReportCron: "every day"})
	assert.Error(t, err)

	id, err := RegisterStaleSessionReport(c, nil, configs.AttendanceConfig{Location: time.UTC, StaleReportCron: "30 0 * * *"})
	require.NoError(t, err)
	assert.NotZero(t, id)
}
