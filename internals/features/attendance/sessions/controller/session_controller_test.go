package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"hrms_backend/internals/features/attendance/sessions/model"
	"hrms_backend/internals/features/attendance/sessions/repository"
	"hrms_backend/internals/features/attendance/sessions/service"
	helper "hrms_backend/internals/helpers"
	"hrms_backend/internals/helpers/apperr"
)

type stubTracker struct {
	session *model.AttendanceSessionModel
	snap    service.Snapshot
	rows    []model.AttendanceSessionModel
	err     error

	gotEmployee uuid.UUID
	gotFilter   repository.ListFilter
}

func (s *stubTracker) call(id uuid.UUID) (*model.AttendanceSessionModel, error) {
	s.gotEmployee = id
	return s.session, s.err
}

func (s *stubTracker) Start(_ context.Context, id uuid.UUID) (*model.AttendanceSessionModel, error) {
	return s.call(id)
}
func (s *stubTracker) Stop(_ context.Context, id uuid.UUID) (*model.AttendanceSessionModel, error) {
	return s.call(id)
}
func (s *stubTracker) StartBreak(_ context.Context, id uuid.UUID) (*model.AttendanceSessionModel, error) {
	return s.call(id)
}
func (s *stubTracker) EndBreak(_ context.Context, id uuid.UUID) (*model.AttendanceSessionModel, error) {
	return s.call(id)
}
func (s *stubTracker) Active(_ context.Context, id uuid.UUID) (service.Snapshot, error) {
	s.gotEmployee = id
	return s.snap, s.err
}
func (s *stubTracker) History(_ context.Context, f repository.ListFilter) ([]model.AttendanceSessionModel, int64, error) {
	s.gotFilter = f
	return s.rows, int64(len(s.rows)), s.err
}

func sampleSession(emp uuid.UUID) *model.AttendanceSessionModel {
	start := time.Date(2025, 3, 10, 3, 15, 0, 0, time.UTC)
	end := start.Add(9 * time.Hour)
	working, overtime := 510, 30
	return &model.AttendanceSessionModel{
		AttendanceSessionID:                uuid.New(),
		AttendanceSessionEmployeeID:        emp,
		AttendanceSessionDate:              datatypes.Date(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)),
		AttendanceSessionStartedAt:         start,
		AttendanceSessionEndedAt:           &end,
		AttendanceSessionTotalBreakMinutes: 30,
		AttendanceSessionWorkingMinutes:    &working,
		AttendanceSessionOvertimeMinutes:   &overtime,
	}
}

func newTestApp(tr Tracker, emp uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if emp != uuid.Nil {
			c.Locals(helper.LocUserID, emp.String())
		}
		return c.Next()
	})
	ctl := NewAttendanceController(tr, time.FixedZone("UTC+05:45", 20700))
	app.Get("/active", ctl.Active)
	app.Post("/start", ctl.Start)
	app.Post("/stop", ctl.Stop)
	app.Post("/break/start", ctl.StartBreak)
	app.Post("/break/end", ctl.EndBreak)
	app.Get("/history", ctl.History)
	app.Get("/sessions", ctl.ListSessions)
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestStopReturnsDecimalHours(t *testing.T) {
	emp := uuid.New()
	tr := &stubTracker{session: sampleSession(emp)}
	app := newTestApp(tr, emp)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/stop", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, emp, tr.gotEmployee)

	data := decode(t, resp)["data"].(map[string]any)
	assert.Equal(t, 8.5, data["working_hours"])
	assert.Equal(t, 0.5, data["overtime_hours"])
	assert.Equal(t, "2025-03-10", data["attendance_session_date"])
	assert.Equal(t, "closed", data["attendance_session_state"])
}

func TestStartReturnsCreated(t *testing.T) {
	emp := uuid.New()
	s := sampleSession(emp)
	tr := &stubTracker{session: s}

	resp, err := newTestApp(tr, emp).Test(httptest.NewRequest(http.MethodPost, "/start", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	data := decode(t, resp)["data"].(map[string]any)
	assert.Equal(t, s.AttendanceSessionID.String(), data["attendance_session_id"])
}

func TestErrorKindsMapToStatus(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		err    error
		status int
		code   string
	}{
		{"conflict", "/start", apperr.Conflict("Sudah check-in hari ini"), http.StatusConflict, "CONFLICT"},
		{"not found", "/break/end", apperr.NotFound("Tidak ada istirahat"), http.StatusNotFound, "NOT_FOUND"},
		{"persistence", "/stop", apperr.Persistence("db", errors.New("timeout")), http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{"break conflict", "/break/start", apperr.Conflict("Sedang istirahat"), http.StatusConflict, "CONFLICT"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			emp := uuid.New()
			resp, err := newTestApp(&stubTracker{err: tc.err}, emp).Test(httptest.NewRequest(http.MethodPost, tc.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			if tc.status == http.StatusServiceUnavailable {
				assert.Equal(t, "1", resp.Header.Get("Retry-After"))
			}
			body := decode(t, resp)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.code, body["error_code"])
		})
	}
}

func TestMissingIdentityIsUnauthorized(t *testing.T) {
	resp, err := newTestApp(&stubTracker{}, uuid.Nil).Test(httptest.NewRequest(http.MethodGet, "/active", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestActiveSnapshotNoSession(t *testing.T) {
	emp := uuid.New()
	tr := &stubTracker{snap: service.Snapshot{State: service.StateNoSession, At: time.Now()}}

	resp, err := newTestApp(tr, emp).Test(httptest.NewRequest(http.MethodGet, "/active", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := decode(t, resp)["data"].(map[string]any)
	assert.Equal(t, "no_session", data["state"])
	assert.Nil(t, data["session"])
}

func TestHistoryIsScopedToCaller(t *testing.T) {
	emp := uuid.New()
	tr := &stubTracker{rows: []model.AttendanceSessionModel{*sampleSession(emp)}}

	req := httptest.NewRequest(http.MethodGet, "/history?from=2025-03-01&to=2025-03-31&employee_id="+uuid.NewString()+"&page=2&per_page=10", nil)
	resp, err := newTestApp(tr, emp).Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, tr.gotFilter.EmployeeID)
	assert.Equal(t, emp, *tr.gotFilter.EmployeeID)
	assert.Equal(t, 10, tr.gotFilter.Offset)
	assert.Equal(t, 10, tr.gotFilter.Limit)
	assert.True(t, tr.gotFilter.SortDesc)

	body := decode(t, resp)
	assert.Len(t, body["data"], 1)
	assert.NotNil(t, body["pagination"])
}

func TestHistoryRejectsBadDate(t *testing.T) {
	emp := uuid.New()
	resp, err := newTestApp(&stubTracker{}, emp).Test(httptest.NewRequest(http.MethodGet, "/history?from=03/01/2025", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decode(t, resp)
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "from")
}

func TestAdminListFiltersOpenSessions(t *testing.T) {
	target := uuid.New()
	tr := &stubTracker{}

	req := httptest.NewRequest(http.MethodGet, "/sessions?open=true&order=asc&employee_id="+target.String(), nil)
	resp, err := newTestApp(tr, uuid.New()).Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.True(t, tr.gotFilter.OpenOnly)
	assert.False(t, tr.gotFilter.SortDesc)
	require.NotNil(t, tr.gotFilter.EmployeeID)
	assert.Equal(t, target, *tr.gotFilter.EmployeeID)
}
