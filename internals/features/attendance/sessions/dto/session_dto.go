package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"hrms_backend/internals/features/attendance/sessions/model"
	"hrms_backend/internals/features/attendance/sessions/repository"
	"hrms_backend/internals/features/attendance/sessions/service"
	"hrms_backend/internals/helpers/dbtime"
)

/* ===============================
   Query
=================================*/

// HistoryQuery: ?from=YYYY-MM-DD&to=YYYY-MM-DD (employee & admin)
type HistoryQuery struct {
	From       string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To         string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	EmployeeID string `query:"employee_id" validate:"omitempty,uuid"`
	Open       string `query:"open" validate:"omitempty,oneof=1 0 true false"`
}

func (q *HistoryQuery) Normalize() {
	q.From = strings.TrimSpace(q.From)
	q.To = strings.TrimSpace(q.To)
	q.EmployeeID = strings.TrimSpace(q.EmployeeID)
	q.Open = strings.ToLower(strings.TrimSpace(q.Open))
}

// ToFilter: panggil setelah validasi. Paging diisi controller.
func (q HistoryQuery) ToFilter() repository.ListFilter {
	var f repository.ListFilter
	f.From, _ = dbtime.ParseDay(q.From)
	f.To, _ = dbtime.ParseDay(q.To)
	if q.EmployeeID != "" {
		if id, err := uuid.Parse(q.EmployeeID); err == nil {
			f.EmployeeID = &id
		}
	}
	f.OpenOnly = q.Open == "1" || q.Open == "true"
	return f
}

/* ===============================
   Response
=================================*/

type SessionResponse struct {
	AttendanceSessionID         uuid.UUID  `json:"attendance_session_id"`
	AttendanceSessionEmployeeID uuid.UUID  `json:"attendance_session_employee_id"`
	AttendanceSessionDate       string     `json:"attendance_session_date"`
	AttendanceSessionState      string     `json:"attendance_session_state"`
	AttendanceSessionStartedAt  time.Time  `json:"attendance_session_started_at"`
	AttendanceSessionEndedAt    *time.Time `json:"attendance_session_ended_at,omitempty"`

	AttendanceSessionBreakStartedAt    *time.Time `json:"attendance_session_break_started_at,omitempty"`
	AttendanceSessionBreakEndedAt      *time.Time `json:"attendance_session_break_ended_at,omitempty"`
	AttendanceSessionTotalBreakMinutes int        `json:"attendance_session_total_break_minutes"`

	AttendanceSessionWorkingMinutes  *int     `json:"attendance_session_working_minutes,omitempty"`
	AttendanceSessionOvertimeMinutes *int     `json:"attendance_session_overtime_minutes,omitempty"`
	WorkingHours                     *float64 `json:"working_hours,omitempty"`
	OvertimeHours                    *float64 `json:"overtime_hours,omitempty"`
}

func FromModel(m *model.AttendanceSessionModel, loc *time.Location) SessionResponse {
	r := SessionResponse{
		AttendanceSessionID:                m.AttendanceSessionID,
		AttendanceSessionEmployeeID:        m.AttendanceSessionEmployeeID,
		AttendanceSessionDate:              dbtime.FormatDay(m.Day()),
		AttendanceSessionState:             string(service.StateOf(m)),
		AttendanceSessionStartedAt:         m.AttendanceSessionStartedAt.In(loc),
		AttendanceSessionEndedAt:           dbtime.ToOrgTimePtr(m.AttendanceSessionEndedAt, loc),
		AttendanceSessionBreakStartedAt:    dbtime.ToOrgTimePtr(m.AttendanceSessionBreakStartedAt, loc),
		AttendanceSessionBreakEndedAt:      dbtime.ToOrgTimePtr(m.AttendanceSessionBreakEndedAt, loc),
		AttendanceSessionTotalBreakMinutes: m.AttendanceSessionTotalBreakMinutes,
		AttendanceSessionWorkingMinutes:    m.AttendanceSessionWorkingMinutes,
		AttendanceSessionOvertimeMinutes:   m.AttendanceSessionOvertimeMinutes,
	}
	if m.AttendanceSessionWorkingMinutes != nil {
		h := service.MinutesToHours(*m.AttendanceSessionWorkingMinutes)
		r.WorkingHours = &h
	}
	if m.AttendanceSessionOvertimeMinutes != nil {
		h := service.MinutesToHours(*m.AttendanceSessionOvertimeMinutes)
		r.OvertimeHours = &h
	}
	return r
}

func FromModels(rows []model.AttendanceSessionModel, loc *time.Location) []SessionResponse {
	out := make([]SessionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i], loc))
	}
	return out
}

// ActiveResponse: snapshot status (widget "sedang kerja / istirahat").
type ActiveResponse struct {
	State         string           `json:"state"`
	Session       *SessionResponse `json:"session"`
	WorkedMinutes int              `json:"worked_minutes"`
	WorkedHours   float64          `json:"worked_hours"`
	BreakMinutes  int              `json:"break_minutes"`
	At            time.Time        `json:"at"`
}

func FromSnapshot(s service.Snapshot, loc *time.Location) ActiveResponse {
	r := ActiveResponse{
		State:         string(s.State),
		WorkedMinutes: s.WorkedMinutes,
		WorkedHours:   service.MinutesToHours(s.WorkedMinutes),
		BreakMinutes:  s.BreakMinutes,
		At:            s.At.In(loc),
	}
	if s.Session != nil {
		sr := FromModel(s.Session, loc)
		r.Session = &sr
	}
	return r
}

// StartResponse: id sesi baru + jam mulai.
type StartResponse struct {
	AttendanceSessionID        uuid.UUID `json:"attendance_session_id"`
	AttendanceSessionDate      string    `json:"attendance_session_date"`
	AttendanceSessionStartedAt time.Time `json:"attendance_session_started_at"`
}

func ToStartResponse(m *model.AttendanceSessionModel, loc *time.Location) StartResponse {
	return StartResponse{
		AttendanceSessionID:        m.AttendanceSessionID,
		AttendanceSessionDate:      dbtime.FormatDay(m.Day()),
		AttendanceSessionStartedAt: m.AttendanceSessionStartedAt.In(loc),
	}
}
