package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	employeeModel "hrms_backend/internals/features/users/employees/model"
)

// AttendanceSessionModel: satu sesi kerja per employee per hari lokal.
// Index partial uq_attendance_sessions_open (employee_id WHERE ended_at IS NULL) dibuat lewat SQL di migrasi.
type AttendanceSessionModel struct {
	// PK
	AttendanceSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_session_id" json:"attendance_session_id"`

	// FK + day key (unik berdua)
	AttendanceSessionEmployeeID uuid.UUID      `gorm:"type:uuid;not null;column:attendance_session_employee_id;uniqueIndex:uq_attendance_sessions_employee_date,priority:1" json:"attendance_session_employee_id"`
	AttendanceSessionDate       datatypes.Date `gorm:"type:date;not null;column:attendance_session_date;uniqueIndex:uq_attendance_sessions_employee_date,priority:2;index:idx_attendance_sessions_date" json:"attendance_session_date"`

	AttendanceSessionStartedAt time.Time  `gorm:"type:timestamptz;not null;column:attendance_session_started_at" json:"attendance_session_started_at"`
	AttendanceSessionEndedAt   *time.Time `gorm:"type:timestamptz;column:attendance_session_ended_at" json:"attendance_session_ended_at,omitempty"`

	// Jendela break terakhir (atau yang sedang berjalan)
	AttendanceSessionBreakStartedAt *time.Time `gorm:"type:timestamptz;column:attendance_session_break_started_at" json:"attendance_session_break_started_at,omitempty"`
	AttendanceSessionBreakEndedAt   *time.Time `gorm:"type:timestamptz;column:attendance_session_break_ended_at" json:"attendance_session_break_ended_at,omitempty"`

	// Dalam menit; working/overtime baru terisi saat sesi ditutup
	AttendanceSessionTotalBreakMinutes int  `gorm:"not null;default:0;check:chk_attendance_sessions_break_nonneg,attendance_session_total_break_minutes >= 0;column:attendance_session_total_break_minutes" json:"attendance_session_total_break_minutes"`
	AttendanceSessionWorkingMinutes    *int `gorm:"check:chk_attendance_sessions_working_nonneg,attendance_session_working_minutes >= 0;column:attendance_session_working_minutes" json:"attendance_session_working_minutes,omitempty"`
	AttendanceSessionOvertimeMinutes   *int `gorm:"check:chk_attendance_sessions_overtime_nonneg,attendance_session_overtime_minutes >= 0;column:attendance_session_overtime_minutes" json:"attendance_session_overtime_minutes,omitempty"`

	Employee *employeeModel.EmployeeModel `gorm:"foreignKey:AttendanceSessionEmployeeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	// Timestamps
	AttendanceSessionCreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;column:attendance_session_created_at" json:"attendance_session_created_at"`
	AttendanceSessionUpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime;column:attendance_session_updated_at" json:"attendance_session_updated_at"`
}

func (AttendanceSessionModel) TableName() string {
	return "attendance_sessions"
}

func (m *AttendanceSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceSessionID == uuid.Nil {
		m.AttendanceSessionID = uuid.New()
	}
	return nil
}

func (m *AttendanceSessionModel) IsOpen() bool {
	return m != nil && m.AttendanceSessionEndedAt == nil
}

// OnBreak: break dimulai tapi belum diakhiri.
func (m *AttendanceSessionModel) OnBreak() bool {
	return m.IsOpen() && m.AttendanceSessionBreakStartedAt != nil && m.AttendanceSessionBreakEndedAt == nil
}

// Day: day key sebagai time.Time (00:00 UTC).
func (m *AttendanceSessionModel) Day() time.Time {
	y, mo, d := time.Time(m.AttendanceSessionDate).Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

// OpenSessionIndexSQL: satu sesi terbuka per employee di level storage.
const OpenSessionIndexSQL = `
CREATE UNIQUE INDEX IF NOT EXISTS uq_attendance_sessions_open
  ON attendance_sessions (attendance_session_employee_id)
  WHERE attendance_session_ended_at IS NULL`
