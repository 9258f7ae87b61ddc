package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hrms_backend/internals/features/attendance/sessions/model"
	employeeModel "hrms_backend/internals/features/users/employees/model"
	"hrms_backend/internals/helpers/apperr"
)

// Queries: operasi di dalam satu transaksi yang sudah memegang lock employee.
// Find* mengembalikan (nil, nil) kalau tidak ada.
type Queries interface {
	FindOpenByEmployee(employeeID uuid.UUID) (*model.AttendanceSessionModel, error)
	FindByEmployeeAndDate(employeeID uuid.UUID, day time.Time) (*model.AttendanceSessionModel, error)
	Create(s *model.AttendanceSessionModel) error
	// Update hanya menulis kalau sesi masih terbuka; selain itu Conflict.
	Update(s *model.AttendanceSessionModel) error
}

type Store interface {
	// Transact: satu tx, lock baris employee (FOR UPDATE) dulu baru fn.
	Transact(ctx context.Context, employeeID uuid.UUID, fn func(q Queries) error) error

	FindOpenByEmployee(ctx context.Context, employeeID uuid.UUID) (*model.AttendanceSessionModel, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, day time.Time) (*model.AttendanceSessionModel, error)
	List(ctx context.Context, f ListFilter) ([]model.AttendanceSessionModel, int64, error)
	ListOpenBefore(ctx context.Context, day time.Time) ([]model.AttendanceSessionModel, error)
}

type ListFilter struct {
	EmployeeID *uuid.UUID
	From       *time.Time // day key, inklusif
	To         *time.Time // day key, inklusif
	OpenOnly   bool
	Offset     int
	Limit      int
	SortDesc   bool
}

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Transact(ctx context.Context, employeeID uuid.UUID, fn func(q Queries) error) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var emp employeeModel.EmployeeModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", employeeID).
			Take(&emp).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Employee tidak ditemukan")
		}
		if err != nil {
			return err
		}
		return fn(&gormQueries{tx: tx})
	})
	return mapPGError(err)
}

func (s *GormStore) FindOpenByEmployee(ctx context.Context, employeeID uuid.UUID) (*model.AttendanceSessionModel, error) {
	m, err := findOpen(s.DB.WithContext(ctx), employeeID)
	return m, mapPGError(err)
}

func (s *GormStore) FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, day time.Time) (*model.AttendanceSessionModel, error) {
	m, err := findByDate(s.DB.WithContext(ctx), employeeID, day)
	return m, mapPGError(err)
}

func (s *GormStore) List(ctx context.Context, f ListFilter) ([]model.AttendanceSessionModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.AttendanceSessionModel{})
	if f.EmployeeID != nil {
		q = q.Where("attendance_session_employee_id = ?", *f.EmployeeID)
	}
	if f.From != nil {
		q = q.Where("attendance_session_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("attendance_session_date <= ?", *f.To)
	}
	if f.OpenOnly {
		q = q.Where("attendance_session_ended_at IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, mapPGError(err)
	}

	order := "attendance_session_date ASC, attendance_session_started_at ASC"
	if f.SortDesc {
		order = "attendance_session_date DESC, attendance_session_started_at DESC"
	}
	rows := make([]model.AttendanceSessionModel, 0)
	q = q.Order(order).Offset(f.Offset)
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, mapPGError(err)
	}
	return rows, total, nil
}

// ListOpenBefore: sesi yang masih terbuka dengan day key < day (lupa check-out).
func (s *GormStore) ListOpenBefore(ctx context.Context, day time.Time) ([]model.AttendanceSessionModel, error) {
	rows := make([]model.AttendanceSessionModel, 0)
	err := s.DB.WithContext(ctx).
		Where("attendance_session_ended_at IS NULL AND attendance_session_date < ?", day).
		Order("attendance_session_date ASC").
		Find(&rows).Error
	return rows, mapPGError(err)
}

type gormQueries struct {
	tx *gorm.DB
}

func (q *gormQueries) FindOpenByEmployee(employeeID uuid.UUID) (*model.AttendanceSessionModel, error) {
	return findOpen(q.tx, employeeID)
}

func (q *gormQueries) FindByEmployeeAndDate(employeeID uuid.UUID, day time.Time) (*model.AttendanceSessionModel, error) {
	return findByDate(q.tx, employeeID, day)
}

func (q *gormQueries) Create(s *model.AttendanceSessionModel) error {
	return q.tx.Omit(clause.Associations).Create(s).Error
}

func (q *gormQueries) Update(s *model.AttendanceSessionModel) error {
	res := q.tx.Model(&model.AttendanceSessionModel{}).
		Where("attendance_session_id = ? AND attendance_session_ended_at IS NULL", s.AttendanceSessionID).
		Updates(map[string]any{
			"attendance_session_ended_at":            s.AttendanceSessionEndedAt,
			"attendance_session_break_started_at":    s.AttendanceSessionBreakStartedAt,
			"attendance_session_break_ended_at":      s.AttendanceSessionBreakEndedAt,
			"attendance_session_total_break_minutes": s.AttendanceSessionTotalBreakMinutes,
			"attendance_session_working_minutes":     s.AttendanceSessionWorkingMinutes,
			"attendance_session_overtime_minutes":    s.AttendanceSessionOvertimeMinutes,
			"attendance_session_updated_at":          time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.Conflict("Sesi sudah ditutup")
	}
	return nil
}

func findOpen(db *gorm.DB, employeeID uuid.UUID) (*model.AttendanceSessionModel, error) {
	var m model.AttendanceSessionModel
	err := db.Where("attendance_session_employee_id = ? AND attendance_session_ended_at IS NULL", employeeID).
		Order("attendance_session_date DESC").
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func findByDate(db *gorm.DB, employeeID uuid.UUID, day time.Time) (*model.AttendanceSessionModel, error) {
	var m model.AttendanceSessionModel
	err := db.Where("attendance_session_employee_id = ? AND attendance_session_date = ?", employeeID, day).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// mapPGError: apperr diteruskan, 23505 → Conflict, sisanya Persistence (retryable).
func mapPGError(err error) error {
	if err == nil {
		return nil
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperr.Conflict("Sesi absensi untuk hari ini sudah ada")
		case "23503":
			return apperr.NotFound("Employee tidak ditemukan")
		}
	}
	return apperr.Persistence("Gagal mengakses data absensi", err)
}
