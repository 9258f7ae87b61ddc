package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"hrms_backend/internals/features/attendance/sessions/model"
	"hrms_backend/internals/features/attendance/sessions/repository"
	"hrms_backend/internals/helpers/apperr"
	"hrms_backend/internals/helpers/dbtime"
)

// Tracker: state machine sesi absensi. Semua guard dicek sebelum ada write.
type Tracker struct {
	store        repository.Store
	clock        Clock
	loc          *time.Location
	shiftMinutes int
}

func NewTracker(store repository.Store, clock Clock, loc *time.Location, shiftMinutes int) *Tracker {
	if clock == nil {
		clock = SystemClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Tracker{store: store, clock: clock, loc: loc, shiftMinutes: shiftMinutes}
}

// Snapshot: hasil ActiveSession. WorkedMinutes & BreakMinutes dihitung s/d At.
type Snapshot struct {
	State         State
	Session       *model.AttendanceSessionModel
	WorkedMinutes int
	BreakMinutes  int
	At            time.Time
}

func (t *Tracker) Location() *time.Location { return t.loc }
func (t *Tracker) ShiftMinutes() int        { return t.shiftMinutes }

// Start: NO_SESSION → ACTIVE.
func (t *Tracker) Start(ctx context.Context, employeeID uuid.UUID) (*model.AttendanceSessionModel, error) {
	var created *model.AttendanceSessionModel
	err := t.store.Transact(ctx, employeeID, func(q repository.Queries) error {
		// jam dibaca setelah lock, supaya urutan timestamp ikut urutan commit
		now := t.clock.Now()
		day := dbtime.DayKey(now, t.loc)

		open, err := q.FindOpenByEmployee(employeeID)
		if err != nil {
			return err
		}
		if open != nil {
			if open.Day().Equal(day) {
				return apperr.Conflict("Sudah check-in hari ini")
			}
			return apperr.Conflict("Sesi tanggal " + dbtime.FormatDay(open.Day()) + " belum ditutup")
		}

		existing, err := q.FindByEmployeeAndDate(employeeID, day)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperr.Conflict("Sesi absensi hari ini sudah selesai")
		}

		s := &model.AttendanceSessionModel{
			AttendanceSessionEmployeeID: employeeID,
			AttendanceSessionDate:       datatypes.Date(day),
			AttendanceSessionStartedAt:  now,
		}
		if err := q.Create(s); err != nil {
			return err
		}
		created = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] attendance start employee=%s day=%s", employeeID, dbtime.FormatDay(created.Day()))
	return created, nil
}

// Stop: ACTIVE|ON_BREAK → CLOSED. Break yang masih terbuka ditutup di waktu yang sama.
func (t *Tracker) Stop(ctx context.Context, employeeID uuid.UUID) (*model.AttendanceSessionModel, error) {
	var closed *model.AttendanceSessionModel
	err := t.store.Transact(ctx, employeeID, func(q repository.Queries) error {
		now := t.clock.Now()
		s, err := q.FindOpenByEmployee(employeeID)
		if err != nil {
			return err
		}
		if s == nil {
			return apperr.NotFound("Tidak ada sesi aktif")
		}

		if s.OnBreak() {
			closeBreak(s, now)
		}
		end := now
		working := WorkingMinutes(s.AttendanceSessionStartedAt, end, s.AttendanceSessionTotalBreakMinutes)
		overtime := OvertimeMinutes(working, t.shiftMinutes)
		s.AttendanceSessionEndedAt = &end
		s.AttendanceSessionWorkingMinutes = &working
		s.AttendanceSessionOvertimeMinutes = &overtime

		if err := q.Update(s); err != nil {
			return err
		}
		closed = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] attendance stop employee=%s working=%dm overtime=%dm",
		employeeID, *closed.AttendanceSessionWorkingMinutes, *closed.AttendanceSessionOvertimeMinutes)
	return closed, nil
}

// StartBreak: ACTIVE → ON_BREAK.
func (t *Tracker) StartBreak(ctx context.Context, employeeID uuid.UUID) (*model.AttendanceSessionModel, error) {
	var updated *model.AttendanceSessionModel
	err := t.store.Transact(ctx, employeeID, func(q repository.Queries) error {
		now := t.clock.Now()
		s, err := q.FindOpenByEmployee(employeeID)
		if err != nil {
			return err
		}
		if s == nil {
			return apperr.Conflict("Belum check-in, tidak bisa mulai istirahat")
		}
		if s.OnBreak() {
			return apperr.Conflict("Sedang istirahat")
		}

		start := now
		s.AttendanceSessionBreakStartedAt = &start
		s.AttendanceSessionBreakEndedAt = nil
		if err := q.Update(s); err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// EndBreak: ON_BREAK → ACTIVE.
func (t *Tracker) EndBreak(ctx context.Context, employeeID uuid.UUID) (*model.AttendanceSessionModel, error) {
	var updated *model.AttendanceSessionModel
	err := t.store.Transact(ctx, employeeID, func(q repository.Queries) error {
		now := t.clock.Now()
		s, err := q.FindOpenByEmployee(employeeID)
		if err != nil {
			return err
		}
		if s == nil || !s.OnBreak() {
			return apperr.NotFound("Tidak ada istirahat yang sedang berjalan")
		}

		closeBreak(s, now)
		if err := q.Update(s); err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Active: read-only. Kalau tidak ada sesi terbuka, sesi hari ini yang sudah ditutup ikut dikembalikan.
func (t *Tracker) Active(ctx context.Context, employeeID uuid.UUID) (Snapshot, error) {
	now := t.clock.Now()
	snap := Snapshot{State: StateNoSession, At: now}

	s, err := t.store.FindOpenByEmployee(ctx, employeeID)
	if err != nil {
		return Snapshot{}, err
	}
	if s == nil {
		s, err = t.store.FindByEmployeeAndDate(ctx, employeeID, dbtime.DayKey(now, t.loc))
		if err != nil {
			return Snapshot{}, err
		}
	}
	if s == nil {
		return snap, nil
	}

	snap.State = StateOf(s)
	snap.Session = s
	snap.BreakMinutes = s.AttendanceSessionTotalBreakMinutes
	if s.IsOpen() {
		if s.OnBreak() {
			snap.BreakMinutes += MinutesBetween(*s.AttendanceSessionBreakStartedAt, now)
		}
		snap.WorkedMinutes = WorkingMinutes(s.AttendanceSessionStartedAt, now, snap.BreakMinutes)
	} else if s.AttendanceSessionWorkingMinutes != nil {
		snap.WorkedMinutes = *s.AttendanceSessionWorkingMinutes
	}
	return snap, nil
}

// History: daftar sesi sesuai filter (dipakai employee & HR).
func (t *Tracker) History(ctx context.Context, f repository.ListFilter) ([]model.AttendanceSessionModel, int64, error) {
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return nil, 0, apperr.Validation("from harus <= to")
	}
	return t.store.List(ctx, f)
}

// StaleOpenSessions: sesi terbuka dari hari sebelum hari ini (lokal).
func (t *Tracker) StaleOpenSessions(ctx context.Context) ([]model.AttendanceSessionModel, error) {
	return t.store.ListOpenBefore(ctx, dbtime.DayKey(t.clock.Now(), t.loc))
}

func closeBreak(s *model.AttendanceSessionModel, now time.Time) {
	end := now
	s.AttendanceSessionBreakEndedAt = &end
	s.AttendanceSessionTotalBreakMinutes += MinutesBetween(*s.AttendanceSessionBreakStartedAt, end)
}
