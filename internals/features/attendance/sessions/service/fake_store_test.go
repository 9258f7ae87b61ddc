package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"hrms_backend/internals/features/attendance/sessions/model"
	"hrms_backend/internals/features/attendance/sessions/repository"
	"hrms_backend/internals/helpers/apperr"
)

// memStore meniru GormStore: satu mutex = lock employee, write di-stage lalu commit kalau fn sukses.
type memStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]model.AttendanceSessionModel
	writes   int
	failNext error
	inTx     bool
}

func newMemStore() *memStore {
	return &memStore{sessions: map[uuid.UUID]model.AttendanceSessionModel{}}
}

func (m *memStore) Transact(ctx context.Context, employeeID uuid.UUID, fn func(q repository.Queries) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inTx = true
	defer func() { m.inTx = false }()

	staged := make(map[uuid.UUID]model.AttendanceSessionModel, len(m.sessions))
	for k, v := range m.sessions {
		staged[k] = v
	}
	q := &memQueries{store: m, staged: staged}
	if err := fn(q); err != nil {
		return err
	}
	m.sessions = staged
	m.writes += q.writes
	return nil
}

func (m *memStore) FindOpenByEmployee(ctx context.Context, employeeID uuid.UUID) (*model.AttendanceSessionModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return findOpenIn(m.sessions, employeeID), nil
}

func (m *memStore) FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, day time.Time) (*model.AttendanceSessionModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return findByDateIn(m.sessions, employeeID, day), nil
}

func (m *memStore) List(ctx context.Context, f repository.ListFilter) ([]model.AttendanceSessionModel, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.AttendanceSessionModel, 0)
	for _, s := range m.sessions {
		if f.EmployeeID != nil && s.AttendanceSessionEmployeeID != *f.EmployeeID {
			continue
		}
		if f.From != nil && s.Day().Before(*f.From) {
			continue
		}
		if f.To != nil && s.Day().After(*f.To) {
			continue
		}
		if f.OpenOnly && !s.IsOpen() {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if f.SortDesc {
			return out[i].Day().After(out[j].Day())
		}
		return out[i].Day().Before(out[j].Day())
	})
	total := int64(len(out))
	if f.Offset >= len(out) {
		return []model.AttendanceSessionModel{}, total, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, total, nil
}

func (m *memStore) ListOpenBefore(ctx context.Context, day time.Time) ([]model.AttendanceSessionModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.AttendanceSessionModel, 0)
	for _, s := range m.sessions {
		if s.IsOpen() && s.Day().Before(day) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStore) get(id uuid.UUID) model.AttendanceSessionModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

type memQueries struct {
	store  *memStore
	staged map[uuid.UUID]model.AttendanceSessionModel
	writes int
}

func (q *memQueries) FindOpenByEmployee(employeeID uuid.UUID) (*model.AttendanceSessionModel, error) {
	return findOpenIn(q.staged, employeeID), nil
}

func (q *memQueries) FindByEmployeeAndDate(employeeID uuid.UUID, day time.Time) (*model.AttendanceSessionModel, error) {
	return findByDateIn(q.staged, employeeID, day), nil
}

func (q *memQueries) Create(s *model.AttendanceSessionModel) error {
	if err := q.takeFailure(); err != nil {
		return err
	}
	for _, v := range q.staged {
		if v.AttendanceSessionEmployeeID != s.AttendanceSessionEmployeeID {
			continue
		}
		if v.Day().Equal(s.Day()) || v.IsOpen() {
			return apperr.Conflict("unique violation")
		}
	}
	if s.AttendanceSessionID == uuid.Nil {
		s.AttendanceSessionID = uuid.New()
	}
	q.staged[s.AttendanceSessionID] = *s
	q.writes++
	return nil
}

func (q *memQueries) Update(s *model.AttendanceSessionModel) error {
	if err := q.takeFailure(); err != nil {
		return err
	}
	cur, ok := q.staged[s.AttendanceSessionID]
	if !ok || !cur.IsOpen() {
		return apperr.Conflict("Sesi sudah ditutup")
	}
	q.staged[s.AttendanceSessionID] = *s
	q.writes++
	return nil
}

func (q *memQueries) takeFailure() error {
	if err := q.store.failNext; err != nil {
		q.store.failNext = nil
		return err
	}
	return nil
}

func findOpenIn(all map[uuid.UUID]model.AttendanceSessionModel, employeeID uuid.UUID) *model.AttendanceSessionModel {
	for _, s := range all {
		if s.AttendanceSessionEmployeeID == employeeID && s.IsOpen() {
			cp := s
			return &cp
		}
	}
	return nil
}

func findByDateIn(all map[uuid.UUID]model.AttendanceSessionModel, employeeID uuid.UUID, day time.Time) *model.AttendanceSessionModel {
	for _, s := range all {
		if s.AttendanceSessionEmployeeID == employeeID && s.Day().Equal(day) {
			cp := s
			return &cp
		}
	}
	return nil
}

// fixedClock: waktu dikontrol test.
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// txClock: catat pembacaan jam yang terjadi di luar Transact (sebelum lock employee).
type txClock struct {
	store    *memStore
	now      time.Time
	outsides int
}

func (c *txClock) Now() time.Time {
	if !c.store.inTx {
		c.outsides++
	}
	return c.now
}
