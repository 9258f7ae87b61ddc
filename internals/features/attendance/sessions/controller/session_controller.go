package controller

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hrms_backend/internals/features/attendance/sessions/dto"
	"hrms_backend/internals/features/attendance/sessions/model"
	"hrms_backend/internals/features/attendance/sessions/repository"
	"hrms_backend/internals/features/attendance/sessions/service"
	helper "hrms_backend/internals/helpers"
	"hrms_backend/internals/helpers/dbtime"
)

// Tracker: kontrak yang dipakai handler (diimplementasikan service.Tracker).
type Tracker interface {
	Start(ctx context.Context, employeeID uuid.UUID) (*model.AttendanceSessionModel, error)
	Stop(ctx context.Context, employeeID uuid.UUID) (*model.AttendanceSessionModel, error)
	StartBreak(ctx context.Context, employeeID uuid.UUID) (*model.AttendanceSessionModel, error)
	EndBreak(ctx context.Context, employeeID uuid.UUID) (*model.AttendanceSessionModel, error)
	Active(ctx context.Context, employeeID uuid.UUID) (service.Snapshot, error)
	History(ctx context.Context, f repository.ListFilter) ([]model.AttendanceSessionModel, int64, error)
}

type AttendanceController struct {
	Tracker   Tracker
	Validator *validator.Validate
	Loc       *time.Location
}

func NewAttendanceController(tr Tracker, loc *time.Location) *AttendanceController {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := strings.Split(f.Tag.Get("query"), ",")[0]; name != "" && name != "-" {
			return name
		}
		return f.Name
	})
	return &AttendanceController{Tracker: tr, Validator: v, Loc: loc}
}

func (ctl *AttendanceController) loc(c *fiber.Ctx) *time.Location {
	return dbtime.GetOrgLocation(c, ctl.Loc)
}

// GET /api/u/attendance/active
func (ctl *AttendanceController) Active(c *fiber.Ctx) error {
	empID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	snap, err := ctl.Tracker.Active(c.UserContext(), empID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.FromSnapshot(snap, ctl.loc(c)))
}

// POST /api/u/attendance/start
func (ctl *AttendanceController) Start(c *fiber.Ctx) error {
	empID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	s, err := ctl.Tracker.Start(c.UserContext(), empID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonCreated(c, "Check-in berhasil", dto.ToStartResponse(s, ctl.loc(c)))
}

// POST /api/u/attendance/stop
func (ctl *AttendanceController) Stop(c *fiber.Ctx) error {
	empID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	s, err := ctl.Tracker.Stop(c.UserContext(), empID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "Check-out berhasil", dto.FromModel(s, ctl.loc(c)))
}

// POST /api/u/attendance/break/start
func (ctl *AttendanceController) StartBreak(c *fiber.Ctx) error {
	empID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	s, err := ctl.Tracker.StartBreak(c.UserContext(), empID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "Istirahat dimulai", dto.FromModel(s, ctl.loc(c)))
}

// POST /api/u/attendance/break/end
func (ctl *AttendanceController) EndBreak(c *fiber.Ctx) error {
	empID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	s, err := ctl.Tracker.EndBreak(c.UserContext(), empID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "Istirahat selesai", dto.FromModel(s, ctl.loc(c)))
}

// GET /api/u/attendance/history?from=&to=&page=&per_page=
// Selalu dibatasi ke employee pemilik token.
func (ctl *AttendanceController) History(c *fiber.Ctx) error {
	empID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	q, err := ctl.parseQuery(c)
	if q == nil {
		return err
	}
	q.EmployeeID = ""

	p := helper.ParseFiber(c, "desc", helper.DefaultOpts)
	f := q.ToFilter()
	f.EmployeeID = &empID
	return ctl.list(c, f, p)
}

// GET /api/a/attendance/sessions?employee_id=&from=&to=&open=&page=&per_page=
func (ctl *AttendanceController) ListSessions(c *fiber.Ctx) error {
	q, err := ctl.parseQuery(c)
	if q == nil {
		return err
	}
	p := helper.ParseFiber(c, "desc", helper.AdminOpts)
	return ctl.list(c, q.ToFilter(), p)
}

func (ctl *AttendanceController) list(c *fiber.Ctx, f repository.ListFilter, p helper.Params) error {
	f.Offset = p.Offset()
	f.Limit = p.Limit()
	f.SortDesc = p.Desc()

	rows, total, err := ctl.Tracker.History(c.UserContext(), f)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonList(c, "OK", dto.FromModels(rows, ctl.loc(c)), helper.BuildMeta(total, p))
}

// parseQuery: nil berarti response error sudah ditulis.
func (ctl *AttendanceController) parseQuery(c *fiber.Ctx) (*dto.HistoryQuery, error) {
	var q dto.HistoryQuery
	if err := c.QueryParser(&q); err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	q.Normalize()
	if err := ctl.Validator.Struct(q); err != nil {
		return nil, helper.ValidationError(c, err)
	}
	return &q, nil
}
