package service

import "hrms_backend/internals/features/attendance/sessions/model"

type State string

const (
	StateNoSession State = "no_session"
	StateActive    State = "active"
	StateOnBreak   State = "on_break"
	StateClosed    State = "closed"
)

// StateOf: nil → no_session.
func StateOf(s *model.AttendanceSessionModel) State {
	switch {
	case s == nil:
		return StateNoSession
	case !s.IsOpen():
		return StateClosed
	case s.OnBreak():
		return StateOnBreak
	default:
		return StateActive
	}
}
