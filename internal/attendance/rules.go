package attendance

import (
	"errors"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
)

// ErrInvalidTransition возвращается для переходов, которых нет в таблице
var ErrInvalidTransition = errors.New("attendance: invalid attendance transition")

type transition struct {
	from domain.AttendanceState
	to   domain.AttendanceState
}

// Transition table. Marking someone present is never time-boxed; marking an
// absence (including taking back a mistaken attended mark) only works inside
// the correction window.
var transitions = map[transition]bool{
	{domain.AttendancePending, domain.AttendanceAttended}:  false,
	{domain.AttendancePending, domain.AttendanceAbsent}:    true,
	{domain.AttendanceAttended, domain.AttendanceAbsent}:   true,
	{domain.AttendanceAbsent, domain.AttendanceAttended}:   false,
}

// Plan validates a transition between attendance states.
//
// It returns whether the transition is gated by the correction window.
// A transition to the current state is a no-op and always allowed; there is
// no transition back to pending.
func Plan(from, to domain.AttendanceState) (windowGated bool, err error) {
	if from == to {
		return false, nil
	}
	gated, ok := transitions[transition{from: from, to: to}]
	if !ok {
		return false, ErrInvalidTransition
	}
	return gated, nil
}
