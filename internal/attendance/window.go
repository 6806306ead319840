// Package attendance holds the attendance correction rules: which state
// transitions exist and the time window inside which absences can be marked.
package attendance

import (
	"errors"
	"time"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
)

var (
	// ErrNotStarted возвращается, когда сессия еще не началась
	ErrNotStarted = errors.New("attendance: session has not started yet")

	// ErrWindowExpired возвращается, когда окно коррекции посещаемости истекло
	ErrWindowExpired = errors.New("attendance: correction window expired")
)

// CheckWindow reports whether an absence mark is allowed at the given instant
// for a session starting at slotStart.
//
// elapsed = now - slotStart. Negative elapsed means the session has not
// started; elapsed beyond the window means the correction period is over.
// Both bounds are inclusive: marking exactly at the start or exactly at the
// window edge is allowed.
func CheckWindow(slotStart, now time.Time, window time.Duration) error {
	elapsed := now.Sub(slotStart)
	if elapsed < 0 {
		return ErrNotStarted
	}
	if elapsed > window {
		return ErrWindowExpired
	}
	return nil
}

// CheckSlotWindow resolves the slot's absolute start instant in the given
// timezone and applies CheckWindow. It depends only on its inputs, so tests
// drive it with a fixed clock.
func CheckSlotWindow(slot *domain.Slot, now time.Time, loc *time.Location, window time.Duration) error {
	start, err := slot.StartInstant(loc)
	if err != nil {
		return err
	}
	return CheckWindow(start, now, window)
}
