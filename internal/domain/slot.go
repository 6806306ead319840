package domain

import (
	"time"

	"github.com/m04kA/GYM-ReservationService/pkg/types"
)

// SlotStatus represents the status of a class slot
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusComplete  SlotStatus = "complete"
	SlotStatusCancelled SlotStatus = "cancelled"
)

// Slot represents a fixed-capacity class slot
// A slot is identified by its (date, start time) pair; capacity is a
// system-wide setting enforced at booking time, not stored per slot.
type Slot struct {
	ID              int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          SlotStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if new reservations may target the slot
func (s *Slot) IsBookable() bool {
	return s.Status == SlotStatusAvailable
}

// StartInstant combines the slot's date and wall-clock start time in the given
// timezone and returns the absolute instant the session begins
func (s *Slot) StartInstant(loc *time.Location) (time.Time, error) {
	minutes, err := s.StartTime.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := s.Date.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc), nil
}
