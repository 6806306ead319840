package domain

import (
	"strings"
	"time"

	"github.com/m04kA/GYM-ReservationService/pkg/types"
)

// MemberStatus represents the status of a gym member
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "ACTIVE"
	MemberStatusInactive MemberStatus = "INACTIVE"
)

// RecurringSchedule represents a weekly recurring session of a member
// A member may have several entries for the same weekday (two sessions a day).
type RecurringSchedule struct {
	Weekday   string
	StartTime types.TimeString
	EndTime   types.TimeString
}

// ScheduleException represents a one-off exception to a member's recurring schedule
type ScheduleException struct {
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Reason    string
}

// Member represents a gym member as exposed by the member directory
// The directory is owned externally; this service consumes it read-only.
type Member struct {
	ID                 int64
	Name               string
	Status             MemberStatus
	RecurringSchedules []RecurringSchedule
	ScheduleExceptions []ScheduleException
}

// IsActive returns true if the member can generate virtual reservations
func (m *Member) IsActive() bool {
	return m.Status == MemberStatusActive
}

// HasExceptionOn returns true if the member has any schedule exception on the date
// A single exception suppresses every virtual reservation of the member for
// that date, not only the conflicting time.
func (m *Member) HasExceptionOn(date time.Time) bool {
	for _, exc := range m.ScheduleExceptions {
		if SameDate(exc.Date, date) {
			return true
		}
	}
	return false
}

// SchedulesFor returns the member's recurring schedules matching the weekday name
// Matching is case-insensitive.
func (m *Member) SchedulesFor(weekday string) []RecurringSchedule {
	matched := make([]RecurringSchedule, 0)
	for _, sched := range m.RecurringSchedules {
		if strings.EqualFold(sched.Weekday, weekday) {
			matched = append(matched, sched)
		}
	}
	return matched
}
