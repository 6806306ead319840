package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/GYM-ReservationService/pkg/types"
)

// AttendanceState represents the attendance flag of a reservation
type AttendanceState string

const (
	AttendancePending  AttendanceState = "pending"
	AttendanceAttended AttendanceState = "attended"
	AttendanceAbsent   AttendanceState = "absent"
)

// AttendanceFromFlag maps the persisted tri-state flag to an attendance state
// nil = pending, true = attended, false = absent.
func AttendanceFromFlag(attended *bool) AttendanceState {
	switch {
	case attended == nil:
		return AttendancePending
	case *attended:
		return AttendanceAttended
	default:
		return AttendanceAbsent
	}
}

// Flag returns the persisted representation of the attendance state
func (a AttendanceState) Flag() *bool {
	switch a {
	case AttendanceAttended:
		v := true
		return &v
	case AttendanceAbsent:
		v := false
		return &v
	default:
		return nil
	}
}

// Reservation represents a manual reservation persisted in the store
// Either MemberID or ClientName (walk-in) is set, never both empty.
type Reservation struct {
	ID          int64
	SlotID      int64
	MemberID    *int64
	ClientName  *string
	ClientPhone *string
	ClientEmail *string
	Attended    *bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWalkIn returns true if the reservation is not linked to a member
func (r *Reservation) IsWalkIn() bool {
	return r.MemberID == nil
}

// AttendanceState returns the attendance state of the reservation
func (r *Reservation) AttendanceState() AttendanceState {
	return AttendanceFromFlag(r.Attended)
}

// SlottedReservation is a manual reservation joined with its slot times
// Read paths use it to build the merged per-date view without extra lookups.
type SlottedReservation struct {
	Reservation
	SlotStartTime types.TimeString
	SlotEndTime   types.TimeString
}

// VirtualReservation represents a reservation implied by a recurring schedule
// It is derived on every read and never persisted. The synthetic id is
// deterministic for a (member, date, start) triple so repeated generation
// calls yield identical ids.
type VirtualReservation struct {
	SyntheticID string
	MemberID    int64
	ClientName  string
	StartTime   types.TimeString
	EndTime     types.TimeString
}

// SyntheticID builds the deterministic id of a virtual reservation
func SyntheticID(memberID int64, date time.Time, start types.TimeString) string {
	return fmt.Sprintf("virtual-%d-%s-%s", memberID, date.Format(DateFormat), start)
}

// ReservationView is a single entry of the merged per-date view
// Manual entries carry their store id and slot id; virtual entries carry the
// synthetic id and IsVirtual = true.
type ReservationView struct {
	ID          string
	SlotID      *int64
	MemberID    *int64
	ClientName  string
	ClientPhone *string
	ClientEmail *string
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsVirtual   bool
	Attended    *bool
}

// AttendanceState returns the attendance state of the view entry
func (v *ReservationView) AttendanceState() AttendanceState {
	return AttendanceFromFlag(v.Attended)
}
