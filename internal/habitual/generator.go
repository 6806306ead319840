// Package habitual derives virtual reservations from recurring member
// schedules and merges them with manual reservations into a per-date view.
package habitual

import (
	"time"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
)

// GenerateVirtual produces the virtual reservations implied by recurring
// schedules for the target date.
//
// A member is skipped entirely when:
//   - the member is not ACTIVE,
//   - the member has any schedule exception dated on the target date,
//   - the member already holds any manual reservation on the target date.
//
// The manual exclusion is member-wide for the whole date, not per time slot:
// a member who booked an extra evening session manually generates no virtual
// entries that day at all. This mirrors the booking desk's behavior — a manual
// booking for a date takes over the member's schedule for that date.
//
// A member with two recurring entries on the matching weekday yields two
// virtual reservations with different times; that is intentional.
func GenerateVirtual(members []domain.Member, date time.Time, existingManual []*domain.Reservation) []domain.VirtualReservation {
	day := domain.NormalizeDate(date)
	weekday := domain.WeekdayName(day)

	booked := make(map[int64]struct{}, len(existingManual))
	for _, res := range existingManual {
		if res.MemberID != nil {
			booked[*res.MemberID] = struct{}{}
		}
	}

	virtual := make([]domain.VirtualReservation, 0)

	for _, member := range members {
		if !member.IsActive() {
			continue
		}
		if member.HasExceptionOn(day) {
			continue
		}
		if _, ok := booked[member.ID]; ok {
			continue
		}

		for _, sched := range member.SchedulesFor(weekday) {
			virtual = append(virtual, domain.VirtualReservation{
				SyntheticID: domain.SyntheticID(member.ID, day, sched.StartTime),
				MemberID:    member.ID,
				ClientName:  member.Name,
				StartTime:   sched.StartTime,
				EndTime:     sched.EndTime,
			})
		}
	}

	return virtual
}
