package habitual

import (
	"sort"
	"strconv"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
	"github.com/m04kA/GYM-ReservationService/pkg/types"
)

// Merge unions manual and virtual reservations into one view.
//
// Manual entries come first and are listed as-is; virtual entries are
// appended. No de-duplication happens here: the generator already excludes
// every member holding a manual reservation on the date, so a (member, time)
// pair can never appear in both inputs.
func Merge(manual []domain.SlottedReservation, virtual []domain.VirtualReservation) []domain.ReservationView {
	views := make([]domain.ReservationView, 0, len(manual)+len(virtual))

	for _, res := range manual {
		name := ""
		if res.ClientName != nil {
			name = *res.ClientName
		}
		res := res
		views = append(views, domain.ReservationView{
			ID:          manualViewID(res.ID),
			SlotID:      &res.SlotID,
			MemberID:    res.MemberID,
			ClientName:  name,
			ClientPhone: res.ClientPhone,
			ClientEmail: res.ClientEmail,
			StartTime:   res.SlotStartTime,
			EndTime:     res.SlotEndTime,
			Attended:    res.Attended,
		})
	}

	for _, v := range virtual {
		memberID := v.MemberID
		views = append(views, domain.ReservationView{
			ID:         v.SyntheticID,
			MemberID:   &memberID,
			ClientName: v.ClientName,
			StartTime:  v.StartTime,
			EndTime:    v.EndTime,
			IsVirtual:  true,
		})
	}

	return views
}

// TimeGroup is the merged view of a single class time with attendance counts
type TimeGroup struct {
	StartTime types.TimeString
	Entries   []domain.ReservationView
	Total     int
	Attended  int
	Absent    int
	Pending   int
}

// GroupByTime groups merged entries by start time, ordered by time ascending
func GroupByTime(views []domain.ReservationView) []TimeGroup {
	byTime := make(map[types.TimeString][]domain.ReservationView)
	for _, v := range views {
		byTime[v.StartTime] = append(byTime[v.StartTime], v)
	}

	times := make([]types.TimeString, 0, len(byTime))
	for t := range byTime {
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].IsBefore(times[j]) })

	groups := make([]TimeGroup, 0, len(times))
	for _, t := range times {
		group := TimeGroup{StartTime: t, Entries: byTime[t]}
		for _, entry := range group.Entries {
			group.Total++
			switch entry.AttendanceState() {
			case domain.AttendanceAttended:
				group.Attended++
			case domain.AttendanceAbsent:
				group.Absent++
			default:
				group.Pending++
			}
		}
		groups = append(groups, group)
	}

	return groups
}

// CountForTime counts merged entries at the given start time
// The admission check uses it over virtual reservations only, combined with
// the manual count read from the store.
func CountForTime(virtual []domain.VirtualReservation, start types.TimeString) int {
	count := 0
	for _, v := range virtual {
		if v.StartTime.Equal(start) {
			count++
		}
	}
	return count
}

func manualViewID(id int64) string {
	return "reservation-" + strconv.FormatInt(id, 10)
}
