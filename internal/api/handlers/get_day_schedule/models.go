package get_day_schedule

import (
	"github.com/m04kA/GYM-ReservationService/internal/domain"
	getDaySchedule "github.com/m04kA/GYM-ReservationService/internal/usecase/get_day_schedule"
)

// EntryResponse одна запись объединенного представления
type EntryResponse struct {
	ID          string  `json:"id"`
	SlotID      *int64  `json:"slotId,omitempty"`
	MemberID    *int64  `json:"memberId,omitempty"`
	ClientName  string  `json:"clientName"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	IsVirtual   bool    `json:"isVirtual"`
	Attendance  string  `json:"attendance"`
}

// TimeGroupResponse группа записей одного времени занятия
type TimeGroupResponse struct {
	StartTime string          `json:"startTime"`
	Entries   []EntryResponse `json:"entries"`
	Total     int             `json:"total"`
	Attended  int             `json:"attended"`
	Absent    int             `json:"absent"`
	Pending   int             `json:"pending"`
}

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	Date    string              `json:"date"`
	Weekday string              `json:"weekday"`
	Groups  []TimeGroupResponse `json:"groups"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	out := &DayScheduleResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		Weekday: resp.Weekday,
		Groups:  make([]TimeGroupResponse, 0, len(resp.Groups)),
	}

	for _, group := range resp.Groups {
		groupResp := TimeGroupResponse{
			StartTime: group.StartTime.String(),
			Entries:   make([]EntryResponse, 0, len(group.Entries)),
			Total:     group.Total,
			Attended:  group.Attended,
			Absent:    group.Absent,
			Pending:   group.Pending,
		}
		for _, entry := range group.Entries {
			groupResp.Entries = append(groupResp.Entries, EntryResponse{
				ID:          entry.ID,
				SlotID:      entry.SlotID,
				MemberID:    entry.MemberID,
				ClientName:  entry.ClientName,
				ClientPhone: entry.ClientPhone,
				ClientEmail: entry.ClientEmail,
				StartTime:   entry.StartTime.String(),
				EndTime:     entry.EndTime.String(),
				IsVirtual:   entry.IsVirtual,
				Attendance:  entry.Attendance,
			})
		}
		out.Groups = append(out.Groups, groupResp)
	}

	return out
}
