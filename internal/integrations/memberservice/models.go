package memberservice

import (
	"fmt"
	"time"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
	"github.com/m04kA/GYM-ReservationService/pkg/types"
)

// Member модель участника из справочника
type Member struct {
	ID                 int64               `json:"id"`
	Name               string              `json:"name"`
	Status             string              `json:"status"`
	RecurringSchedules []RecurringSchedule `json:"recurring_schedules"`
	ScheduleExceptions []ScheduleException `json:"schedule_exceptions"`
}

// RecurringSchedule модель еженедельного расписания участника
type RecurringSchedule struct {
	Weekday   string `json:"weekday"`
	StartTime string `json:"start_time"` // "08:00"
	EndTime   string `json:"end_time"`   // "09:00"
}

// ScheduleException модель исключения из расписания на конкретную дату
type ScheduleException struct {
	Date      string `json:"date"` // "2026-02-09"
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
}

// ErrorResponse модель ошибки от справочника участников
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует модель справочника в доменную модель
func (m *Member) ToDomain() (domain.Member, error) {
	member := domain.Member{
		ID:                 m.ID,
		Name:               m.Name,
		Status:             domain.MemberStatus(m.Status),
		RecurringSchedules: make([]domain.RecurringSchedule, 0, len(m.RecurringSchedules)),
		ScheduleExceptions: make([]domain.ScheduleException, 0, len(m.ScheduleExceptions)),
	}

	for _, sched := range m.RecurringSchedules {
		start, err := types.NewTimeStringFromString(sched.StartTime)
		if err != nil {
			return domain.Member{}, fmt.Errorf("%w: member %d schedule start: %v", ErrInvalidResponse, m.ID, err)
		}
		end, err := types.NewTimeStringFromString(sched.EndTime)
		if err != nil {
			return domain.Member{}, fmt.Errorf("%w: member %d schedule end: %v", ErrInvalidResponse, m.ID, err)
		}
		member.RecurringSchedules = append(member.RecurringSchedules, domain.RecurringSchedule{
			Weekday:   sched.Weekday,
			StartTime: start,
			EndTime:   end,
		})
	}

	for _, exc := range m.ScheduleExceptions {
		date, err := time.Parse(domain.DateFormat, exc.Date)
		if err != nil {
			return domain.Member{}, fmt.Errorf("%w: member %d exception date: %v", ErrInvalidResponse, m.ID, err)
		}
		start, err := types.NewTimeStringFromString(exc.StartTime)
		if err != nil {
			return domain.Member{}, fmt.Errorf("%w: member %d exception start: %v", ErrInvalidResponse, m.ID, err)
		}
		end, err := types.NewTimeStringFromString(exc.EndTime)
		if err != nil {
			return domain.Member{}, fmt.Errorf("%w: member %d exception end: %v", ErrInvalidResponse, m.ID, err)
		}
		member.ScheduleExceptions = append(member.ScheduleExceptions, domain.ScheduleException{
			Date:      date,
			StartTime: start,
			EndTime:   end,
			Reason:    exc.Reason,
		})
	}

	return member, nil
}
