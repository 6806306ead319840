package get_day_schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
	"github.com/m04kA/GYM-ReservationService/internal/habitual"
)

// UseCase use case для получения объединенного расписания дня
// Мануальные резервации дополняются виртуальными, выведенными из
// еженедельных расписаний участников. Виртуальные резервации
// пересчитываются на каждый запрос и нигде не сохраняются.
type UseCase struct {
	reservationRepo ReservationRepository
	memberDirectory MemberDirectory
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	memberDirectory MemberDirectory,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		memberDirectory: memberDirectory,
		logger:          logger,
	}
}

// Execute выполняет use case получения расписания дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := domain.NormalizeDate(req.Date)

	// 1. Мануальные резервации на дату (вместе с временем их слотов)
	manual, err := uc.reservationRepo.ListByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 2. Справочник участников
	members, err := uc.memberDirectory.ListActiveWithSchedules(ctx)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to list members: %v", err)
		return nil, fmt.Errorf("%w: failed to list members: %v", ErrInternal, err)
	}

	// 3. Генерируем виртуальные резервации и объединяем
	existing := make([]*domain.Reservation, 0, len(manual))
	for i := range manual {
		existing = append(existing, &manual[i].Reservation)
	}

	virtual := habitual.GenerateVirtual(members, date, existing)
	views := habitual.Merge(manual, virtual)
	groups := habitual.GroupByTime(views)

	uc.logger.Info("GetDaySchedule: date=%s, %d manual, %d virtual, %d time groups",
		date.Format(domain.DateFormat), len(manual), len(virtual), len(groups))

	return uc.toResponse(date, groups), nil
}

func (uc *UseCase) toResponse(date time.Time, groups []habitual.TimeGroup) *Response {
	resp := &Response{
		Date:    date,
		Weekday: domain.WeekdayName(date),
		Groups:  make([]TimeGroup, 0, len(groups)),
	}

	for _, group := range groups {
		out := TimeGroup{
			StartTime: group.StartTime,
			Entries:   make([]Entry, 0, len(group.Entries)),
			Total:     group.Total,
			Attended:  group.Attended,
			Absent:    group.Absent,
			Pending:   group.Pending,
		}
		for _, view := range group.Entries {
			out.Entries = append(out.Entries, Entry{
				ID:          view.ID,
				SlotID:      view.SlotID,
				MemberID:    view.MemberID,
				ClientName:  view.ClientName,
				ClientPhone: view.ClientPhone,
				ClientEmail: view.ClientEmail,
				StartTime:   view.StartTime,
				EndTime:     view.EndTime,
				IsVirtual:   view.IsVirtual,
				Attendance:  string(view.AttendanceState()),
			})
		}
		resp.Groups = append(resp.Groups, out)
	}

	return resp
}
