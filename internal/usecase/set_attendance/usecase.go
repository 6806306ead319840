package set_attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/GYM-ReservationService/internal/attendance"
	"github.com/m04kA/GYM-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/GYM-ReservationService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/GYM-ReservationService/internal/infra/storage/slot"
)

// UseCase use case для изменения посещаемости резервации
type UseCase struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	timeProvider    TimeProvider
	location        *time.Location
	window          time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	slotRepo SlotRepository,
	location *time.Location,
	window time.Duration,
	logger Logger,
) *UseCase {
	if window <= 0 {
		window = domain.DefaultAttendanceWindowHours * time.Hour
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		timeProvider:    &RealTimeProvider{},
		location:        location,
		window:          window,
		logger:          logger,
	}
}

// Execute выполняет use case изменения посещаемости
//
// Отметка присутствия разрешена всегда; отметка отсутствия (включая отмену
// ошибочной отметки присутствия) разрешена только внутри окна коррекции,
// привязанного к локальному времени начала занятия.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SetAttendance: reservation=%d, attended=%v", req.ReservationID, req.Attended)

	if req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	// 1. Получаем резервацию
	res, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("SetAttendance: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("SetAttendance: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	from := res.AttendanceState()
	to := domain.AttendanceAttended
	if !req.Attended {
		to = domain.AttendanceAbsent
	}

	// 2. Проверяем переход по таблице состояний
	windowGated, err := attendance.Plan(from, to)
	if err != nil {
		uc.logger.Warn("SetAttendance: invalid transition %s -> %s for reservation id=%d",
			from, to, req.ReservationID)
		return nil, ErrInvalidTransition
	}

	// Переход в то же состояние — no-op
	if from == to {
		uc.logger.Info("SetAttendance: reservation id=%d already %s", req.ReservationID, to)
		return uc.toResponse(res), nil
	}

	// 3. Переходы в absent ограничены окном коррекции
	if windowGated {
		slot, err := uc.slotRepo.GetByID(ctx, res.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Error("SetAttendance: slot id=%d missing for reservation id=%d",
					res.SlotID, req.ReservationID)
				return nil, fmt.Errorf("%w: slot not found for reservation", ErrInternal)
			}
			uc.logger.Error("SetAttendance: failed to get slot id=%d: %v", res.SlotID, err)
			return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		now := uc.timeProvider.Now()
		if err := attendance.CheckSlotWindow(slot, now, uc.location, uc.window); err != nil {
			switch {
			case errors.Is(err, attendance.ErrNotStarted):
				uc.logger.Warn("SetAttendance: session not started, reservation id=%d", req.ReservationID)
				return nil, ErrNotStarted
			case errors.Is(err, attendance.ErrWindowExpired):
				uc.logger.Warn("SetAttendance: window expired, reservation id=%d", req.ReservationID)
				return nil, ErrWindowExpired
			default:
				uc.logger.Error("SetAttendance: window check failed: %v", err)
				return nil, fmt.Errorf("%w: window check failed: %v", ErrInternal, err)
			}
		}
	}

	// 4. Применяем переход
	flag := to.Flag()
	if err := uc.reservationRepo.UpdateAttendance(ctx, req.ReservationID, flag); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("SetAttendance: failed to update reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to update attendance: %v", ErrInternal, err)
	}

	res.Attended = flag
	res.UpdatedAt = uc.timeProvider.Now()

	uc.logger.Info("SetAttendance: reservation id=%d moved %s -> %s", req.ReservationID, from, to)
	return uc.toResponse(res), nil
}

func (uc *UseCase) toResponse(res *domain.Reservation) *Response {
	return &Response{
		ID:         res.ID,
		SlotID:     res.SlotID,
		MemberID:   res.MemberID,
		ClientName: res.ClientName,
		Attendance: string(res.AttendanceState()),
		UpdatedAt:  res.UpdatedAt,
	}
}
