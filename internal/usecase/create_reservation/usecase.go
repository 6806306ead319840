package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
	"github.com/m04kA/GYM-ReservationService/internal/habitual"
	reservationRepo "github.com/m04kA/GYM-ReservationService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/GYM-ReservationService/internal/infra/storage/slot"
)

// UseCase use case для создания резервации
type UseCase struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	memberDirectory MemberDirectory
	txManager       TransactionManager
	capacity        int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	slotRepo SlotRepository,
	memberDirectory MemberDirectory,
	txManager TransactionManager,
	capacity int,
	logger Logger,
) *UseCase {
	if capacity <= 0 {
		capacity = domain.DefaultSlotCapacity
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		memberDirectory: memberDirectory,
		txManager:       txManager,
		capacity:        capacity,
		logger:          logger,
	}
}

// Execute выполняет use case создания резервации
//
// Проверка вместимости и вставка выполняются в одной сериализуемой
// транзакции: подсчет занятых мест и создание резервации не могут
// чередоваться с параллельной записью на тот же слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: slot=%d, member=%v, walkIn=%v",
		req.SlotID, req.MemberID, req.ClientName != nil)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем справочник участников до открытия транзакции (HTTP вызов)
	members, err := uc.memberDirectory.ListActiveWithSchedules(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to list members: %v", err)
		return nil, fmt.Errorf("%w: failed to list members: %v", ErrInternal, err)
	}

	var result *domain.Reservation
	var slotForResponse *domain.Slot

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем слот
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateReservation: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateReservation: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}
		slotForResponse = slot

		if slot.Status == domain.SlotStatusCancelled {
			uc.logger.Warn("CreateReservation: slot id=%d is cancelled", req.SlotID)
			return ErrSlotNotBookable
		}

		// 3.2. Проверяем, что у участника еще нет резервации на этот слот
		if req.MemberID != nil {
			_, err := uc.reservationRepo.FindByMemberAndSlot(txCtx, *req.MemberID, req.SlotID)
			if err == nil {
				uc.logger.Warn("CreateReservation: member id=%d already booked slot id=%d",
					*req.MemberID, req.SlotID)
				return ErrAlreadyBooked
			}
			if !errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Error("CreateReservation: failed to check duplicate: %v", err)
				return fmt.Errorf("%w: failed to check duplicate: %v", ErrInternal, err)
			}
		}

		// 3.3. Получаем резервации слота с блокировкой строк (FOR UPDATE)
		manualForSlot, err := uc.reservationRepo.ListForSlot(txCtx, req.SlotID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list slot reservations: %v", err)
			return fmt.Errorf("%w: failed to list slot reservations: %v", ErrInternal, err)
		}

		// 3.4. Получаем все мануальные резервации на дату — они определяют,
		// какие участники исключаются из генерации виртуальных
		manualForDate, err := uc.reservationRepo.ListByDate(txCtx, slot.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list date reservations: %v", err)
			return fmt.Errorf("%w: failed to list date reservations: %v", ErrInternal, err)
		}

		existing := make([]*domain.Reservation, 0, len(manualForDate))
		for i := range manualForDate {
			existing = append(existing, &manualForDate[i].Reservation)
		}

		// 3.5. Считаем виртуальных участников на время слота
		virtual := habitual.GenerateVirtual(members, slot.Date, existing)
		virtualCount := habitual.CountForTime(virtual, slot.StartTime)
		occupied := len(manualForSlot) + virtualCount

		// 3.6. Проверка вместимости: admit = occupied < capacity
		if occupied >= uc.capacity {
			uc.logger.Warn("CreateReservation: slot id=%d full, %d/%d spots taken",
				req.SlotID, occupied, uc.capacity)
			return ErrSlotFull
		}

		uc.logger.Info("CreateReservation: slot id=%d has space, %d/%d spots taken",
			req.SlotID, occupied, uc.capacity)

		// 3.7. Создаем резервацию (attended = nil, посещение еще не отмечено)
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			SlotID:      req.SlotID,
			MemberID:    req.MemberID,
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ClientEmail: req.ClientEmail,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrDuplicateReservation) {
				return ErrAlreadyBooked
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// 3.8. Слот заполнен до вместимости — помечаем его занятым
		if occupied+1 >= uc.capacity && slot.Status == domain.SlotStatusAvailable {
			if err := uc.slotRepo.SetStatus(txCtx, slot.ID, domain.SlotStatusComplete); err != nil {
				uc.logger.Error("CreateReservation: failed to mark slot complete: %v", err)
				return fmt.Errorf("%w: failed to update slot status: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		SlotID:      result.SlotID,
		MemberID:    result.MemberID,
		ClientName:  result.ClientName,
		ClientPhone: result.ClientPhone,
		ClientEmail: result.ClientEmail,
		SlotDate:    slotForResponse.Date,
		StartTime:   slotForResponse.StartTime,
		Attendance:  string(result.AttendanceState()),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
