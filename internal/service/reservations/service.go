package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/GYM-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/GYM-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с резервациями
type Service struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	txManager       TransactionManager
	capacity        int
	logger          Logger
}

// NewService создает новый экземпляр сервиса резерваций
func NewService(
	reservationRepo ReservationRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	capacity int,
	logger Logger,
) *Service {
	if capacity <= 0 {
		capacity = domain.DefaultSlotCapacity
	}
	return &Service{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		txManager:       txManager,
		capacity:        capacity,
		logger:          logger,
	}
}

// GetByID получает резервацию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// Cancel отменяет резервацию
// Удаление и восстановление статуса слота выполняются в одной транзакции:
// когда после удаления в слоте снова есть место, слот возвращается в available.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		res, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("Cancel: reservation id=%d not found", id)
				return ErrReservationNotFound
			}
			s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if err := s.reservationRepo.Delete(txCtx, id); err != nil {
			s.logger.Error("Cancel: failed to delete reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - failed to delete: %v", ErrInternal, err)
		}

		remaining, err := s.reservationRepo.CountForSlot(txCtx, res.SlotID)
		if err != nil {
			s.logger.Error("Cancel: failed to count slot reservations: %v", err)
			return fmt.Errorf("%w: Cancel - failed to count remaining: %v", ErrInternal, err)
		}

		slot, err := s.slotRepo.GetByID(txCtx, res.SlotID)
		if err != nil {
			s.logger.Error("Cancel: failed to get slot id=%d: %v", res.SlotID, err)
			return fmt.Errorf("%w: Cancel - failed to get slot: %v", ErrInternal, err)
		}

		// Отмена освободила место — возвращаем заполненный слот в available
		if slot.Status == domain.SlotStatusComplete && remaining < s.capacity {
			if err := s.slotRepo.SetStatus(txCtx, res.SlotID, domain.SlotStatusAvailable); err != nil {
				s.logger.Error("Cancel: failed to restore slot id=%d status: %v", res.SlotID, err)
				return fmt.Errorf("%w: Cancel - failed to restore slot status: %v", ErrInternal, err)
			}
		}

		s.logger.Info("Cancel: reservation id=%d deleted, %d remaining in slot id=%d",
			id, remaining, res.SlotID)
		return nil
	})

	return err
}
