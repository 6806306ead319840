package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	FindByMemberAndSlot(ctx context.Context, memberID, slotID int64) (*domain.Reservation, error)
	ListForSlot(ctx context.Context, slotID int64) ([]*domain.Reservation, error)
	ListByDate(ctx context.Context, date time.Time) ([]domain.SlottedReservation, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	SetStatus(ctx context.Context, id int64, status domain.SlotStatus) error
}

// MemberDirectory интерфейс справочника участников
type MemberDirectory interface {
	ListActiveWithSchedules(ctx context.Context) ([]domain.Member, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
