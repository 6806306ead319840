package reservations

import (
	"context"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
	CountForSlot(ctx context.Context, slotID int64) (int, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	SetStatus(ctx context.Context, id int64, status domain.SlotStatus) error
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
