package get_day_schedule

import (
	"context"
	"time"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]domain.SlottedReservation, error)
}

// MemberDirectory интерфейс справочника участников
type MemberDirectory interface {
	ListActiveWithSchedules(ctx context.Context) ([]domain.Member, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
