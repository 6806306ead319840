package get_reservation

import (
	"context"

	"github.com/m04kA/GYM-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
