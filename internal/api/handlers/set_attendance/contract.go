package set_attendance

import (
	"context"

	setAttendance "github.com/m04kA/GYM-ReservationService/internal/usecase/set_attendance"
)

type SetAttendanceUseCase interface {
	Execute(ctx context.Context, req *setAttendance.Request) (*setAttendance.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
