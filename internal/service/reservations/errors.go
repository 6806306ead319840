package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда резервация не найдена
	ErrReservationNotFound = errors.New("reservations.service: reservation not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations.service: internal error")
)
