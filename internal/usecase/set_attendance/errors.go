package set_attendance

import "errors"

var (
	// ErrReservationNotFound возвращается, когда резервация не найдена
	ErrReservationNotFound = errors.New("set_attendance: reservation not found")

	// ErrNotStarted возвращается при попытке отметить отсутствие до начала занятия
	ErrNotStarted = errors.New("set_attendance: session has not started yet")

	// ErrWindowExpired возвращается, когда окно коррекции посещаемости истекло
	ErrWindowExpired = errors.New("set_attendance: attendance can no longer be changed")

	// ErrInvalidTransition возвращается для недопустимого перехода посещаемости
	ErrInvalidTransition = errors.New("set_attendance: invalid attendance transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("set_attendance: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("set_attendance: internal error")
)
