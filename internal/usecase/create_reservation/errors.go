package create_reservation

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("create_reservation: slot not found")

	// ErrSlotNotBookable возвращается, когда слот отменен и недоступен для записи
	ErrSlotNotBookable = errors.New("create_reservation: slot is not bookable")

	// ErrSlotFull возвращается, когда вместимость слота исчерпана (manual + virtual)
	ErrSlotFull = errors.New("create_reservation: slot capacity reached")

	// ErrAlreadyBooked возвращается, когда у участника уже есть резервация на этот слот
	ErrAlreadyBooked = errors.New("create_reservation: member already booked for this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
