package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда резервация не найдена
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrDuplicateReservation возвращается при нарушении уникальности (slot_id, member_id)
	ErrDuplicateReservation = errors.New("reservation.repository: member already has a reservation for this slot")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
