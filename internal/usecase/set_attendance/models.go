package set_attendance

import (
	"time"
)

// Request модель запроса на изменение посещаемости
type Request struct {
	ReservationID int64 // ID резервации
	Attended      bool  // true = посетил, false = отсутствовал
}

// Response модель ответа с обновленной резервацией
type Response struct {
	ID         int64   // ID резервации
	SlotID     int64   // ID слота
	MemberID   *int64  // ID участника (nil для walk-in)
	ClientName *string // Имя клиента
	Attendance string  // Новый статус посещаемости

	UpdatedAt time.Time // Время обновления
}
