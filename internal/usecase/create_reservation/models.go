package create_reservation

import (
	"time"

	"github.com/m04kA/GYM-ReservationService/pkg/types"
)

// Request модель запроса на создание резервации
// Указывается либо MemberID (участник), либо ClientName (walk-in клиент).
type Request struct {
	SlotID      int64   // ID слота занятия
	MemberID    *int64  // ID участника (опционально)
	ClientName  *string // Имя walk-in клиента (опционально)
	ClientPhone *string // Телефон walk-in клиента (опционально)
	ClientEmail *string // Email walk-in клиента (опционально)
}

// Response модель ответа с созданной резервацией
type Response struct {
	ID          int64            // ID созданной резервации
	SlotID      int64            // ID слота
	MemberID    *int64           // ID участника (nil для walk-in)
	ClientName  *string          // Имя клиента
	ClientPhone *string          // Телефон
	ClientEmail *string          // Email
	SlotDate    time.Time        // Дата занятия
	StartTime   types.TimeString // Время начала занятия
	Attendance  string           // Статус посещаемости (всегда pending при создании)

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
