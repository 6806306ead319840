package get_day_schedule

import (
	"time"

	"github.com/m04kA/GYM-ReservationService/pkg/types"
)

// Request модель запроса расписания дня
type Request struct {
	Date time.Time // Дата (без времени)
}

// Entry одна запись объединенного представления (мануальная или виртуальная)
type Entry struct {
	ID          string           // ID резервации или синтетический ID виртуальной
	SlotID      *int64           // ID слота (nil для виртуальных)
	MemberID    *int64           // ID участника (nil для walk-in)
	ClientName  string           // Имя клиента
	ClientPhone *string          // Телефон (только мануальные walk-in)
	ClientEmail *string          // Email (только мануальные walk-in)
	StartTime   types.TimeString // Время начала
	EndTime     types.TimeString // Время окончания
	IsVirtual   bool             // true для виртуальных резерваций
	Attendance  string           // Статус посещаемости
}

// TimeGroup записи одного времени занятия со счетчиками посещаемости
type TimeGroup struct {
	StartTime types.TimeString // Время начала занятия
	Entries   []Entry          // Записи, отсортированные: мануальные, затем виртуальные
	Total     int              // Всего записей
	Attended  int              // Отмечено присутствие
	Absent    int              // Отмечено отсутствие
	Pending   int              // Посещаемость не отмечена
}

// Response модель ответа с расписанием дня
type Response struct {
	Date    time.Time   // Запрошенная дата
	Weekday string      // День недели
	Groups  []TimeGroup // Группы по времени, отсортированы по возрастанию
}
