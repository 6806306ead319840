package reservation

import "github.com/m04kA/GYM-ReservationService/pkg/txmanager"

// Переиспользуем интерфейс executor из txmanager для работы с БД
// Репозиторий работает одинаково внутри и вне транзакции
type DBExecutor = txmanager.DBExecutor
