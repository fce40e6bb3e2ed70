package reservation

import "github.com/glamtime/GT-BookingService/pkg/txmanager"

// Переиспользуем интерфейс executor'а из txmanager для работы с БД
type DBExecutor = txmanager.DBExecutor
