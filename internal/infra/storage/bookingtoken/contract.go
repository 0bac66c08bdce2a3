package bookingtoken

import (
	"github.com/m04kA/SMC-FleetService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
