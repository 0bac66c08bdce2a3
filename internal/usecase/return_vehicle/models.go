package return_vehicle

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request данные возврата автомобиля
type Request struct {
	ReservationID       uuid.UUID
	Mileage             int              // итоговый пробег, км
	FuelLevel           *string          // например "1/2"
	BatteryLevel        *int             // %, для электромобилей
	HasIncident         bool             // были ли проблемы
	IncidentDescription *string          // описание проблем
	FuelCost            *decimal.Decimal // опционально
	ParkingCost         *decimal.Decimal // опционально
	TollCost            *decimal.Decimal // опционально
}

// Response результат возврата
type Response struct {
	ReservationID uuid.UUID
	VehicleID     uuid.UUID
	Mileage       int
	Notes         string     // строка, добавленная к заметкам бронирования
	RepairJobID   *uuid.UUID // заявка на ремонт, если были проблемы
}
