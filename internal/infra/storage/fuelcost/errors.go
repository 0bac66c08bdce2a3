package fuelcost

import "errors"

var (
	// ErrFuelCostNotFound возвращается, когда запись о заправке не найдена
	ErrFuelCostNotFound = errors.New("fuelcost.repository: fuel cost not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("fuelcost.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("fuelcost.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("fuelcost.repository: failed to scan row")
)
