package create_booking

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс маршрута не найден в каталоге
	ErrResourceNotFound = errors.New("create_booking: resource not found")

	// ErrResourceInactive возвращается, когда ресурс отключен администратором
	ErrResourceInactive = errors.New("create_booking: resource is inactive")

	// ErrCapacityExceeded возвращается, когда вместимости не хватает
	// хотя бы на один день диапазона (включая дни из блок-листа)
	ErrCapacityExceeded = errors.New("create_booking: not enough capacity for requested dates")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("create_booking: invalid date range")

	// ErrOccupancyExceeded возвращается, когда размер группы превышает
	// максимальную вместимость номера
	ErrOccupancyExceeded = errors.New("create_booking: party size exceeds stay max occupancy")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
