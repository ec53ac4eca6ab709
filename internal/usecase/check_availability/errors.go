package check_availability

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс маршрута не найден в каталоге
	ErrResourceNotFound = errors.New("check_availability: resource not found")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("check_availability: invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
