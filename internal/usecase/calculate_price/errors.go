package calculate_price

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс маршрута не найден в каталоге
	ErrResourceNotFound = errors.New("calculate_price: resource not found")

	// ErrIncompleteSelection возвращается, когда полная котировка запрошена
	// без жилья или транспорта
	ErrIncompleteSelection = errors.New("calculate_price: full quote requires stay and transportation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calculate_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_price: internal error")
)
