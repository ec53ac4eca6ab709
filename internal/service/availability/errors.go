package availability

import "errors"

var (
	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	// (checkOut <= checkIn или нулевые даты)
	ErrInvalidDateRange = errors.New("availability: invalid date range")

	// ErrInvalidQuantity возвращается при неположительном запрашиваемом количестве
	ErrInvalidQuantity = errors.New("availability: requested quantity must be positive")

	// ErrInternal возвращается при внутренних ошибках проверки
	ErrInternal = errors.New("availability: internal error")
)
