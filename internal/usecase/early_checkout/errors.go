package early_checkout

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("early_checkout: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец бронирования
	ErrAccessDenied = errors.New("early_checkout: access denied")

	// ErrInvalidTransition возвращается, когда ранний выезд невозможен
	// из текущего статуса (только booked и confirmed)
	ErrInvalidTransition = errors.New("early_checkout: booking is not eligible for early checkout")

	// ErrInvalidDateRange возвращается, когда новая дата выезда не лежит
	// строго между заездом и исходным выездом
	ErrInvalidDateRange = errors.New("early_checkout: invalid new check-out date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("early_checkout: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("early_checkout: internal error")
)
