package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец черновика
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrNotDraft возвращается при попытке редактировать не-draft бронирование.
	// Оплаченный маршрут неизменяем: только отмена с пересозданием
	// или ранний выезд.
	ErrNotDraft = errors.New("update_booking: booking is not a draft")

	// ErrResourceNotFound возвращается, когда ресурс маршрута не найден в каталоге
	ErrResourceNotFound = errors.New("update_booking: resource not found")

	// ErrResourceInactive возвращается, когда ресурс отключен администратором
	ErrResourceInactive = errors.New("update_booking: resource is inactive")

	// ErrCapacityExceeded возвращается, когда вместимости не хватает
	ErrCapacityExceeded = errors.New("update_booking: not enough capacity for requested dates")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("update_booking: invalid date range")

	// ErrOccupancyExceeded возвращается, когда размер группы превышает
	// максимальную вместимость номера
	ErrOccupancyExceeded = errors.New("update_booking: party size exceeds stay max occupancy")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
