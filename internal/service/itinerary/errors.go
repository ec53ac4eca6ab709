package itinerary

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс маршрута не найден в каталоге
	ErrResourceNotFound = errors.New("itinerary: resource not found")

	// ErrResourceInactive возвращается, когда ресурс отключен администратором каталога
	ErrResourceInactive = errors.New("itinerary: resource is inactive")

	// ErrCapacityExceeded возвращается, когда хотя бы одному ресурсу маршрута
	// не хватает вместимости на хотя бы один день диапазона
	// (включая дни из админского блок-листа)
	ErrCapacityExceeded = errors.New("itinerary: not enough capacity for requested dates")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("itinerary: internal error")
)
