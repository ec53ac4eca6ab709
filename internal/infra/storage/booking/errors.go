package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrMarshalTransfers возвращается при ошибке сериализации выбранных трансферов
	ErrMarshalTransfers = errors.New("booking.repository: failed to marshal transfer selections")

	// ErrStaleStatus возвращается, когда статусный предикат UPDATE не совпал:
	// статус бронирования изменился между чтением и обновлением
	ErrStaleStatus = errors.New("booking.repository: booking status changed concurrently")
)
