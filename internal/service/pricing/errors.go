package pricing

import "errors"

var (
	// ErrMissingStay возвращается, когда полный расчет запрошен без выбранного жилья
	ErrMissingStay = errors.New("pricing: stay selection is required")

	// ErrMissingTransportation возвращается, когда полный расчет запрошен без транспорта
	ErrMissingTransportation = errors.New("pricing: transportation selection is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("pricing: invalid input data")
)
