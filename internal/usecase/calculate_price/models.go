package calculate_price

import "github.com/m04kA/TRV-BookingEngine/internal/domain"

// TransferInput выбранная машина трансфера с количеством
type TransferInput struct {
	VehicleID int64
	Count     int
}

// Request модель запроса расчета цены.
// Partial разрешает неполный состав для живого предпросмотра в UI;
// без него отсутствие жилья или транспорта - ошибка.
type Request struct {
	StayID           *int64
	TransportationID *int64
	ActivityIDs      []int64
	Transfers        []TransferInput

	NumberOfPeople int
	NumberOfDays   int

	Partial bool
}

// Response детализация цены по составляющим маршрута
type Response struct {
	Pricing domain.PricingBreakdown
}
