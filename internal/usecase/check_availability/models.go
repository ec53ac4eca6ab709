package check_availability

import "time"

// TransferInput выбранная машина трансфера с количеством
type TransferInput struct {
	VehicleID int64
	Count     int
}

// Request модель запроса проверки доступности.
// Состав может быть частичным: проверяется только то, что выбрано.
type Request struct {
	StayID           *int64
	TransportationID *int64
	ActivityIDs      []int64
	Transfers        []TransferInput

	CheckInDate    time.Time
	CheckOutDate   time.Time
	NumberOfPeople int
}

// Response вердикт доступности. Reason заполнен, только когда маршрут
// недоступен, и называет первый отказавший ресурс.
type Response struct {
	Available bool
	Reason    *string
}
