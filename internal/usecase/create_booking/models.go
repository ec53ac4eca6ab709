package create_booking

import (
	"time"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
)

// TransferInput выбранная машина трансфера с количеством
type TransferInput struct {
	VehicleID int64
	Count     int
}

// Request модель запроса на создание черновика бронирования
type Request struct {
	UserID int64

	StayID           int64
	TransportationID int64
	ActivityIDs      []int64
	Transfers        []TransferInput

	CheckInDate    time.Time // включительно
	CheckOutDate   time.Time // исключительно: [in, out)
	NumberOfPeople int
	NumberOfDays   int // должно совпадать с длиной диапазона в днях

	SpecialRequests *string
}

// Response модель ответа с созданным черновиком
type Response struct {
	ID     int64
	UserID int64

	StayID           int64
	TransportationID int64
	ActivityIDs      []int64
	Transfers        []TransferInput

	CheckInDate    time.Time
	CheckOutDate   time.Time
	NumberOfPeople int
	NumberOfDays   int

	Status        string
	PaymentStatus string

	Pricing domain.PricingBreakdown

	SpecialRequests *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// toResponse конвертирует domain модель в ответ usecase
func toResponse(b *domain.Booking) *Response {
	resp := &Response{
		ID:               b.ID,
		UserID:           b.UserID,
		StayID:           b.StayID,
		TransportationID: b.TransportationID,
		ActivityIDs:      b.ActivityIDs,
		CheckInDate:      b.CheckInDate,
		CheckOutDate:     b.CheckOutDate,
		NumberOfPeople:   b.NumberOfPeople,
		NumberOfDays:     b.NumberOfDays,
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		Pricing:          b.Pricing,
		SpecialRequests:  b.SpecialRequests,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}

	for _, sel := range b.Transfers {
		resp.Transfers = append(resp.Transfers, TransferInput{VehicleID: sel.VehicleID, Count: sel.Count})
	}

	return resp
}
