package early_checkout

import (
	"time"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
)

// Request модель запроса на ранний выезд
type Request struct {
	BookingID int64
	UserID    int64

	NewCheckOutDate time.Time
}

// Response модель ответа с сокращенным бронированием
type Response struct {
	ID     int64
	UserID int64

	CheckInDate    time.Time
	CheckOutDate   time.Time
	NumberOfPeople int
	NumberOfDays   int

	Status        string
	PaymentStatus string

	// Снапшот цены исходного диапазона, без перерасчета
	Pricing domain.PricingBreakdown
}

// toResponse конвертирует domain модель в ответ usecase
func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:             b.ID,
		UserID:         b.UserID,
		CheckInDate:    b.CheckInDate,
		CheckOutDate:   b.CheckOutDate,
		NumberOfPeople: b.NumberOfPeople,
		NumberOfDays:   b.NumberOfDays,
		Status:         string(b.Status),
		PaymentStatus:  string(b.PaymentStatus),
		Pricing:        b.Pricing,
	}
}
