package pay_booking

import (
	"time"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
)

// Request модель запроса на оплату черновика.
// OrderID, PaymentID и Signature приходят из клиентского чекаута Razorpay.
type Request struct {
	BookingID int64
	UserID    int64

	OrderID   string
	PaymentID string
	Signature string
}

// Response модель ответа с оплаченным бронированием
type Response struct {
	ID     int64
	UserID int64

	CheckInDate    time.Time
	CheckOutDate   time.Time
	NumberOfPeople int
	NumberOfDays   int

	Status        string
	PaymentStatus string
	PaymentRef    *string

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
		PaymentRef:     b.PaymentRef,
		Pricing:        b.Pricing,
	}
}
