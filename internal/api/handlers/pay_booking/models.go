package pay_booking

import (
	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	payBooking "github.com/m04kA/TRV-BookingEngine/internal/usecase/pay_booking"
)

// PayBookingRequest HTTP request model.
// Поля приходят из клиентского чекаута Razorpay.
type PayBookingRequest struct {
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
}

// PricingResponse декомпозированная цена маршрута
type PricingResponse struct {
	StayTotal            int64 `json:"stayTotal"`
	TransportationTotal  int64 `json:"transportationTotal"`
	SightseeingTotal     int64 `json:"sightseeingTotal"`
	AirportTransferTotal int64 `json:"airportTransferTotal"`
	GrandTotal           int64 `json:"grandTotal"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"userId"`
	CheckInDate    string          `json:"checkInDate"`
	CheckOutDate   string          `json:"checkOutDate"`
	NumberOfPeople int             `json:"numberOfPeople"`
	NumberOfDays   int             `json:"numberOfDays"`
	Status         string          `json:"status"`
	PaymentStatus  string          `json:"paymentStatus"`
	PaymentRef     *string         `json:"paymentRef,omitempty"`
	Pricing        PricingResponse `json:"pricing"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PayBookingRequest) ToUseCaseRequest(bookingID, userID int64) *payBooking.Request {
	return &payBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
		OrderID:   r.RazorpayOrderID,
		PaymentID: r.RazorpayPaymentID,
		Signature: r.RazorpaySignature,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *payBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		UserID:         resp.UserID,
		CheckInDate:    resp.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:   resp.CheckOutDate.Format(domain.DateFormat),
		NumberOfPeople: resp.NumberOfPeople,
		NumberOfDays:   resp.NumberOfDays,
		Status:         resp.Status,
		PaymentStatus:  resp.PaymentStatus,
		PaymentRef:     resp.PaymentRef,
		Pricing: PricingResponse{
			StayTotal:            resp.Pricing.StayTotal,
			TransportationTotal:  resp.Pricing.TransportationTotal,
			SightseeingTotal:     resp.Pricing.SightseeingTotal,
			AirportTransferTotal: resp.Pricing.AirportTransferTotal,
			GrandTotal:           resp.Pricing.GrandTotal,
		},
	}
}
