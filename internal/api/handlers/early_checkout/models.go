package early_checkout

import (
	"time"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	earlyCheckout "github.com/m04kA/TRV-BookingEngine/internal/usecase/early_checkout"
)

// EarlyCheckoutRequest HTTP request model
type EarlyCheckoutRequest struct {
	NewCheckOutDate string `json:"newCheckOutDate"` // "2026-06-05"
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
	Pricing        PricingResponse `json:"pricing"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EarlyCheckoutRequest) ToUseCaseRequest(bookingID, userID int64) (*earlyCheckout.Request, error) {
	newCheckOut, err := time.Parse(domain.DateFormat, r.NewCheckOutDate)
	if err != nil {
		return nil, err
	}

	return &earlyCheckout.Request{
		BookingID:       bookingID,
		UserID:          userID,
		NewCheckOutDate: newCheckOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *earlyCheckout.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		UserID:         resp.UserID,
		CheckInDate:    resp.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:   resp.CheckOutDate.Format(domain.DateFormat),
		NumberOfPeople: resp.NumberOfPeople,
		NumberOfDays:   resp.NumberOfDays,
		Status:         resp.Status,
		PaymentStatus:  resp.PaymentStatus,
		Pricing: PricingResponse{
			StayTotal:            resp.Pricing.StayTotal,
			TransportationTotal:  resp.Pricing.TransportationTotal,
			SightseeingTotal:     resp.Pricing.SightseeingTotal,
			AirportTransferTotal: resp.Pricing.AirportTransferTotal,
			GrandTotal:           resp.Pricing.GrandTotal,
		},
	}
}
