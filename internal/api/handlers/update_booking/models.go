package update_booking

import (
	"time"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	updateBooking "github.com/m04kA/TRV-BookingEngine/internal/usecase/update_booking"
)

// TransferSelection выбранная машина трансфера
type TransferSelection struct {
	VehicleID int64 `json:"vehicleId"`
	Count     int   `json:"count"`
}

// UpdateBookingRequest HTTP request model.
// Передается полный новый состав черновика, а не дельта.
type UpdateBookingRequest struct {
	StayID           int64               `json:"stayId"`
	TransportationID int64               `json:"transportationId"`
	ActivityIDs      []int64             `json:"activityIds,omitempty"`
	Transfers        []TransferSelection `json:"transfers,omitempty"`
	CheckInDate      string              `json:"checkInDate"`
	CheckOutDate     string              `json:"checkOutDate"`
	NumberOfPeople   int                 `json:"numberOfPeople"`
	NumberOfDays     int                 `json:"numberOfDays"`
	SpecialRequests  *string             `json:"specialRequests,omitempty"`
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
	ID               int64               `json:"id"`
	UserID           int64               `json:"userId"`
	StayID           int64               `json:"stayId"`
	TransportationID int64               `json:"transportationId"`
	ActivityIDs      []int64             `json:"activityIds"`
	Transfers        []TransferSelection `json:"transfers,omitempty"`
	CheckInDate      string              `json:"checkInDate"`
	CheckOutDate     string              `json:"checkOutDate"`
	NumberOfPeople   int                 `json:"numberOfPeople"`
	NumberOfDays     int                 `json:"numberOfDays"`
	Status           string              `json:"status"`
	PaymentStatus    string              `json:"paymentStatus"`
	Pricing          PricingResponse     `json:"pricing"`
	SpecialRequests  *string             `json:"specialRequests,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID, userID int64) (*updateBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckInDate)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	transfers := make([]updateBooking.TransferInput, 0, len(r.Transfers))
	for _, t := range r.Transfers {
		transfers = append(transfers, updateBooking.TransferInput{VehicleID: t.VehicleID, Count: t.Count})
	}

	return &updateBooking.Request{
		BookingID:        bookingID,
		UserID:           userID,
		StayID:           r.StayID,
		TransportationID: r.TransportationID,
		ActivityIDs:      r.ActivityIDs,
		Transfers:        transfers,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		NumberOfPeople:   r.NumberOfPeople,
		NumberOfDays:     r.NumberOfDays,
		SpecialRequests:  r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:               resp.ID,
		UserID:           resp.UserID,
		StayID:           resp.StayID,
		TransportationID: resp.TransportationID,
		ActivityIDs:      resp.ActivityIDs,
		CheckInDate:      resp.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:     resp.CheckOutDate.Format(domain.DateFormat),
		NumberOfPeople:   resp.NumberOfPeople,
		NumberOfDays:     resp.NumberOfDays,
		Status:           resp.Status,
		PaymentStatus:    resp.PaymentStatus,
		Pricing: PricingResponse{
			StayTotal:            resp.Pricing.StayTotal,
			TransportationTotal:  resp.Pricing.TransportationTotal,
			SightseeingTotal:     resp.Pricing.SightseeingTotal,
			AirportTransferTotal: resp.Pricing.AirportTransferTotal,
			GrandTotal:           resp.Pricing.GrandTotal,
		},
		SpecialRequests: resp.SpecialRequests,
	}

	for _, t := range resp.Transfers {
		out.Transfers = append(out.Transfers, TransferSelection{VehicleID: t.VehicleID, Count: t.Count})
	}

	return out
}
