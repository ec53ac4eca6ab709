package calculate_price

import calculatePrice "github.com/m04kA/TRV-BookingEngine/internal/usecase/calculate_price"

// TransferSelection выбранная машина трансфера
type TransferSelection struct {
	VehicleID int64 `json:"vehicleId"`
	Count     int   `json:"count"`
}

// CalculatePriceRequest HTTP request model.
// partial=true разрешает неполный состав для живого предпросмотра.
type CalculatePriceRequest struct {
	StayID           *int64              `json:"stayId,omitempty"`
	TransportationID *int64              `json:"transportationId,omitempty"`
	ActivityIDs      []int64             `json:"activityIds,omitempty"`
	Transfers        []TransferSelection `json:"transfers,omitempty"`
	NumberOfPeople   int                 `json:"numberOfPeople"`
	NumberOfDays     int                 `json:"numberOfDays"`
	Partial          bool                `json:"partial,omitempty"`
}

// PricingResponse HTTP response model
type PricingResponse struct {
	StayTotal            int64 `json:"stayTotal"`
	TransportationTotal  int64 `json:"transportationTotal"`
	SightseeingTotal     int64 `json:"sightseeingTotal"`
	AirportTransferTotal int64 `json:"airportTransferTotal"`
	GrandTotal           int64 `json:"grandTotal"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CalculatePriceRequest) ToUseCaseRequest() *calculatePrice.Request {
	transfers := make([]calculatePrice.TransferInput, 0, len(r.Transfers))
	for _, t := range r.Transfers {
		transfers = append(transfers, calculatePrice.TransferInput{VehicleID: t.VehicleID, Count: t.Count})
	}

	return &calculatePrice.Request{
		StayID:           r.StayID,
		TransportationID: r.TransportationID,
		ActivityIDs:      r.ActivityIDs,
		Transfers:        transfers,
		NumberOfPeople:   r.NumberOfPeople,
		NumberOfDays:     r.NumberOfDays,
		Partial:          r.Partial,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculatePrice.Response) *PricingResponse {
	return &PricingResponse{
		StayTotal:            resp.Pricing.StayTotal,
		TransportationTotal:  resp.Pricing.TransportationTotal,
		SightseeingTotal:     resp.Pricing.SightseeingTotal,
		AirportTransferTotal: resp.Pricing.AirportTransferTotal,
		GrandTotal:           resp.Pricing.GrandTotal,
	}
}
