package check_availability

import (
	"time"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	checkAvailability "github.com/m04kA/TRV-BookingEngine/internal/usecase/check_availability"
)

// TransferSelection выбранная машина трансфера
type TransferSelection struct {
	VehicleID int64 `json:"vehicleId"`
	Count     int   `json:"count"`
}

// CheckAvailabilityRequest HTTP request model.
// Состав может быть частичным: проверяется только выбранное.
type CheckAvailabilityRequest struct {
	StayID           *int64              `json:"stayId,omitempty"`
	TransportationID *int64              `json:"transportationId,omitempty"`
	ActivityIDs      []int64             `json:"activityIds,omitempty"`
	Transfers        []TransferSelection `json:"transfers,omitempty"`
	CheckInDate      string              `json:"checkInDate"`
	CheckOutDate     string              `json:"checkOutDate"`
	NumberOfPeople   int                 `json:"numberOfPeople"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available bool    `json:"available"`
	Reason    *string `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() (*checkAvailability.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckInDate)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	transfers := make([]checkAvailability.TransferInput, 0, len(r.Transfers))
	for _, t := range r.Transfers {
		transfers = append(transfers, checkAvailability.TransferInput{VehicleID: t.VehicleID, Count: t.Count})
	}

	return &checkAvailability.Request{
		StayID:           r.StayID,
		TransportationID: r.TransportationID,
		ActivityIDs:      r.ActivityIDs,
		Transfers:        transfers,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		NumberOfPeople:   r.NumberOfPeople,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	return &CheckAvailabilityResponse{
		Available: resp.Available,
		Reason:    resp.Reason,
	}
}
