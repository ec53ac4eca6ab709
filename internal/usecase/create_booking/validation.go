package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Несовпадение numberOfDays с длиной диапазона дат отклоняется,
// а не молча исправляется.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.StayID <= 0 {
		return fmt.Errorf("%w: stayID must be positive", ErrInvalidInput)
	}
	if req.TransportationID <= 0 {
		return fmt.Errorf("%w: transportationID must be positive", ErrInvalidInput)
	}
	for _, activityID := range req.ActivityIDs {
		if activityID <= 0 {
			return fmt.Errorf("%w: activityID must be positive", ErrInvalidInput)
		}
	}
	for _, transfer := range req.Transfers {
		if transfer.VehicleID <= 0 {
			return fmt.Errorf("%w: transfer vehicleID must be positive", ErrInvalidInput)
		}
		if transfer.Count < 1 {
			return fmt.Errorf("%w: transfer vehicle count must be at least 1", ErrInvalidInput)
		}
	}

	if err := validateDateRange(req.CheckInDate, req.CheckOutDate, req.NumberOfDays); err != nil {
		return err
	}

	if req.NumberOfPeople < domain.MinNumberOfPeople {
		return fmt.Errorf("%w: numberOfPeople must be at least %d", ErrInvalidInput, domain.MinNumberOfPeople)
	}
	if req.NumberOfPeople > domain.MaxNumberOfPeople {
		return fmt.Errorf("%w: numberOfPeople must not exceed %d", ErrInvalidInput, domain.MaxNumberOfPeople)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests too long", ErrInvalidInput)
	}

	return nil
}

// validateDateRange проверяет полуоткрытый диапазон [in, out)
// и согласованность производного numberOfDays
func validateDateRange(checkIn, checkOut time.Time, numberOfDays int) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return fmt.Errorf("%w: checkInDate and checkOutDate are required", ErrInvalidDateRange)
	}
	if !checkOut.After(checkIn) {
		return fmt.Errorf("%w: checkOutDate must be after checkInDate", ErrInvalidDateRange)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights > domain.MaxStayNights {
		return fmt.Errorf("%w: stay longer than %d nights", ErrInvalidDateRange, domain.MaxStayNights)
	}
	if numberOfDays != nights {
		return fmt.Errorf("%w: numberOfDays=%d does not match date range of %d days",
			ErrInvalidInput, numberOfDays, nights)
	}

	return nil
}

// validateOccupancy проверяет, что размер группы не превышает вместимость номера.
// Предусловие бронирования, не ценовой фактор.
func validateOccupancy(stay *domain.Resource, numberOfPeople int) error {
	if stay.MaxOccupancy > 0 && numberOfPeople > stay.MaxOccupancy {
		return fmt.Errorf("%w: %d people, max occupancy %d", ErrOccupancyExceeded, numberOfPeople, stay.MaxOccupancy)
	}
	return nil
}
