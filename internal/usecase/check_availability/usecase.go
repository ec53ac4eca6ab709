package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	itinerarySvc "github.com/m04kA/TRV-BookingEngine/internal/service/itinerary"
	"github.com/m04kA/TRV-BookingEngine/pkg/ptr"
)

// UseCase use case предпросмотра доступности.
//
// Ответ консультативный: читается несериализованный снимок, между
// предпросмотром и оплатой инвентарь могут разобрать. Авторитетная
// проверка выполняется в момент оплаты.
type UseCase struct {
	itinerary ItineraryService
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(itinerary ItineraryService, logger Logger) *UseCase {
	return &UseCase{
		itinerary: itinerary,
		logger:    logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: range=[%s, %s), people=%d",
		req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat), req.NumberOfPeople)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	transfers := make([]domain.TransferSelection, 0, len(req.Transfers))
	for _, t := range req.Transfers {
		transfers = append(transfers, domain.TransferSelection{VehicleID: t.VehicleID, Count: t.Count})
	}

	it, err := uc.itinerary.Load(ctx, itinerarySvc.Selection{
		StayID:           req.StayID,
		TransportationID: req.TransportationID,
		ActivityIDs:      req.ActivityIDs,
		Transfers:        transfers,
	})
	if err != nil {
		if errors.Is(err, itinerarySvc.ErrResourceNotFound) {
			uc.logger.Warn("CheckAvailability: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrResourceNotFound, err)
		}
		uc.logger.Error("CheckAvailability: failed to load itinerary: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	err = uc.itinerary.CheckAvailability(ctx, it, itinerarySvc.CheckParams{
		RangeStart:     req.CheckInDate,
		RangeEnd:       req.CheckOutDate,
		NumberOfPeople: req.NumberOfPeople,
	})
	if err != nil {
		// Недоступность - штатный ответ предпросмотра, а не ошибка
		if errors.Is(err, itinerarySvc.ErrCapacityExceeded) || errors.Is(err, itinerarySvc.ErrResourceInactive) {
			uc.logger.Info("CheckAvailability: itinerary unavailable: %v", err)
			return &Response{Available: false, Reason: ptr.Ptr(err.Error())}, nil
		}
		uc.logger.Error("CheckAvailability: check failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Response{Available: true}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StayID == nil && req.TransportationID == nil && len(req.ActivityIDs) == 0 && len(req.Transfers) == 0 {
		return fmt.Errorf("%w: at least one resource must be selected", ErrInvalidInput)
	}
	if req.StayID != nil && *req.StayID <= 0 {
		return fmt.Errorf("%w: stayID must be positive", ErrInvalidInput)
	}
	if req.TransportationID != nil && *req.TransportationID <= 0 {
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

	if err := validateDateRange(req.CheckInDate, req.CheckOutDate); err != nil {
		return err
	}

	if req.NumberOfPeople < domain.MinNumberOfPeople {
		return fmt.Errorf("%w: numberOfPeople must be at least %d", ErrInvalidInput, domain.MinNumberOfPeople)
	}
	if req.NumberOfPeople > domain.MaxNumberOfPeople {
		return fmt.Errorf("%w: numberOfPeople must not exceed %d", ErrInvalidInput, domain.MaxNumberOfPeople)
	}

	return nil
}

// validateDateRange проверяет полуоткрытый диапазон [in, out)
func validateDateRange(checkIn, checkOut time.Time) error {
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
	return nil
}
