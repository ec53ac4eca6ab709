package calculate_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	itinerarySvc "github.com/m04kA/TRV-BookingEngine/internal/service/itinerary"
	"github.com/m04kA/TRV-BookingEngine/internal/service/pricing"
)

// UseCase use case расчета цены маршрута.
// Чистая котировка по текущему каталогу: ничего не бронирует,
// доступность не проверяет.
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

// Execute выполняет use case расчета цены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculatePrice: people=%d, days=%d, partial=%t", req.NumberOfPeople, req.NumberOfDays, req.Partial)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculatePrice: validation failed: %v", err)
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
			uc.logger.Warn("CalculatePrice: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrResourceNotFound, err)
		}
		uc.logger.Error("CalculatePrice: failed to load itinerary: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	breakdown, err := uc.itinerary.Price(it, req.NumberOfPeople, req.NumberOfDays, req.Partial)
	if err != nil {
		if errors.Is(err, pricing.ErrMissingStay) || errors.Is(err, pricing.ErrMissingTransportation) {
			uc.logger.Warn("CalculatePrice: incomplete selection: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrIncompleteSelection, err)
		}
		uc.logger.Error("CalculatePrice: pricing failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CalculatePrice: grand_total=%d", breakdown.GrandTotal)

	return &Response{Pricing: breakdown}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
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

	if req.NumberOfPeople < domain.MinNumberOfPeople {
		return fmt.Errorf("%w: numberOfPeople must be at least %d", ErrInvalidInput, domain.MinNumberOfPeople)
	}
	if req.NumberOfPeople > domain.MaxNumberOfPeople {
		return fmt.Errorf("%w: numberOfPeople must not exceed %d", ErrInvalidInput, domain.MaxNumberOfPeople)
	}
	if req.NumberOfDays < 1 {
		return fmt.Errorf("%w: numberOfDays must be at least 1", ErrInvalidInput)
	}

	return nil
}
