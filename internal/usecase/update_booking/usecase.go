package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	bookingRepo "github.com/m04kA/TRV-BookingEngine/internal/infra/storage/booking"
	itinerarySvc "github.com/m04kA/TRV-BookingEngine/internal/service/itinerary"
	"github.com/m04kA/TRV-BookingEngine/pkg/ptr"
)

// UseCase use case редактирования черновика бронирования.
// Любая правка дат, состава или размера группы вне draft отклоняется:
// оплаченный маршрут меняется только через отмену или ранний выезд.
type UseCase struct {
	bookingRepo BookingRepository
	itinerary   ItineraryService
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	itinerary ItineraryService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		itinerary:   itinerary,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case редактирования черновика:
// заново прогоняет доступность и пересчитывает снапшот цены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d, user=%d, range=[%s, %s), people=%d",
		req.BookingID, req.UserID,
		req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat), req.NumberOfPeople)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	transfers := make([]domain.TransferSelection, 0, len(req.Transfers))
	for _, t := range req.Transfers {
		transfers = append(transfers, domain.TransferSelection{VehicleID: t.VehicleID, Count: t.Count})
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: repository error for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.UserID != req.UserID {
			uc.logger.Warn("UpdateBooking: access denied for user=%d to booking id=%d", req.UserID, req.BookingID)
			return ErrAccessDenied
		}

		if !booking.CanBeUpdated() {
			uc.logger.Warn("UpdateBooking: booking id=%d is not a draft, status=%s", req.BookingID, booking.Status)
			return ErrNotDraft
		}

		it, err := uc.itinerary.Load(txCtx, itinerarySvc.Selection{
			StayID:           ptr.Ptr(req.StayID),
			TransportationID: ptr.Ptr(req.TransportationID),
			ActivityIDs:      req.ActivityIDs,
			Transfers:        transfers,
		})
		if err != nil {
			return uc.mapItineraryError(err)
		}

		if err := validateOccupancy(it.Stay, req.NumberOfPeople); err != nil {
			uc.logger.Warn("UpdateBooking: occupancy check failed: %v", err)
			return err
		}

		// Собственное бронирование исключается из подсчёта занятости.
		// Для draft это ничего не меняет (draft не занимает инвентарь),
		// но контракт перепроверки существующего бронирования единый.
		err = uc.itinerary.CheckAvailability(txCtx, it, itinerarySvc.CheckParams{
			RangeStart:       req.CheckInDate,
			RangeEnd:         req.CheckOutDate,
			NumberOfPeople:   req.NumberOfPeople,
			ExcludeBookingID: ptr.Ptr(req.BookingID),
		})
		if err != nil {
			return uc.mapItineraryError(err)
		}

		pricing, err := uc.itinerary.Price(it, req.NumberOfPeople, req.NumberOfDays, false)
		if err != nil {
			uc.logger.Warn("UpdateBooking: pricing failed: %v", err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		booking.StayID = req.StayID
		booking.TransportationID = req.TransportationID
		booking.ActivityIDs = req.ActivityIDs
		booking.Transfers = transfers
		booking.CheckInDate = req.CheckInDate
		booking.CheckOutDate = req.CheckOutDate
		booking.NumberOfPeople = req.NumberOfPeople
		booking.NumberOfDays = req.NumberOfDays
		booking.Pricing = pricing
		booking.SpecialRequests = req.SpecialRequests

		if err := uc.bookingRepo.Update(txCtx, booking); err != nil {
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated draft booking id=%d, grand_total=%d",
		result.ID, result.Pricing.GrandTotal)

	return toResponse(result), nil
}

// mapItineraryError конвертирует ошибки сервиса маршрутов в ошибки usecase
func (uc *UseCase) mapItineraryError(err error) error {
	switch {
	case errors.Is(err, itinerarySvc.ErrResourceNotFound):
		uc.logger.Warn("UpdateBooking: %v", err)
		return fmt.Errorf("%w: %v", ErrResourceNotFound, err)
	case errors.Is(err, itinerarySvc.ErrResourceInactive):
		uc.logger.Warn("UpdateBooking: %v", err)
		return fmt.Errorf("%w: %v", ErrResourceInactive, err)
	case errors.Is(err, itinerarySvc.ErrCapacityExceeded):
		uc.logger.Warn("UpdateBooking: %v", err)
		return fmt.Errorf("%w: %v", ErrCapacityExceeded, err)
	default:
		uc.logger.Error("UpdateBooking: itinerary service error: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
