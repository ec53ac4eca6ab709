package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	itinerarySvc "github.com/m04kA/TRV-BookingEngine/internal/service/itinerary"
	"github.com/m04kA/TRV-BookingEngine/pkg/ptr"
)

// UseCase use case создания черновика бронирования.
//
// Черновик - приведенная к цене, но ни к чему не обязывающая заявка:
// он НЕ занимает инвентарь. Доступность проверяется здесь, чтобы не дать
// пользователю собрать заведомо нереализуемый маршрут, но авторитетная
// проверка выполняется повторно в момент оплаты.
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

// Execute выполняет use case создания бронирования.
// Проверка доступности и запись черновика идут в сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, stay=%d, transport=%d, activities=%d, range=[%s, %s), people=%d",
		req.UserID, req.StayID, req.TransportationID, len(req.ActivityIDs),
		req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat), req.NumberOfPeople)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	transfers := make([]domain.TransferSelection, 0, len(req.Transfers))
	for _, t := range req.Transfers {
		transfers = append(transfers, domain.TransferSelection{VehicleID: t.VehicleID, Count: t.Count})
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Загружаем состав маршрута из каталога
		it, err := uc.itinerary.Load(txCtx, itinerarySvc.Selection{
			StayID:           ptr.Ptr(req.StayID),
			TransportationID: ptr.Ptr(req.TransportationID),
			ActivityIDs:      req.ActivityIDs,
			Transfers:        transfers,
		})
		if err != nil {
			return uc.mapItineraryError("CreateBooking", err)
		}

		// 3. Размер группы против вместимости номера
		if err := validateOccupancy(it.Stay, req.NumberOfPeople); err != nil {
			uc.logger.Warn("CreateBooking: occupancy check failed: %v", err)
			return err
		}

		// 4. Доступность каждого ресурса маршрута
		err = uc.itinerary.CheckAvailability(txCtx, it, itinerarySvc.CheckParams{
			RangeStart:     req.CheckInDate,
			RangeEnd:       req.CheckOutDate,
			NumberOfPeople: req.NumberOfPeople,
		})
		if err != nil {
			return uc.mapItineraryError("CreateBooking", err)
		}

		// 5. Снапшот цены
		pricing, err := uc.itinerary.Price(it, req.NumberOfPeople, req.NumberOfDays, false)
		if err != nil {
			uc.logger.Warn("CreateBooking: pricing failed: %v", err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		// 6. Сохраняем черновик
		booking := &domain.Booking{
			UserID:           req.UserID,
			StayID:           req.StayID,
			TransportationID: req.TransportationID,
			ActivityIDs:      req.ActivityIDs,
			Transfers:        transfers,
			CheckInDate:      req.CheckInDate,
			CheckOutDate:     req.CheckOutDate,
			NumberOfPeople:   req.NumberOfPeople,
			NumberOfDays:     req.NumberOfDays,
			Status:           domain.StatusDraft,
			PaymentStatus:    domain.PaymentUnpaid,
			Pricing:          pricing,
			SpecialRequests:  req.SpecialRequests,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created draft booking id=%d, grand_total=%d",
		result.ID, result.Pricing.GrandTotal)

	return toResponse(result), nil
}

// mapItineraryError конвертирует ошибки сервиса маршрутов в ошибки usecase
func (uc *UseCase) mapItineraryError(op string, err error) error {
	switch {
	case errors.Is(err, itinerarySvc.ErrResourceNotFound):
		uc.logger.Warn("%s: %v", op, err)
		return fmt.Errorf("%w: %v", ErrResourceNotFound, err)
	case errors.Is(err, itinerarySvc.ErrResourceInactive):
		uc.logger.Warn("%s: %v", op, err)
		return fmt.Errorf("%w: %v", ErrResourceInactive, err)
	case errors.Is(err, itinerarySvc.ErrCapacityExceeded):
		uc.logger.Warn("%s: %v", op, err)
		return fmt.Errorf("%w: %v", ErrCapacityExceeded, err)
	default:
		uc.logger.Error("%s: itinerary service error: %v", op, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
