package pay_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	bookingRepo "github.com/m04kA/TRV-BookingEngine/internal/infra/storage/booking"
	itinerarySvc "github.com/m04kA/TRV-BookingEngine/internal/service/itinerary"
	"github.com/m04kA/TRV-BookingEngine/pkg/ptr"
)

// UseCase use case оплаты черновика бронирования.
//
// Это единственный момент, когда бронирование начинает занимать инвентарь,
// поэтому проверка доступности здесь авторитетная: сериализуемая транзакция,
// блокировка конкурирующих строк и пересчет цены против снапшота черновика.
// Любой отказ оставляет бронирование в draft/unpaid.
type UseCase struct {
	bookingRepo BookingRepository
	itinerary   ItineraryService
	gateway     PaymentGateway
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	itinerary ItineraryService,
	gateway PaymentGateway,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		itinerary:   itinerary,
		gateway:     gateway,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case оплаты бронирования.
// Подпись платежа проверяется до транзакции: поход в шлюз по HTTP
// внутри serializable-транзакции держал бы блокировки на время сети.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PayBooking: booking=%d, user=%d, payment_id=%s", req.BookingID, req.UserID, req.PaymentID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PayBooking: validation failed: %v", err)
		return nil, err
	}

	payment, err := uc.gateway.VerifyPayment(ctx, req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		uc.logger.Warn("PayBooking: payment verification failed for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentVerificationFailed, err)
	}

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("PayBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("PayBooking: repository error for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.UserID != req.UserID {
			uc.logger.Warn("PayBooking: access denied for user=%d to booking id=%d", req.UserID, req.BookingID)
			return ErrAccessDenied
		}

		if !booking.CanTransitionTo(domain.StatusBooked) {
			uc.logger.Warn("PayBooking: booking id=%d is not payable, status=%s", req.BookingID, booking.Status)
			return fmt.Errorf("%w: status=%s", ErrInvalidTransition, booking.Status)
		}

		// Сумма платежа в пайсах, снапшот цены в рупиях
		if payment.Amount != booking.Pricing.GrandTotal*100 {
			uc.logger.Warn("PayBooking: amount mismatch for booking id=%d: paid=%d, expected=%d",
				req.BookingID, payment.Amount, booking.Pricing.GrandTotal*100)
			return fmt.Errorf("%w: amount mismatch", ErrPaymentVerificationFailed)
		}

		it, err := uc.itinerary.Load(txCtx, itinerarySvc.Selection{
			StayID:           ptr.Ptr(booking.StayID),
			TransportationID: ptr.Ptr(booking.TransportationID),
			ActivityIDs:      booking.ActivityIDs,
			Transfers:        booking.Transfers,
		})
		if err != nil {
			return uc.mapItineraryError(err)
		}

		// Авторитетная перепроверка: черновик мог устареть, пока пользователь
		// доходил до оплаты. Собственный id исключается из подсчёта занятости.
		err = uc.itinerary.CheckAvailability(txCtx, it, itinerarySvc.CheckParams{
			RangeStart:       booking.CheckInDate,
			RangeEnd:         booking.CheckOutDate,
			NumberOfPeople:   booking.NumberOfPeople,
			ExcludeBookingID: ptr.Ptr(booking.ID),
		})
		if err != nil {
			return uc.mapItineraryError(err)
		}

		// Снапшот цены должен совпадать с актуальным каталогом.
		// Расхождение - повод вернуть пользователя к черновику, а не
		// молча списать другую сумму.
		current, err := uc.itinerary.Price(it, booking.NumberOfPeople, booking.NumberOfDays, false)
		if err != nil {
			uc.logger.Error("PayBooking: pricing failed for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: pricing failed: %v", ErrInternal, err)
		}
		if current != booking.Pricing {
			uc.logger.Warn("PayBooking: stale quote for booking id=%d: snapshot=%d, current=%d",
				req.BookingID, booking.Pricing.GrandTotal, current.GrandTotal)
			return fmt.Errorf("%w: snapshot grand_total=%d, current=%d",
				ErrStaleQuote, booking.Pricing.GrandTotal, current.GrandTotal)
		}

		if err := uc.bookingRepo.MarkPaid(txCtx, booking.ID, payment.ID); err != nil {
			uc.logger.Error("PayBooking: failed to mark booking id=%d paid: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to mark booking paid: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusBooked
		booking.PaymentStatus = domain.PaymentPaid
		booking.PaymentRef = ptr.Ptr(payment.ID)

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("PayBooking: booking id=%d is now booked, payment_ref=%s", result.ID, payment.ID)

	return toResponse(result), nil
}

// mapItineraryError конвертирует ошибки сервиса маршрутов в ошибки usecase
func (uc *UseCase) mapItineraryError(err error) error {
	switch {
	case errors.Is(err, itinerarySvc.ErrResourceNotFound):
		uc.logger.Warn("PayBooking: %v", err)
		return fmt.Errorf("%w: %v", ErrResourceNotFound, err)
	case errors.Is(err, itinerarySvc.ErrResourceInactive):
		uc.logger.Warn("PayBooking: %v", err)
		return fmt.Errorf("%w: %v", ErrResourceInactive, err)
	case errors.Is(err, itinerarySvc.ErrCapacityExceeded):
		uc.logger.Warn("PayBooking: %v", err)
		return fmt.Errorf("%w: %v", ErrCapacityExceeded, err)
	default:
		uc.logger.Error("PayBooking: itinerary service error: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.OrderID == "" {
		return fmt.Errorf("%w: orderID is required", ErrInvalidInput)
	}
	if req.PaymentID == "" {
		return fmt.Errorf("%w: paymentID is required", ErrInvalidInput)
	}
	if req.Signature == "" {
		return fmt.Errorf("%w: signature is required", ErrInvalidInput)
	}
	return nil
}
