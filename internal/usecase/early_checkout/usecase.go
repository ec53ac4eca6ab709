package early_checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	bookingRepo "github.com/m04kA/TRV-BookingEngine/internal/infra/storage/booking"
)

// UseCase use case раннего выезда.
//
// Гость освобождает жилье раньше срока: дата выезда сдвигается назад,
// дни [новый выезд, старый выезд) немедленно возвращаются в инвентарь,
// бронирование принудительно завершается. Цена не пересчитывается -
// перерасчет и возвраты средств решаются вне инвентарного контура.
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case раннего выезда.
// Сокращение диапазона идет в сериализуемой транзакции: конкурирующая
// оплата не должна увидеть наполовину освобожденные дни.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EarlyCheckout: booking=%d, user=%d, new_check_out=%s",
		req.BookingID, req.UserID, req.NewCheckOutDate.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EarlyCheckout: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("EarlyCheckout: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("EarlyCheckout: repository error for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.UserID != req.UserID {
			uc.logger.Warn("EarlyCheckout: access denied for user=%d to booking id=%d", req.UserID, req.BookingID)
			return ErrAccessDenied
		}

		if !booking.CanBeShortened() {
			uc.logger.Warn("EarlyCheckout: booking id=%d not eligible, status=%s", req.BookingID, booking.Status)
			return fmt.Errorf("%w: status=%s", ErrInvalidTransition, booking.Status)
		}

		// Новая дата выезда строго внутри исходного диапазона:
		// раньше заезда - бессмыслица, равна старому выезду - не сокращение
		if !req.NewCheckOutDate.After(booking.CheckInDate) || !req.NewCheckOutDate.Before(booking.CheckOutDate) {
			uc.logger.Warn("EarlyCheckout: new check-out %s is outside (%s, %s) for booking id=%d",
				req.NewCheckOutDate.Format(domain.DateFormat),
				booking.CheckInDate.Format(domain.DateFormat),
				booking.CheckOutDate.Format(domain.DateFormat), req.BookingID)
			return fmt.Errorf("%w: must be after check-in and before original check-out", ErrInvalidDateRange)
		}

		booking.CheckOutDate = req.NewCheckOutDate
		booking.NumberOfDays = booking.Nights()
		booking.Status = domain.StatusCompleted

		if err := uc.bookingRepo.Shorten(txCtx, booking.ID, booking); err != nil {
			uc.logger.Error("EarlyCheckout: failed to shorten booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to shorten booking: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("EarlyCheckout: booking id=%d completed, check_out=%s, number_of_days=%d",
		result.ID, result.CheckOutDate.Format(domain.DateFormat), result.NumberOfDays)

	return toResponse(result), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.NewCheckOutDate.IsZero() {
		return fmt.Errorf("%w: newCheckOutDate is required", ErrInvalidInput)
	}
	return nil
}
