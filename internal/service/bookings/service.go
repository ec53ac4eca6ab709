package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	bookingRepo "github.com/m04kA/TRV-BookingEngine/internal/infra/storage/booking"
	"github.com/m04kA/TRV-BookingEngine/internal/service/bookings/models"
)

// Service управляет жизненным циклом бронирования:
// draft → booked → confirmed → completed, с cancelled из любого
// нетерминального состояния. Единственный компонент, которому разрешено
// менять персистентный статус бронирования.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь видит только свои бронирования, администратор - любые.
func (s *Service) GetByID(ctx context.Context, id int64, actor models.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, actor.UserID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if err := s.checkAccess(booking, actor); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	if req.UserID != req.Actor.UserID && !req.Actor.IsAdmin {
		s.logger.Warn("GetUserBookings: access denied for user=%d to history of user=%d", req.Actor.UserID, req.UserID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Допустимо из draft, booked и confirmed; отмена освобождает занятый
// инвентарь, поскольку бронирование покидает учитываемые статусы.
// Возврат средств - отдельный платежный переход (Refund).
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.Actor.UserID)

	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return err
	}

	if err := s.checkAccess(booking, req.Actor); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.Actor.UserID, bookingID)
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrInvalidTransition
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrStaleStatus):
			s.logger.Warn("Cancel: booking id=%d left a cancellable status concurrently", bookingID)
			return ErrInvalidTransition
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus выполняет административный переход статуса.
// Допустимы только booked → confirmed и confirmed → completed;
// остальное - нарушение машины состояний.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.Actor.UserID)

	if !req.Actor.IsAdmin {
		s.logger.Warn("UpdateStatus: access denied for user=%d", req.Actor.UserID)
		return ErrAccessDenied
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Через этот переход доступны только административные подтверждение
	// и закрытие; оплата и отмена идут собственными операциями
	if newStatus != domain.StatusConfirmed && newStatus != domain.StatusCompleted {
		s.logger.Warn("UpdateStatus: status=%s is not an administrative transition", newStatus)
		return ErrInvalidTransition
	}

	booking, err := s.getBooking(ctx, "UpdateStatus", bookingID)
	if err != nil {
		return err
	}

	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: illegal transition %s -> %s for booking id=%d",
			booking.Status, newStatus, bookingID)
		return ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status, newStatus); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrStaleStatus):
			s.logger.Warn("UpdateStatus: booking id=%d left status=%s concurrently", bookingID, booking.Status)
			return ErrInvalidTransition
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Refund переводит платежный статус paid → refunded.
// Разрешено только для отмененного бронирования; сам вызов платежного
// шлюза остается на вызывающей стороне. Возврат не переоткрывает
// бронирование - refunded терминален.
func (s *Service) Refund(ctx context.Context, bookingID int64, actor models.Actor) error {
	s.logger.Info("Refund: refunding booking id=%d by user=%d", bookingID, actor.UserID)

	if !actor.IsAdmin {
		s.logger.Warn("Refund: access denied for user=%d", actor.UserID)
		return ErrAccessDenied
	}

	booking, err := s.getBooking(ctx, "Refund", bookingID)
	if err != nil {
		return err
	}

	if !booking.CanBeRefunded() {
		s.logger.Warn("Refund: booking id=%d cannot be refunded, status=%s payment=%s",
			bookingID, booking.Status, booking.PaymentStatus)
		return ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdatePaymentStatus(ctx, bookingID, domain.PaymentRefunded); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Refund: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Refund - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Refund: successfully refunded booking id=%d", bookingID)
	return nil
}

// Delete физически удаляет бронирование.
// Разрешено только для draft (очистка брошенных черновиков);
// удаление любого другого статуса - нарушение машины состояний.
func (s *Service) Delete(ctx context.Context, bookingID int64, actor models.Actor) error {
	s.logger.Info("Delete: deleting booking id=%d by user=%d", bookingID, actor.UserID)

	booking, err := s.getBooking(ctx, "Delete", bookingID)
	if err != nil {
		return err
	}

	if err := s.checkAccess(booking, actor); err != nil {
		s.logger.Warn("Delete: access denied for user=%d to booking id=%d", actor.UserID, bookingID)
		return err
	}

	if !booking.IsDraft() {
		s.logger.Warn("Delete: booking id=%d is not a draft, status=%s", bookingID, booking.Status)
		return ErrInvalidTransition
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted draft booking id=%d", bookingID)
	return nil
}

// Вспомогательные методы

// getBooking получает бронирование, мапя "не найдено" на сервисную ошибку
func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkAccess проверяет, что инициатор - владелец бронирования или администратор
func (s *Service) checkAccess(booking *domain.Booking, actor models.Actor) error {
	if booking.UserID == actor.UserID || actor.IsAdmin {
		return nil
	}
	return ErrAccessDenied
}
