package pay_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TRV-BookingEngine/internal/api/handlers"
	"github.com/m04kA/TRV-BookingEngine/internal/api/middleware"
	payBooking "github.com/m04kA/TRV-BookingEngine/internal/usecase/pay_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgNotPayable         = "бронирование нельзя оплатить в текущем статусе"
	msgCapacityExceeded   = "мест на выбранные даты уже нет, бронирование осталось черновиком"
	msgStaleQuote         = "цена изменилась, обновите черновик и повторите оплату"
	msgResourceNotFound   = "ресурс маршрута не найден"
	msgResourceInactive   = "ресурс маршрута недоступен для бронирования"
	msgPaymentFailed      = "платеж не подтвержден платежным шлюзом"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase PayBookingUseCase
	logger  Logger
}

func NewHandler(useCase PayBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/pay
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/pay - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req PayBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/pay - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.UserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID, userID))
	if err != nil {
		switch {
		case errors.Is(err, payBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/pay - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, payBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/pay - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, payBooking.ErrInvalidTransition):
			h.logger.Warn("POST /bookings/{id}/pay - Not payable: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotPayable)

		case errors.Is(err, payBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings/{id}/pay - Capacity exceeded: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, payBooking.ErrStaleQuote):
			h.logger.Warn("POST /bookings/{id}/pay - Stale quote: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgStaleQuote)

		case errors.Is(err, payBooking.ErrResourceNotFound):
			h.logger.Warn("POST /bookings/{id}/pay - Resource not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, payBooking.ErrResourceInactive):
			h.logger.Warn("POST /bookings/{id}/pay - Resource inactive: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgResourceInactive)

		case errors.Is(err, payBooking.ErrPaymentVerificationFailed):
			h.logger.Warn("POST /bookings/{id}/pay - Payment verification failed: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgPaymentFailed)

		case errors.Is(err, payBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/pay - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/{id}/pay - Failed to pay booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/pay - Booking paid: booking_id=%d, user_id=%d", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
