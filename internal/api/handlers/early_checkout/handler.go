package early_checkout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TRV-BookingEngine/internal/api/handlers"
	"github.com/m04kA/TRV-BookingEngine/internal/api/middleware"
	earlyCheckout "github.com/m04kA/TRV-BookingEngine/internal/usecase/early_checkout"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgNotEligible        = "ранний выезд недоступен в текущем статусе"
	msgInvalidCheckOut    = "новая дата выезда должна быть позже заезда и раньше исходного выезда"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase EarlyCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase EarlyCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}/early-checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/early-checkout - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req EarlyCheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/early-checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.UserID(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(bookingID, userID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/early-checkout - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, earlyCheckout.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/early-checkout - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, earlyCheckout.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/{id}/early-checkout - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, earlyCheckout.ErrInvalidTransition):
			h.logger.Warn("PUT /bookings/{id}/early-checkout - Not eligible: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotEligible)

		case errors.Is(err, earlyCheckout.ErrInvalidDateRange):
			h.logger.Warn("PUT /bookings/{id}/early-checkout - Invalid new check-out: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidCheckOut)

		case errors.Is(err, earlyCheckout.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id}/early-checkout - Invalid input: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /bookings/{id}/early-checkout - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /bookings/{id}/early-checkout - Booking shortened: booking_id=%d, check_out=%s",
		bookingID, response.CheckOutDate)
	handlers.RespondJSON(w, http.StatusOK, response)
}
