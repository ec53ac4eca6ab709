package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TRV-BookingEngine/internal/api/handlers"
	"github.com/m04kA/TRV-BookingEngine/internal/api/middleware"
	updateBooking "github.com/m04kA/TRV-BookingEngine/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange   = "некорректный диапазон дат"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgNotDraft           = "редактировать можно только черновик"
	msgResourceNotFound   = "ресурс маршрута не найден"
	msgResourceInactive   = "ресурс маршрута недоступен для бронирования"
	msgCapacityExceeded   = "нет свободных мест на выбранные даты"
	msgOccupancyExceeded  = "размер группы превышает вместимость жилья"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.UserID(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(bookingID, userID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateBooking.ErrNotDraft):
			h.logger.Warn("PUT /bookings/{id} - Not a draft: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotDraft)

		case errors.Is(err, updateBooking.ErrResourceNotFound):
			h.logger.Warn("PUT /bookings/{id} - Resource not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, updateBooking.ErrResourceInactive):
			h.logger.Warn("PUT /bookings/{id} - Resource inactive: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgResourceInactive)

		case errors.Is(err, updateBooking.ErrCapacityExceeded):
			h.logger.Warn("PUT /bookings/{id} - Capacity exceeded: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, updateBooking.ErrOccupancyExceeded):
			h.logger.Warn("PUT /bookings/{id} - Occupancy exceeded: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgOccupancyExceeded)

		case errors.Is(err, updateBooking.ErrInvalidDateRange):
			h.logger.Warn("PUT /bookings/{id} - Invalid date range: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Draft updated: booking_id=%d, user_id=%d, grand_total=%d",
		bookingID, userID, result.Pricing.GrandTotal)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
