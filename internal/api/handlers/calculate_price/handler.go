package calculate_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/TRV-BookingEngine/internal/api/handlers"
	calculatePrice "github.com/m04kA/TRV-BookingEngine/internal/usecase/calculate_price"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgResourceNotFound    = "ресурс маршрута не найден"
	msgIncompleteSelection = "для полной котировки требуются жилье и транспорт"
	msgInvalidInput        = "некорректные данные запроса"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/calculate-price
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CalculatePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calculate-price - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrResourceNotFound):
			h.logger.Warn("POST /calculate-price - Resource not found: %v", err)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, calculatePrice.ErrIncompleteSelection):
			h.logger.Warn("POST /calculate-price - Incomplete selection: %v", err)
			handlers.RespondBadRequest(w, msgIncompleteSelection)

		case errors.Is(err, calculatePrice.ErrInvalidInput):
			h.logger.Warn("POST /calculate-price - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /calculate-price - Failed to calculate price: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calculate-price - Calculated: grand_total=%d", result.Pricing.GrandTotal)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
