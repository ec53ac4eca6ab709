package calculate_price

import (
	"context"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	"github.com/m04kA/TRV-BookingEngine/internal/service/itinerary"
)

// ItineraryService интерфейс сборки маршрута: загрузка ресурсов и расчет цены
type ItineraryService interface {
	Load(ctx context.Context, sel itinerary.Selection) (*itinerary.Itinerary, error)
	Price(it *itinerary.Itinerary, numberOfPeople, numberOfDays int, partial bool) (domain.PricingBreakdown, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
