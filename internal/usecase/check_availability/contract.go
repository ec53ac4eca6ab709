package check_availability

import (
	"context"

	"github.com/m04kA/TRV-BookingEngine/internal/service/itinerary"
)

// ItineraryService интерфейс сборки маршрута: загрузка ресурсов
// и проверка доступности
type ItineraryService interface {
	Load(ctx context.Context, sel itinerary.Selection) (*itinerary.Itinerary, error)
	CheckAvailability(ctx context.Context, it *itinerary.Itinerary, params itinerary.CheckParams) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
