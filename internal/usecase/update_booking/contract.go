package update_booking

import (
	"context"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	"github.com/m04kA/TRV-BookingEngine/internal/service/itinerary"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
}

// ItineraryService интерфейс сборки маршрута: загрузка ресурсов,
// проверка доступности и расчет цены
type ItineraryService interface {
	Load(ctx context.Context, sel itinerary.Selection) (*itinerary.Itinerary, error)
	CheckAvailability(ctx context.Context, it *itinerary.Itinerary, params itinerary.CheckParams) error
	Price(it *itinerary.Itinerary, numberOfPeople, numberOfDays int, partial bool) (domain.PricingBreakdown, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
