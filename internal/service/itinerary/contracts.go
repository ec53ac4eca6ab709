package itinerary

import (
	"context"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	"github.com/m04kA/TRV-BookingEngine/internal/service/availability"
	"github.com/m04kA/TRV-BookingEngine/internal/service/pricing"
)

// ResourceRepository интерфейс read-only каталога ресурсов
type ResourceRepository interface {
	GetByIDAndType(ctx context.Context, id int64, resourceType domain.ResourceType) (*domain.Resource, error)
}

// AvailabilityChecker интерфейс проверки доступности одного ресурса
type AvailabilityChecker interface {
	Check(ctx context.Context, req availability.CheckRequest) (*availability.Result, error)
}

// PriceCalculator интерфейс калькулятора цены маршрута
type PriceCalculator interface {
	Calculate(in pricing.Input) (domain.PricingBreakdown, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
