package itinerary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	resourceRepo "github.com/m04kA/TRV-BookingEngine/internal/infra/storage/resource"
	"github.com/m04kA/TRV-BookingEngine/internal/service/availability"
	"github.com/m04kA/TRV-BookingEngine/internal/service/pricing"
)

// Selection ссылки на ресурсы составного маршрута.
// Для полного маршрута обязательны жилье и транспорт; частичный состав
// используется предпросмотрами цены и доступности.
type Selection struct {
	StayID           *int64
	TransportationID *int64
	ActivityIDs      []int64
	Transfers        []domain.TransferSelection
}

// Itinerary загруженный состав маршрута
type Itinerary struct {
	Stay           *domain.Resource
	Transportation *domain.Resource
	Activities     []*domain.Resource
	Transfers      []pricing.TransferItem
}

// CheckParams параметры проверки доступности маршрута
type CheckParams struct {
	RangeStart     time.Time
	RangeEnd       time.Time
	NumberOfPeople int

	// ExcludeBookingID исключает собственное бронирование из подсчёта занятости
	ExcludeBookingID *int64
}

// Service собирает составной маршрут: загружает ресурсы каталога,
// проверяет доступность каждого независимо и считает цену.
// Маршрут доступен целиком, только если доступен каждый его ресурс -
// общего пула вместимости и пакетных скидок не существует.
type Service struct {
	resourceRepo ResourceRepository
	checker      AvailabilityChecker
	calculator   PriceCalculator
	logger       Logger
}

// NewService создает новый экземпляр сервиса маршрутов
func NewService(
	resourceRepo ResourceRepository,
	checker AvailabilityChecker,
	calculator PriceCalculator,
	logger Logger,
) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		checker:      checker,
		calculator:   calculator,
		logger:       logger,
	}
}

// Load загружает все ресурсы выбранного состава из каталога
func (s *Service) Load(ctx context.Context, sel Selection) (*Itinerary, error) {
	it := &Itinerary{}

	if sel.StayID != nil {
		stay, err := s.getResource(ctx, *sel.StayID, domain.ResourceStay)
		if err != nil {
			return nil, err
		}
		it.Stay = stay
	}

	if sel.TransportationID != nil {
		transport, err := s.getResource(ctx, *sel.TransportationID, domain.ResourceTransportation)
		if err != nil {
			return nil, err
		}
		it.Transportation = transport
	}

	for _, activityID := range sel.ActivityIDs {
		activity, err := s.getResource(ctx, activityID, domain.ResourceSightseeing)
		if err != nil {
			return nil, err
		}
		it.Activities = append(it.Activities, activity)
	}

	for _, transfer := range sel.Transfers {
		vehicle, err := s.getResource(ctx, transfer.VehicleID, domain.ResourceTransferVehicle)
		if err != nil {
			return nil, err
		}
		it.Transfers = append(it.Transfers, pricing.TransferItem{Vehicle: vehicle, Count: transfer.Count})
	}

	return it, nil
}

// CheckAvailability проверяет доступность каждого ресурса маршрута независимо.
// Жилье и транспорт проверяются на всем диапазоне [RangeStart, RangeEnd);
// экскурсии и трансферы занимают дневной пул только дня заезда.
// Первый недоступный ресурс прерывает проверку.
func (s *Service) CheckAvailability(ctx context.Context, it *Itinerary, params CheckParams) error {
	type resourceCheck struct {
		resource *domain.Resource
		start    time.Time
		end      time.Time
		quantity int
	}

	arrivalEnd := params.RangeStart.AddDate(0, 0, 1)
	checks := make([]resourceCheck, 0, 2+len(it.Activities)+len(it.Transfers))

	if it.Stay != nil {
		checks = append(checks, resourceCheck{it.Stay, params.RangeStart, params.RangeEnd, 1})
	}
	if it.Transportation != nil {
		checks = append(checks, resourceCheck{it.Transportation, params.RangeStart, params.RangeEnd, 1})
	}
	for _, activity := range it.Activities {
		checks = append(checks, resourceCheck{activity, params.RangeStart, arrivalEnd, params.NumberOfPeople})
	}
	for _, transfer := range it.Transfers {
		checks = append(checks, resourceCheck{transfer.Vehicle, params.RangeStart, arrivalEnd, transfer.Count})
	}

	for _, check := range checks {
		result, err := s.checker.Check(ctx, availability.CheckRequest{
			Resource:         check.resource,
			RangeStart:       check.start,
			RangeEnd:         check.end,
			Quantity:         check.quantity,
			ExcludeBookingID: params.ExcludeBookingID,
		})
		if err != nil {
			s.logger.Error("CheckAvailability: check failed for resource id=%d: %v", check.resource.ID, err)
			return fmt.Errorf("%w: CheckAvailability - resource id=%d: %v", ErrInternal, check.resource.ID, err)
		}

		if !result.Available {
			return s.unavailableError(check.resource, result)
		}
	}

	return nil
}

// Price считает цену маршрута. partial разрешает неполный состав
// (живой предпросмотр в UI)
func (s *Service) Price(it *Itinerary, numberOfPeople, numberOfDays int, partial bool) (domain.PricingBreakdown, error) {
	return s.calculator.Calculate(pricing.Input{
		Selection: pricing.Selection{
			Stay:           it.Stay,
			Transportation: it.Transportation,
			Activities:     it.Activities,
			Transfers:      it.Transfers,
		},
		NumberOfPeople: numberOfPeople,
		NumberOfDays:   numberOfDays,
		AllowPartial:   partial,
	})
}

// getResource загружает ресурс, мапя "не найдено" на сервисную ошибку
func (s *Service) getResource(ctx context.Context, id int64, resourceType domain.ResourceType) (*domain.Resource, error) {
	res, err := s.resourceRepo.GetByIDAndType(ctx, id, resourceType)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("Load: resource id=%d type=%s not found", id, resourceType)
			return nil, fmt.Errorf("%w: id=%d type=%s", ErrResourceNotFound, id, resourceType)
		}
		s.logger.Error("Load: failed to get resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Load - failed to get resource id=%d: %v", ErrInternal, id, err)
	}
	return res, nil
}

// unavailableError конвертирует причину отказа в сервисную ошибку
func (s *Service) unavailableError(resource *domain.Resource, result *availability.Result) error {
	switch result.Reason {
	case availability.ReasonResourceInactive:
		return fmt.Errorf("%w: id=%d type=%s", ErrResourceInactive, resource.ID, resource.Type)
	case availability.ReasonDateBlocked:
		return fmt.Errorf("%w: resource id=%d is blocked on %s", ErrCapacityExceeded, resource.ID, result.Day)
	default:
		return fmt.Errorf("%w: resource id=%d is full on %s", ErrCapacityExceeded, resource.ID, result.Day)
	}
}
