package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	"github.com/m04kA/TRV-BookingEngine/pkg/types"
)

// Reason причина отказа в доступности
type Reason string

const (
	// ReasonResourceInactive ресурс отключен администратором каталога
	ReasonResourceInactive Reason = "resource_inactive"

	// ReasonDateBlocked день попал в админский блок-лист ресурса
	ReasonDateBlocked Reason = "date_blocked"

	// ReasonCapacityExceeded занятость плюс запрошенное количество превышает вместимость
	ReasonCapacityExceeded Reason = "capacity_exceeded"
)

// CheckRequest запрос проверки доступности одного ресурса
type CheckRequest struct {
	Resource *domain.Resource

	// Полуоткрытый диапазон [RangeStart, RangeEnd). Для sightseeing и
	// transfer_vehicle диапазон вырождается в один день.
	RangeStart time.Time
	RangeEnd   time.Time

	// Quantity запрошенное количество единиц: 1 для stay/transportation,
	// размер группы для sightseeing, число машин для transfer_vehicle
	Quantity int

	// ExcludeBookingID исключает бронирование из подсчёта занятости
	// (перепроверка существующего бронирования при редактировании/оплате)
	ExcludeBookingID *int64
}

// Result результат проверки доступности
type Result struct {
	Available bool
	Reason    Reason
	// Day первый день диапазона, на котором проверка не прошла
	Day types.DateString
}

// Checker проверяет, может ли ресурс принять бронирование на диапазон дат
// без превышения вместимости. Занятость всегда вычисляется вживую из текущих
// диапазонов бронирований в учитываемых статусах - отдельного реестра
// занятости не существует, поэтому сокращение или отмена бронирования
// освобождает дни без какого-либо шага "release".
type Checker struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewChecker создает новый экземпляр проверки доступности
func NewChecker(bookingRepo BookingRepository, logger Logger) *Checker {
	return &Checker{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Check проверяет доступность ресурса на диапазоне дат.
// Отказ по любому дню диапазона означает отказ всему диапазону -
// частичная доступность не предлагается.
//
// Вызов внутри транзакции (txmanager.DoSerializable) блокирует найденные
// пересекающиеся бронирования FOR UPDATE, что сериализует пары
// "проверка + запись" по ресурсу. Вызов вне транзакции - консультативный
// предпросмотр, его результату нельзя доверять при последующей оплате.
func (c *Checker) Check(ctx context.Context, req CheckRequest) (*Result, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	resource := req.Resource

	if !resource.IsActive {
		c.logger.Warn("Check: resource id=%d type=%s is inactive", resource.ID, resource.Type)
		return &Result{Available: false, Reason: ReasonResourceInactive}, nil
	}

	// Сначала блок-лист: он отклоняет день независимо от занятости
	for day := req.RangeStart; day.Before(req.RangeEnd); day = day.AddDate(0, 0, 1) {
		d := types.NewDateString(day)
		if resource.IsBlockedOn(d) {
			c.logger.Info("Check: resource id=%d blocked on %s", resource.ID, d)
			return &Result{Available: false, Reason: ReasonDateBlocked, Day: d}, nil
		}
	}

	overlapping, err := c.bookingRepo.GetOverlapping(ctx, domain.OverlapFilter{
		ResourceID:       resource.ID,
		ResourceType:     resource.Type,
		RangeStart:       req.RangeStart,
		RangeEnd:         req.RangeEnd,
		ExcludeBookingID: req.ExcludeBookingID,
	})
	if err != nil {
		c.logger.Error("Check: failed to get overlapping bookings for resource id=%d: %v", resource.ID, err)
		return nil, fmt.Errorf("%w: Check - failed to get overlapping bookings: %v", ErrInternal, err)
	}

	for day := req.RangeStart; day.Before(req.RangeEnd); day = day.AddDate(0, 0, 1) {
		used := usageOnDay(resource, day, overlapping)
		if used+req.Quantity > resource.Capacity {
			d := types.NewDateString(day)
			c.logger.Info("Check: resource id=%d full on %s: %d/%d used, %d requested",
				resource.ID, d, used, resource.Capacity, req.Quantity)
			return &Result{Available: false, Reason: ReasonCapacityExceeded, Day: d}, nil
		}
	}

	return &Result{Available: true}, nil
}

// usageOnDay суммирует занятые единицы ресурса на календарный день
// по всем пересекающимся бронированиям в учитываемых статусах.
//
// Для stay/transportation бронирование занимает 1 единицу на каждый день
// своего диапазона [check_in, check_out). Для sightseeing занятость равна
// размеру группы и относится только ко дню заезда; для transfer_vehicle -
// числу выбранных машин, также на день заезда.
func usageOnDay(resource *domain.Resource, day time.Time, bookings []*domain.Booking) int {
	used := 0

	for _, b := range bookings {
		if !b.CountsAgainstCapacity() {
			continue
		}

		switch resource.Type {
		case domain.ResourceStay, domain.ResourceTransportation:
			if b.CoversDay(day) {
				used++
			}
		case domain.ResourceSightseeing:
			if sameDay(b.CheckInDate, day) {
				used += b.NumberOfPeople
			}
		case domain.ResourceTransferVehicle:
			if sameDay(b.CheckInDate, day) {
				used += b.TransferCount(resource.ID)
			}
		}
	}

	return used
}

// validateRequest валидирует запрос проверки доступности
func validateRequest(req CheckRequest) error {
	if req.RangeStart.IsZero() || req.RangeEnd.IsZero() {
		return fmt.Errorf("%w: dates are required", ErrInvalidDateRange)
	}
	if !req.RangeEnd.After(req.RangeStart) {
		return fmt.Errorf("%w: range end must be after range start", ErrInvalidDateRange)
	}
	if req.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// sameDay проверяет, что две даты относятся к одному и тому же дню
func sameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
