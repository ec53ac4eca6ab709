package pricing

import (
	"fmt"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
)

// TransferItem выбранная машина трансфера с количеством
type TransferItem struct {
	Vehicle *domain.Resource
	Count   int
}

// Selection состав маршрута для расчета цены
type Selection struct {
	Stay           *domain.Resource
	Transportation *domain.Resource
	Activities     []*domain.Resource
	Transfers      []TransferItem
}

// Input входные данные расчета цены
type Input struct {
	Selection      Selection
	NumberOfPeople int
	NumberOfDays   int

	// AllowPartial разрешает расчет по неполному составу маршрута
	// (живой предпросмотр цены в UI при сборке маршрута)
	AllowPartial bool
}

// Calculator чистый калькулятор цены маршрута.
// Не имеет состояния и побочных эффектов: одинаковый вход всегда дает
// одинаковый результат. Все суммы в целых единицах валюты, округление
// происходит только на презентационном слое.
type Calculator struct{}

// NewCalculator создает новый экземпляр калькулятора
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate вычисляет декомпозированную цену маршрута:
//
//	stayTotal            = pricePerNight × numberOfDays
//	transportationTotal  = pricePerDay × numberOfDays
//	sightseeingTotal     = Σ pricePerPerson × numberOfPeople
//	airportTransferTotal = Σ vehiclePrice × vehicleCount (flat, не за день)
//	grandTotal           = сумма всех компонент
//
// Размер группы не умножает стоимость жилья и транспорта: вместимость
// номера ограничивается maxOccupancy как предусловие, а не ценовой фактор.
func (c *Calculator) Calculate(in Input) (domain.PricingBreakdown, error) {
	if err := validateInput(in); err != nil {
		return domain.PricingBreakdown{}, err
	}

	var breakdown domain.PricingBreakdown

	if in.Selection.Stay != nil {
		breakdown.StayTotal = in.Selection.Stay.PricePerNight * int64(in.NumberOfDays)
	}

	if in.Selection.Transportation != nil {
		breakdown.TransportationTotal = in.Selection.Transportation.PricePerDay * int64(in.NumberOfDays)
	}

	for _, activity := range in.Selection.Activities {
		breakdown.SightseeingTotal += activity.PricePerPerson * int64(in.NumberOfPeople)
	}

	for _, transfer := range in.Selection.Transfers {
		breakdown.AirportTransferTotal += transfer.Vehicle.Price * int64(transfer.Count)
	}

	breakdown.GrandTotal = breakdown.StayTotal +
		breakdown.TransportationTotal +
		breakdown.SightseeingTotal +
		breakdown.AirportTransferTotal

	return breakdown, nil
}

// validateInput валидирует входные данные расчета
func validateInput(in Input) error {
	if in.NumberOfPeople < domain.MinNumberOfPeople {
		return fmt.Errorf("%w: numberOfPeople must be at least %d", ErrInvalidInput, domain.MinNumberOfPeople)
	}
	if in.NumberOfDays < 1 {
		return fmt.Errorf("%w: numberOfDays must be at least 1", ErrInvalidInput)
	}

	for _, transfer := range in.Selection.Transfers {
		if transfer.Count < 1 {
			return fmt.Errorf("%w: transfer vehicle count must be at least 1", ErrInvalidInput)
		}
	}

	// Полный расчет требует жилье и транспорт; частичный - для предпросмотра
	if !in.AllowPartial {
		if in.Selection.Stay == nil {
			return ErrMissingStay
		}
		if in.Selection.Transportation == nil {
			return ErrMissingTransportation
		}
	}

	return nil
}
