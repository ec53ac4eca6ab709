package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
)

func stay(pricePerNight int64) *domain.Resource {
	return &domain.Resource{ID: 1, Type: domain.ResourceStay, PricePerNight: pricePerNight}
}

func transport(pricePerDay int64) *domain.Resource {
	return &domain.Resource{ID: 2, Type: domain.ResourceTransportation, PricePerDay: pricePerDay}
}

func activity(id int64, pricePerPerson int64) *domain.Resource {
	return &domain.Resource{ID: id, Type: domain.ResourceSightseeing, PricePerPerson: pricePerPerson}
}

func vehicle(id int64, price int64) *domain.Resource {
	return &domain.Resource{ID: id, Type: domain.ResourceTransferVehicle, Price: price}
}

func TestCalculate_FullItinerary(t *testing.T) {
	calc := NewCalculator()

	// stay=1000/ночь, transport=500/день, 2 экскурсии по 300/чел, 2 человека, 3 дня
	breakdown, err := calc.Calculate(Input{
		Selection: Selection{
			Stay:           stay(1000),
			Transportation: transport(500),
			Activities:     []*domain.Resource{activity(10, 300), activity(11, 300)},
		},
		NumberOfPeople: 2,
		NumberOfDays:   3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3000), breakdown.StayTotal)
	assert.Equal(t, int64(1500), breakdown.TransportationTotal)
	assert.Equal(t, int64(1200), breakdown.SightseeingTotal)
	assert.Equal(t, int64(0), breakdown.AirportTransferTotal)
	assert.Equal(t, int64(5700), breakdown.GrandTotal)
}

func TestCalculate_TransfersAreFlatPriced(t *testing.T) {
	calc := NewCalculator()

	// Трансфер не умножается на дни: 2 машины по 800 = 1600 независимо от длины поездки
	breakdown, err := calc.Calculate(Input{
		Selection: Selection{
			Stay:           stay(1000),
			Transportation: transport(500),
			Transfers:      []TransferItem{{Vehicle: vehicle(20, 800), Count: 2}},
		},
		NumberOfPeople: 4,
		NumberOfDays:   7,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1600), breakdown.AirportTransferTotal)
	assert.Equal(t, int64(7000+3500+1600), breakdown.GrandTotal)
}

func TestCalculate_Deterministic(t *testing.T) {
	calc := NewCalculator()

	in := Input{
		Selection: Selection{
			Stay:           stay(1234),
			Transportation: transport(567),
			Activities:     []*domain.Resource{activity(10, 89)},
			Transfers:      []TransferItem{{Vehicle: vehicle(20, 450), Count: 3}},
		},
		NumberOfPeople: 5,
		NumberOfDays:   11,
	}

	first, err := calc.Calculate(in)
	require.NoError(t, err)
	second, err := calc.Calculate(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculate_PeopleDoNotScaleStayOrTransport(t *testing.T) {
	calc := NewCalculator()

	base := Input{
		Selection: Selection{
			Stay:           stay(1000),
			Transportation: transport(500),
			Activities:     []*domain.Resource{activity(10, 300)},
		},
		NumberOfPeople: 1,
		NumberOfDays:   3,
	}

	one, err := calc.Calculate(base)
	require.NoError(t, err)

	base.NumberOfPeople = 6
	six, err := calc.Calculate(base)
	require.NoError(t, err)

	assert.Equal(t, one.StayTotal, six.StayTotal)
	assert.Equal(t, one.TransportationTotal, six.TransportationTotal)
	assert.NotEqual(t, one.SightseeingTotal, six.SightseeingTotal)
}

func TestCalculate_FullQuoteRequiresStayAndTransportation(t *testing.T) {
	calc := NewCalculator()

	_, err := calc.Calculate(Input{
		Selection:      Selection{Transportation: transport(500)},
		NumberOfPeople: 2,
		NumberOfDays:   3,
	})
	assert.ErrorIs(t, err, ErrMissingStay)

	_, err = calc.Calculate(Input{
		Selection:      Selection{Stay: stay(1000)},
		NumberOfPeople: 2,
		NumberOfDays:   3,
	})
	assert.ErrorIs(t, err, ErrMissingTransportation)
}

func TestCalculate_PartialPreviewAllowed(t *testing.T) {
	calc := NewCalculator()

	breakdown, err := calc.Calculate(Input{
		Selection: Selection{
			Activities: []*domain.Resource{activity(10, 250)},
		},
		NumberOfPeople: 2,
		NumberOfDays:   3,
		AllowPartial:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), breakdown.StayTotal)
	assert.Equal(t, int64(500), breakdown.SightseeingTotal)
	assert.Equal(t, int64(500), breakdown.GrandTotal)
}

func TestCalculate_InvalidInput(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name string
		in   Input
	}{
		{
			name: "zero people",
			in: Input{
				Selection:      Selection{Stay: stay(1000), Transportation: transport(500)},
				NumberOfPeople: 0,
				NumberOfDays:   3,
			},
		},
		{
			name: "zero days",
			in: Input{
				Selection:      Selection{Stay: stay(1000), Transportation: transport(500)},
				NumberOfPeople: 2,
				NumberOfDays:   0,
			},
		},
		{
			name: "zero transfer count",
			in: Input{
				Selection: Selection{
					Stay:           stay(1000),
					Transportation: transport(500),
					Transfers:      []TransferItem{{Vehicle: vehicle(20, 800), Count: 0}},
				},
				NumberOfPeople: 2,
				NumberOfDays:   3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Calculate(tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
