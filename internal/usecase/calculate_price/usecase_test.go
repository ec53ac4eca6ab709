package calculate_price

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	itinerarySvc "github.com/m04kA/TRV-BookingEngine/internal/service/itinerary"
	"github.com/m04kA/TRV-BookingEngine/internal/service/pricing"
	"github.com/m04kA/TRV-BookingEngine/pkg/ptr"
)

type fakeItineraryService struct {
	loadErr  error
	price    domain.PricingBreakdown
	priceErr error

	lastPartial bool
}

func (f *fakeItineraryService) Load(_ context.Context, _ itinerarySvc.Selection) (*itinerarySvc.Itinerary, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return &itinerarySvc.Itinerary{}, nil
}

func (f *fakeItineraryService) Price(_ *itinerarySvc.Itinerary, _, _ int, partial bool) (domain.PricingBreakdown, error) {
	f.lastPartial = partial
	if f.priceErr != nil {
		return domain.PricingBreakdown{}, f.priceErr
	}
	return f.price, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		StayID:           ptr.Ptr(int64(1)),
		TransportationID: ptr.Ptr(int64(2)),
		NumberOfPeople:   2,
		NumberOfDays:     3,
	}
}

func TestExecute_Quote(t *testing.T) {
	itinerary := &fakeItineraryService{
		price: domain.PricingBreakdown{
			StayTotal:           3000,
			TransportationTotal: 1500,
			SightseeingTotal:    1200,
			GrandTotal:          5700,
		},
	}
	uc := NewUseCase(itinerary, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(5700), resp.Pricing.GrandTotal)
	assert.False(t, itinerary.lastPartial)
}

func TestExecute_PartialFlagForwarded(t *testing.T) {
	itinerary := &fakeItineraryService{price: domain.PricingBreakdown{SightseeingTotal: 500, GrandTotal: 500}}
	uc := NewUseCase(itinerary, nopLogger{})

	req := validRequest()
	req.StayID = nil
	req.TransportationID = nil
	req.ActivityIDs = []int64{10}
	req.Partial = true

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, itinerary.lastPartial)
}

func TestExecute_IncompleteSelection(t *testing.T) {
	for _, svcErr := range []error{pricing.ErrMissingStay, pricing.ErrMissingTransportation} {
		uc := NewUseCase(&fakeItineraryService{priceErr: svcErr}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrIncompleteSelection)
	}
}

func TestExecute_ResourceNotFound(t *testing.T) {
	uc := NewUseCase(&fakeItineraryService{loadErr: itinerarySvc.ErrResourceNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeItineraryService{}, nopLogger{})

	t.Run("zero people", func(t *testing.T) {
		req := validRequest()
		req.NumberOfPeople = 0

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("zero days", func(t *testing.T) {
		req := validRequest()
		req.NumberOfDays = 0

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative stay id", func(t *testing.T) {
		req := validRequest()
		req.StayID = ptr.Ptr(int64(-1))

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
