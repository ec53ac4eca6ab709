package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	itinerarySvc "github.com/m04kA/TRV-BookingEngine/internal/service/itinerary"
)

type fakeBookingRepo struct {
	created *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	cp := *booking
	cp.ID = 42
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.created = &cp
	return &cp, nil
}

type fakeItineraryService struct {
	itinerary       *itinerarySvc.Itinerary
	loadErr         error
	availabilityErr error
	price           domain.PricingBreakdown
	priceErr        error
}

func (f *fakeItineraryService) Load(_ context.Context, _ itinerarySvc.Selection) (*itinerarySvc.Itinerary, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.itinerary, nil
}

func (f *fakeItineraryService) CheckAvailability(_ context.Context, _ *itinerarySvc.Itinerary, _ itinerarySvc.CheckParams) error {
	return f.availabilityErr
}

func (f *fakeItineraryService) Price(_ *itinerarySvc.Itinerary, _, _ int, _ bool) (domain.PricingBreakdown, error) {
	if f.priceErr != nil {
		return domain.PricingBreakdown{}, f.priceErr
	}
	return f.price, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func loadedItinerary() *itinerarySvc.Itinerary {
	return &itinerarySvc.Itinerary{
		Stay:           &domain.Resource{ID: 1, Type: domain.ResourceStay, Capacity: 5, MaxOccupancy: 4, IsActive: true},
		Transportation: &domain.Resource{ID: 2, Type: domain.ResourceTransportation, Capacity: 3, IsActive: true},
	}
}

func validRequest() *Request {
	return &Request{
		UserID:           7,
		StayID:           1,
		TransportationID: 2,
		CheckInDate:      day("2024-06-01"),
		CheckOutDate:     day("2024-06-04"),
		NumberOfPeople:   2,
		NumberOfDays:     3,
	}
}

func TestExecute_CreatesDraft(t *testing.T) {
	repo := &fakeBookingRepo{}
	itinerary := &fakeItineraryService{
		itinerary: loadedItinerary(),
		price: domain.PricingBreakdown{
			StayTotal:           3000,
			TransportationTotal: 1500,
			GrandTotal:          4500,
		},
	}

	uc := NewUseCase(repo, itinerary, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusDraft), resp.Status)
	assert.Equal(t, string(domain.PaymentUnpaid), resp.PaymentStatus)
	assert.Equal(t, int64(4500), resp.Pricing.GrandTotal)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusDraft, repo.created.Status)
	assert.Equal(t, domain.PaymentUnpaid, repo.created.PaymentStatus)
	assert.Equal(t, int64(4500), repo.created.Pricing.GrandTotal)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	repo := &fakeBookingRepo{}
	itinerary := &fakeItineraryService{
		itinerary:       loadedItinerary(),
		availabilityErr: itinerarySvc.ErrCapacityExceeded,
	}

	uc := NewUseCase(repo, itinerary, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Nil(t, repo.created)
}

func TestExecute_ResourceNotFound(t *testing.T) {
	repo := &fakeBookingRepo{}
	itinerary := &fakeItineraryService{loadErr: itinerarySvc.ErrResourceNotFound}

	uc := NewUseCase(repo, itinerary, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.Nil(t, repo.created)
}

func TestExecute_ResourceInactive(t *testing.T) {
	repo := &fakeBookingRepo{}
	itinerary := &fakeItineraryService{
		itinerary:       loadedItinerary(),
		availabilityErr: itinerarySvc.ErrResourceInactive,
	}

	uc := NewUseCase(repo, itinerary, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrResourceInactive)
	assert.Nil(t, repo.created)
}

func TestExecute_OccupancyExceeded(t *testing.T) {
	repo := &fakeBookingRepo{}
	itinerary := &fakeItineraryService{itinerary: loadedItinerary()}

	uc := NewUseCase(repo, itinerary, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.NumberOfPeople = 5 // max occupancy номера = 4

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOccupancyExceeded)
	assert.Nil(t, repo.created)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeItineraryService{}, fakeTxManager{}, nopLogger{})

	t.Run("check-out before check-in", func(t *testing.T) {
		req := validRequest()
		req.CheckInDate = day("2024-06-04")
		req.CheckOutDate = day("2024-06-01")

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("numberOfDays mismatch rejected", func(t *testing.T) {
		req := validRequest()
		req.NumberOfDays = 5 // диапазон дает 3

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("stay too long", func(t *testing.T) {
		req := validRequest()
		req.CheckOutDate = req.CheckInDate.AddDate(0, 0, domain.MaxStayNights+1)
		req.NumberOfDays = domain.MaxStayNights + 1

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("zero people", func(t *testing.T) {
		req := validRequest()
		req.NumberOfPeople = 0

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("transfer count below one", func(t *testing.T) {
		req := validRequest()
		req.Transfers = []TransferInput{{VehicleID: 9, Count: 0}}

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
