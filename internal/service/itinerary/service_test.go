package itinerary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	resourceRepo "github.com/m04kA/TRV-BookingEngine/internal/infra/storage/resource"
	"github.com/m04kA/TRV-BookingEngine/internal/service/availability"
	"github.com/m04kA/TRV-BookingEngine/internal/service/pricing"
	"github.com/m04kA/TRV-BookingEngine/pkg/ptr"
)

type fakeResourceRepo struct {
	resources map[int64]*domain.Resource
}

func (f *fakeResourceRepo) GetByIDAndType(_ context.Context, id int64, resourceType domain.ResourceType) (*domain.Resource, error) {
	r, ok := f.resources[id]
	if !ok || r.Type != resourceType {
		return nil, resourceRepo.ErrResourceNotFound
	}
	return r, nil
}

type fakeChecker struct {
	results map[int64]*availability.Result
	checked []availability.CheckRequest
}

func (f *fakeChecker) Check(_ context.Context, req availability.CheckRequest) (*availability.Result, error) {
	f.checked = append(f.checked, req)
	if r, ok := f.results[req.Resource.ID]; ok {
		return r, nil
	}
	return &availability.Result{Available: true}, nil
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

func catalog() *fakeResourceRepo {
	return &fakeResourceRepo{resources: map[int64]*domain.Resource{
		1:  {ID: 1, Type: domain.ResourceStay, Capacity: 5, PricePerNight: 1000, IsActive: true},
		2:  {ID: 2, Type: domain.ResourceTransportation, Capacity: 3, PricePerDay: 500, IsActive: true},
		10: {ID: 10, Type: domain.ResourceSightseeing, Capacity: 20, PricePerPerson: 300, IsActive: true},
		20: {ID: 20, Type: domain.ResourceTransferVehicle, Capacity: 4, Price: 800, IsActive: true},
	}}
}

func fullSelection() Selection {
	return Selection{
		StayID:           ptr.Ptr(int64(1)),
		TransportationID: ptr.Ptr(int64(2)),
		ActivityIDs:      []int64{10},
		Transfers:        []domain.TransferSelection{{VehicleID: 20, Count: 2}},
	}
}

func TestLoad(t *testing.T) {
	svc := NewService(catalog(), &fakeChecker{}, pricing.NewCalculator(), nopLogger{})

	it, err := svc.Load(context.Background(), fullSelection())

	require.NoError(t, err)
	require.NotNil(t, it.Stay)
	assert.Equal(t, int64(1), it.Stay.ID)
	require.NotNil(t, it.Transportation)
	require.Len(t, it.Activities, 1)
	require.Len(t, it.Transfers, 1)
	assert.Equal(t, 2, it.Transfers[0].Count)
}

func TestLoad_NotFound(t *testing.T) {
	svc := NewService(catalog(), &fakeChecker{}, pricing.NewCalculator(), nopLogger{})

	sel := fullSelection()
	sel.StayID = ptr.Ptr(int64(77))

	_, err := svc.Load(context.Background(), sel)
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

// Тип ресурса проверяется вместе с id: экскурсия не подставляется вместо жилья
func TestLoad_TypeMismatch(t *testing.T) {
	svc := NewService(catalog(), &fakeChecker{}, pricing.NewCalculator(), nopLogger{})

	sel := fullSelection()
	sel.StayID = ptr.Ptr(int64(10))

	_, err := svc.Load(context.Background(), sel)
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestCheckAvailability_RangesPerResourceType(t *testing.T) {
	checker := &fakeChecker{}
	svc := NewService(catalog(), checker, pricing.NewCalculator(), nopLogger{})

	it, err := svc.Load(context.Background(), fullSelection())
	require.NoError(t, err)

	err = svc.CheckAvailability(context.Background(), it, CheckParams{
		RangeStart:     day("2024-06-01"),
		RangeEnd:       day("2024-06-04"),
		NumberOfPeople: 3,
	})
	require.NoError(t, err)

	require.Len(t, checker.checked, 4)

	byID := make(map[int64]availability.CheckRequest)
	for _, req := range checker.checked {
		byID[req.Resource.ID] = req
	}

	// Жилье и транспорт: весь диапазон, 1 единица
	assert.Equal(t, day("2024-06-04"), byID[1].RangeEnd)
	assert.Equal(t, 1, byID[1].Quantity)
	assert.Equal(t, day("2024-06-04"), byID[2].RangeEnd)

	// Экскурсия: только день заезда, размер группы
	assert.Equal(t, day("2024-06-02"), byID[10].RangeEnd)
	assert.Equal(t, 3, byID[10].Quantity)

	// Трансфер: только день заезда, число машин
	assert.Equal(t, day("2024-06-02"), byID[20].RangeEnd)
	assert.Equal(t, 2, byID[20].Quantity)
}

func TestCheckAvailability_FirstUnavailableWins(t *testing.T) {
	checker := &fakeChecker{results: map[int64]*availability.Result{
		2: {Available: false, Reason: availability.ReasonCapacityExceeded, Day: "2024-06-02"},
	}}
	svc := NewService(catalog(), checker, pricing.NewCalculator(), nopLogger{})

	it, err := svc.Load(context.Background(), fullSelection())
	require.NoError(t, err)

	err = svc.CheckAvailability(context.Background(), it, CheckParams{
		RangeStart:     day("2024-06-01"),
		RangeEnd:       day("2024-06-04"),
		NumberOfPeople: 3,
	})

	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestCheckAvailability_InactiveResource(t *testing.T) {
	checker := &fakeChecker{results: map[int64]*availability.Result{
		1: {Available: false, Reason: availability.ReasonResourceInactive},
	}}
	svc := NewService(catalog(), checker, pricing.NewCalculator(), nopLogger{})

	it, err := svc.Load(context.Background(), fullSelection())
	require.NoError(t, err)

	err = svc.CheckAvailability(context.Background(), it, CheckParams{
		RangeStart:     day("2024-06-01"),
		RangeEnd:       day("2024-06-04"),
		NumberOfPeople: 3,
	})

	assert.ErrorIs(t, err, ErrResourceInactive)
}

func TestCheckAvailability_ExcludeForwarded(t *testing.T) {
	checker := &fakeChecker{}
	svc := NewService(catalog(), checker, pricing.NewCalculator(), nopLogger{})

	it, err := svc.Load(context.Background(), fullSelection())
	require.NoError(t, err)

	err = svc.CheckAvailability(context.Background(), it, CheckParams{
		RangeStart:       day("2024-06-01"),
		RangeEnd:         day("2024-06-04"),
		NumberOfPeople:   3,
		ExcludeBookingID: ptr.Ptr(int64(42)),
	})
	require.NoError(t, err)

	for _, req := range checker.checked {
		require.NotNil(t, req.ExcludeBookingID)
		assert.Equal(t, int64(42), *req.ExcludeBookingID)
	}
}

func TestPrice(t *testing.T) {
	svc := NewService(catalog(), &fakeChecker{}, pricing.NewCalculator(), nopLogger{})

	it, err := svc.Load(context.Background(), fullSelection())
	require.NoError(t, err)

	breakdown, err := svc.Price(it, 2, 3, false)

	require.NoError(t, err)
	assert.Equal(t, int64(3000), breakdown.StayTotal)
	assert.Equal(t, int64(1500), breakdown.TransportationTotal)
	assert.Equal(t, int64(600), breakdown.SightseeingTotal)
	assert.Equal(t, int64(1600), breakdown.AirportTransferTotal)
	assert.Equal(t, int64(6700), breakdown.GrandTotal)
}
