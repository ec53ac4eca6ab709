package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	"github.com/m04kA/TRV-BookingEngine/pkg/types"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.OverlapFilter
}

func (f *fakeBookingRepo) GetOverlapping(_ context.Context, filter domain.OverlapFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter

	var out []*domain.Booking
	for _, b := range f.bookings {
		if filter.ExcludeBookingID != nil && b.ID == *filter.ExcludeBookingID {
			continue
		}
		if b.CheckInDate.Before(filter.RangeEnd) && filter.RangeStart.Before(b.CheckOutDate) {
			out = append(out, b)
		}
	}
	return out, nil
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

func room(capacity int) *domain.Resource {
	return &domain.Resource{ID: 1, Type: domain.ResourceStay, Capacity: capacity, IsActive: true}
}

func stayBooking(id int64, status domain.BookingStatus, checkIn, checkOut string) *domain.Booking {
	return &domain.Booking{
		ID:             id,
		StayID:         1,
		CheckInDate:    day(checkIn),
		CheckOutDate:   day(checkOut),
		NumberOfPeople: 2,
		Status:         status,
	}
}

func TestCheck_InactiveResource(t *testing.T) {
	checker := NewChecker(&fakeBookingRepo{}, nopLogger{})

	resource := room(5)
	resource.IsActive = false

	result, err := checker.Check(context.Background(), CheckRequest{
		Resource:   resource,
		RangeStart: day("2024-06-01"),
		RangeEnd:   day("2024-06-03"),
		Quantity:   1,
	})

	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonResourceInactive, result.Reason)
}

func TestCheck_BlockedDate(t *testing.T) {
	checker := NewChecker(&fakeBookingRepo{}, nopLogger{})

	resource := room(5)
	resource.UnavailableDates = []types.DateString{"2024-06-02"}

	result, err := checker.Check(context.Background(), CheckRequest{
		Resource:   resource,
		RangeStart: day("2024-06-01"),
		RangeEnd:   day("2024-06-04"),
		Quantity:   1,
	})

	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonDateBlocked, result.Reason)
	assert.Equal(t, types.DateString("2024-06-02"), result.Day)
}

// Ресурс с вместимостью 1: существующее бронирование [2024-06-01, 2024-06-05)
// отклоняет пересекающийся диапазон, но не смежный.
func TestCheck_CapacityOne(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		stayBooking(100, domain.StatusBooked, "2024-06-01", "2024-06-05"),
	}}
	checker := NewChecker(repo, nopLogger{})
	resource := room(1)

	t.Run("overlapping range rejected", func(t *testing.T) {
		result, err := checker.Check(context.Background(), CheckRequest{
			Resource:   resource,
			RangeStart: day("2024-06-03"),
			RangeEnd:   day("2024-06-06"),
			Quantity:   1,
		})

		require.NoError(t, err)
		assert.False(t, result.Available)
		assert.Equal(t, ReasonCapacityExceeded, result.Reason)
		assert.Equal(t, types.DateString("2024-06-03"), result.Day)
	})

	t.Run("adjacent range accepted", func(t *testing.T) {
		// check_out день не занят: диапазон полуоткрытый
		result, err := checker.Check(context.Background(), CheckRequest{
			Resource:   resource,
			RangeStart: day("2024-06-05"),
			RangeEnd:   day("2024-06-08"),
			Quantity:   1,
		})

		require.NoError(t, err)
		assert.True(t, result.Available)
	})
}

func TestCheck_DraftsAndCancelledDoNotCount(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		stayBooking(100, domain.StatusDraft, "2024-06-01", "2024-06-05"),
		stayBooking(101, domain.StatusCancelled, "2024-06-01", "2024-06-05"),
	}}
	checker := NewChecker(repo, nopLogger{})

	result, err := checker.Check(context.Background(), CheckRequest{
		Resource:   room(1),
		RangeStart: day("2024-06-02"),
		RangeEnd:   day("2024-06-04"),
		Quantity:   1,
	})

	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestCheck_ExcludeBookingID(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		stayBooking(100, domain.StatusBooked, "2024-06-01", "2024-06-05"),
	}}
	checker := NewChecker(repo, nopLogger{})

	exclude := int64(100)
	result, err := checker.Check(context.Background(), CheckRequest{
		Resource:         room(1),
		RangeStart:       day("2024-06-01"),
		RangeEnd:         day("2024-06-05"),
		Quantity:         1,
		ExcludeBookingID: &exclude,
	})

	require.NoError(t, err)
	assert.True(t, result.Available)
	require.NotNil(t, repo.lastFilter.ExcludeBookingID)
	assert.Equal(t, int64(100), *repo.lastFilter.ExcludeBookingID)
}

// Экскурсия занимает слоты размером группы и только на день заезда
func TestCheck_SightseeingUsesPartySizeOnCheckInDay(t *testing.T) {
	existing := stayBooking(100, domain.StatusConfirmed, "2024-06-01", "2024-06-05")
	existing.NumberOfPeople = 8
	existing.ActivityIDs = []int64{7}

	repo := &fakeBookingRepo{bookings: []*domain.Booking{existing}}
	checker := NewChecker(repo, nopLogger{})

	tour := &domain.Resource{ID: 7, Type: domain.ResourceSightseeing, Capacity: 10, IsActive: true}

	t.Run("same day over capacity", func(t *testing.T) {
		result, err := checker.Check(context.Background(), CheckRequest{
			Resource:   tour,
			RangeStart: day("2024-06-01"),
			RangeEnd:   day("2024-06-02"),
			Quantity:   3,
		})

		require.NoError(t, err)
		assert.False(t, result.Available)
		assert.Equal(t, ReasonCapacityExceeded, result.Reason)
	})

	t.Run("same day within capacity", func(t *testing.T) {
		result, err := checker.Check(context.Background(), CheckRequest{
			Resource:   tour,
			RangeStart: day("2024-06-01"),
			RangeEnd:   day("2024-06-02"),
			Quantity:   2,
		})

		require.NoError(t, err)
		assert.True(t, result.Available)
	})

	t.Run("later days of the stay are free", func(t *testing.T) {
		result, err := checker.Check(context.Background(), CheckRequest{
			Resource:   tour,
			RangeStart: day("2024-06-02"),
			RangeEnd:   day("2024-06-03"),
			Quantity:   10,
		})

		require.NoError(t, err)
		assert.True(t, result.Available)
	})
}

// Машины трансфера занимают выбранное число единиц на день заезда
func TestCheck_TransferVehicleUsesCountOnCheckInDay(t *testing.T) {
	existing := stayBooking(100, domain.StatusBooked, "2024-06-01", "2024-06-05")
	existing.Transfers = []domain.TransferSelection{{VehicleID: 9, Count: 3}}

	repo := &fakeBookingRepo{bookings: []*domain.Booking{existing}}
	checker := NewChecker(repo, nopLogger{})

	fleet := &domain.Resource{ID: 9, Type: domain.ResourceTransferVehicle, Capacity: 4, IsActive: true}

	result, err := checker.Check(context.Background(), CheckRequest{
		Resource:   fleet,
		RangeStart: day("2024-06-01"),
		RangeEnd:   day("2024-06-02"),
		Quantity:   2,
	})

	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonCapacityExceeded, result.Reason)

	result, err = checker.Check(context.Background(), CheckRequest{
		Resource:   fleet,
		RangeStart: day("2024-06-01"),
		RangeEnd:   day("2024-06-02"),
		Quantity:   1,
	})

	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestCheck_RequestValidation(t *testing.T) {
	checker := NewChecker(&fakeBookingRepo{}, nopLogger{})
	resource := room(1)

	_, err := checker.Check(context.Background(), CheckRequest{
		Resource:   resource,
		RangeStart: day("2024-06-05"),
		RangeEnd:   day("2024-06-01"),
		Quantity:   1,
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = checker.Check(context.Background(), CheckRequest{
		Resource: resource,
		Quantity: 1,
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = checker.Check(context.Background(), CheckRequest{
		Resource:   resource,
		RangeStart: day("2024-06-01"),
		RangeEnd:   day("2024-06-05"),
		Quantity:   0,
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}
