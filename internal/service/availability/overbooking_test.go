package availability

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
)

// lockedStore потокобезопасное in-memory хранилище бронирований.
// Мьютекс вокруг пары "проверка + запись" моделирует сериализуемую
// транзакцию, в которой проверка выполняется в продакшене.
type lockedStore struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
}

func (s *lockedStore) GetOverlapping(_ context.Context, filter domain.OverlapFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range s.bookings {
		if filter.ExcludeBookingID != nil && b.ID == *filter.ExcludeBookingID {
			continue
		}
		if b.CheckInDate.Before(filter.RangeEnd) && filter.RangeStart.Before(b.CheckOutDate) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *lockedStore) add(b *domain.Booking) {
	s.nextID++
	b.ID = s.nextID
	s.bookings = append(s.bookings, b)
}

// Случайные конкурентные попытки бронирования ресурса с маленькой
// фиксированной вместимостью: после того как все попытки улеглись,
// ни один день не должен быть занят сверх вместимости.
func TestConcurrentBookings_NoOverbooking(t *testing.T) {
	const (
		capacity   = 3
		attempts   = 200
		horizonDay = 14
	)

	resource := &domain.Resource{ID: 1, Type: domain.ResourceStay, Capacity: capacity, IsActive: true}
	store := &lockedStore{}
	checker := NewChecker(store, nopLogger{})

	base := day("2024-06-01")
	rng := rand.New(rand.NewSource(42))

	// Заготовленные диапазоны: генератор не трогается из горутин
	type attempt struct {
		start time.Time
		end   time.Time
	}
	plan := make([]attempt, attempts)
	for i := range plan {
		startOffset := rng.Intn(horizonDay)
		nights := 1 + rng.Intn(5)
		plan[i] = attempt{
			start: base.AddDate(0, 0, startOffset),
			end:   base.AddDate(0, 0, startOffset+nights),
		}
	}

	var wg sync.WaitGroup
	for _, p := range plan {
		wg.Add(1)
		go func(p attempt) {
			defer wg.Done()

			store.mu.Lock()
			defer store.mu.Unlock()

			result, err := checker.Check(context.Background(), CheckRequest{
				Resource:   resource,
				RangeStart: p.start,
				RangeEnd:   p.end,
				Quantity:   1,
			})
			if !assert.NoError(t, err) {
				return
			}

			if result.Available {
				store.add(&domain.Booking{
					StayID:       resource.ID,
					CheckInDate:  p.start,
					CheckOutDate: p.end,
					Status:       domain.StatusBooked,
				})
			}
		}(p)
	}
	wg.Wait()

	require.NotEmpty(t, store.bookings, "at least some attempts must have succeeded")

	// Прямой пересчет занятости по дням независимо от логики checker
	for offset := 0; offset < horizonDay+5; offset++ {
		d := base.AddDate(0, 0, offset)
		used := 0
		for _, b := range store.bookings {
			if b.CountsAgainstCapacity() && b.CoversDay(d) {
				used++
			}
		}
		assert.LessOrEqual(t, used, capacity, "day %s oversubscribed", d.Format(domain.DateFormat))
	}
}

// Отмена освобождает дни немедленно: после ухода бронирования из
// учитываемых статусов тот же диапазон снова доступен.
func TestCancellationFreesCapacity(t *testing.T) {
	resource := &domain.Resource{ID: 1, Type: domain.ResourceStay, Capacity: 1, IsActive: true}
	store := &lockedStore{}
	checker := NewChecker(store, nopLogger{})

	held := &domain.Booking{
		StayID:       resource.ID,
		CheckInDate:  day("2024-06-01"),
		CheckOutDate: day("2024-06-05"),
		Status:       domain.StatusBooked,
	}
	store.add(held)

	req := CheckRequest{
		Resource:   resource,
		RangeStart: day("2024-06-02"),
		RangeEnd:   day("2024-06-04"),
		Quantity:   1,
	}

	result, err := checker.Check(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, result.Available)

	held.Status = domain.StatusCancelled

	result, err = checker.Check(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.Available)
}

// Ранний выезд освобождает хвост диапазона: после сокращения [1,10) до
// [1,5) новое бронирование [5,10) на том же ресурсе проходит.
func TestEarlyCheckoutFreesCapacity(t *testing.T) {
	resource := &domain.Resource{ID: 1, Type: domain.ResourceStay, Capacity: 1, IsActive: true}
	store := &lockedStore{}
	checker := NewChecker(store, nopLogger{})

	held := &domain.Booking{
		StayID:       resource.ID,
		CheckInDate:  day("2024-06-01"),
		CheckOutDate: day("2024-06-10"),
		Status:       domain.StatusConfirmed,
	}
	store.add(held)

	req := CheckRequest{
		Resource:   resource,
		RangeStart: day("2024-06-05"),
		RangeEnd:   day("2024-06-10"),
		Quantity:   1,
	}

	result, err := checker.Check(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, result.Available)

	// Ранний выезд: диапазон сокращается, бронирование завершается
	held.CheckOutDate = day("2024-06-05")
	held.Status = domain.StatusCompleted

	result, err = checker.Check(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.Available)
}
