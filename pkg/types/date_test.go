package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateString(t *testing.T) {
	ts := time.Date(2024, 6, 1, 15, 30, 45, 0, time.UTC)
	assert.Equal(t, DateString("2024-06-01"), NewDateString(ts))
}

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, DateString("2024-06-01"), d)

	_, err = NewDateStringFromString("01.06.2024")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = NewDateStringFromString("2024-13-40")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDateString_Time(t *testing.T) {
	d := DateString("2024-06-01")

	ts, err := d.Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), ts)

	_, err = DateString("not-a-date").Time()
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDateString_Ordering(t *testing.T) {
	a := DateString("2024-06-01")
	b := DateString("2024-06-02")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
}

func TestDateString_AddDays(t *testing.T) {
	d := DateString("2024-06-01")

	next, err := d.AddDays(4)
	require.NoError(t, err)
	assert.Equal(t, DateString("2024-06-05"), next)

	prev, err := d.AddDays(-1)
	require.NoError(t, err)
	assert.Equal(t, DateString("2024-05-31"), prev)

	// Перенос через границу месяца
	end, err := DateString("2024-06-29").AddDays(3)
	require.NoError(t, err)
	assert.Equal(t, DateString("2024-07-02"), end)
}

func TestDateString_DaysUntil(t *testing.T) {
	a := DateString("2024-06-01")
	b := DateString("2024-06-05")

	days, err := a.DaysUntil(b)
	require.NoError(t, err)
	assert.Equal(t, 4, days)

	days, err = b.DaysUntil(a)
	require.NoError(t, err)
	assert.Equal(t, -4, days)
}

func TestDateString_IsZero(t *testing.T) {
	assert.True(t, DateString("").IsZero())
	assert.False(t, DateString("2024-06-01").IsZero())
}
