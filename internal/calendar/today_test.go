package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTodaySnapshot(t *testing.T) {
	t.Cleanup(func() { SetClock(nil) })

	now := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	SetClock(func() time.Time { return now })

	assert.Equal(t, Date{2025, 6, 15}, Today())

	// The clock moving past midnight does not change the held snapshot.
	now = now.Add(2 * time.Minute)
	assert.Equal(t, Date{2025, 6, 15}, Today())

	ResetToday()
	assert.Equal(t, Date{2025, 6, 16}, Today())
}

func TestSetToday(t *testing.T) {
	t.Cleanup(ResetToday)

	SetToday(Date{2025, 1, 10})

	assert.True(t, IsToday(Date{2025, 1, 10}))
	assert.False(t, IsToday(Date{2025, 1, 11}))
	assert.True(t, IsPastDate(Date{2025, 1, 9}))
	assert.True(t, IsPastDate(Date{2024, 12, 31}))
	assert.False(t, IsPastDate(Date{2025, 1, 10}))
	assert.False(t, IsPastDate(Date{2025, 2, 1}))
}

func TestTodayConcurrentFirstAccess(t *testing.T) {
	t.Cleanup(func() { SetClock(nil) })
	SetClock(func() time.Time { return time.Date(2030, 3, 3, 12, 0, 0, 0, time.UTC) })

	results := make(chan Date, 16)
	for i := 0; i < cap(results); i++ {
		go func() { results <- Today() }()
	}
	for i := 0; i < cap(results); i++ {
		assert.Equal(t, Date{2030, 3, 3}, <-results)
	}
}
