package calendar

import (
	"sync/atomic"
	"time"
)

// The "today" snapshot is read once and then held so that every predicate
// evaluated during one render agrees on the current day, even across midnight.
var (
	todaySnapshot atomic.Pointer[Date]
	clock         atomic.Pointer[func() time.Time]
)

// Today returns the memoized current date, reading the clock on first use.
func Today() Date {
	if d := todaySnapshot.Load(); d != nil {
		return *d
	}
	now := time.Now
	if c := clock.Load(); c != nil {
		now = *c
	}
	d := DateOf(now())
	// The first writer wins; concurrent callers all observe its value.
	if !todaySnapshot.CompareAndSwap(nil, &d) {
		if cur := todaySnapshot.Load(); cur != nil {
			return *cur
		}
	}
	return d
}

// SetToday pins the snapshot to d until the next SetToday or ResetToday.
func SetToday(d Date) {
	todaySnapshot.Store(&d)
}

// ResetToday drops the snapshot; the next Today call reads the clock again.
func ResetToday() {
	todaySnapshot.Store(nil)
}

// SetClock replaces the clock consulted after a reset. Nil restores time.Now.
func SetClock(now func() time.Time) {
	if now == nil {
		clock.Store(nil)
	} else {
		clock.Store(&now)
	}
	ResetToday()
}

// IsToday reports whether d is the snapshot date.
func IsToday(d Date) bool {
	return d.IsSameDay(Today())
}

// IsPastDate reports whether d lies before the snapshot date.
func IsPastDate(d Date) bool {
	return d.Before(Today())
}
