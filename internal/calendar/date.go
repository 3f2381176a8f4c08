package calendar

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Date is a naive calendar date. It always denotes a real day.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate resolves out-of-range fields by rolling into adjacent months and
// years, the same way time.Date does: April 31 is May 1, day 0 is the last
// day of the previous month, month 13 is January of the next year.
func NewDate(year, month, day int) Date {
	// Noon keeps DST transitions from moving the day.
	return DateOf(time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// ParseDate parses "YYYY-MM-DD". Unlike NewDate it rejects days that do not exist.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("date %q (expected YYYY-MM-DD): %w", s, ErrInvalidInput)
	}
	return DateOf(t), nil
}

// IsSame reports whether a and b are the same day.
func IsSame(a, b Date) bool {
	return a.Year == b.Year && a.Month == b.Month && a.Day == b.Day
}

// Num is a sortable key: year*10000 + month*100 + day.
func (d Date) Num() int {
	return d.Year*10000 + d.Month*100 + d.Day
}

func (d Date) IsFirstDayOfMonth() bool {
	return d.Day == 1
}

// IsSameDay reports whether d equals today.
func (d Date) IsSameDay(today Date) bool {
	return IsSame(d, today)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Num() < other.Num()
}

func (d Date) After(other Date) bool {
	return d.Num() > other.Num()
}

// AddDays returns the date n days later (earlier when n is negative).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Weekday returns the day of the week, Sunday being 0.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 12, 0, 0, 0, time.UTC).Weekday()
}

// YearMonth returns the month d falls in.
func (d Date) YearMonth() YearMonth {
	return YearMonth{Year: d.Year, Month: d.Month}
}

// Time returns local midnight of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local)
}

// Key formats d as YYYY-MM-DD, the holiday map key.
func (d Date) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) String() string {
	return d.Key()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Key())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date: %w", ErrInvalidInput)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
