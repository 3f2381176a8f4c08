package calendar

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// YearMonth is a normalized (year, month) pair. Month is always in [1,12].
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// NewYearMonth normalizes month into [1,12], carrying whole years into year.
// Month 25 is January two years later, month 0 is December of the previous year.
func NewYearMonth(year, month int) YearMonth {
	m := month - 1
	year += floorDiv(m, 12)
	return YearMonth{Year: year, Month: m - 12*floorDiv(m, 12) + 1}
}

// YearMonthOf returns the year and month of t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: int(t.Month())}
}

// ParseYearMonth parses "YYYY-MM". The month must already be in [1,12].
func ParseYearMonth(s string) (YearMonth, error) {
	s = strings.TrimSpace(s)
	i := strings.LastIndex(s, "-")
	if i <= 0 {
		return YearMonth{}, fmt.Errorf("year-month %q (expected YYYY-MM): %w", s, ErrInvalidInput)
	}
	y, err := strconv.Atoi(s[:i])
	if err != nil {
		return YearMonth{}, fmt.Errorf("year in %q: %w", s, ErrInvalidInput)
	}
	m, err := strconv.Atoi(s[i+1:])
	if err != nil || m < 1 || m > 12 {
		return YearMonth{}, fmt.Errorf("month in %q: %w", s, ErrInvalidInput)
	}
	return YearMonth{Year: y, Month: m}, nil
}

// AddMonths shifts ym by delta months in either direction.
func (ym YearMonth) AddMonths(delta int) YearMonth {
	return NewYearMonth(ym.Year, ym.Month+delta)
}

// Index is the number of months since January of year 0.
// Year*12 overflows for |Year| beyond math.MaxInt/12; callers that take
// years from untrusted input bound them first.
func (ym YearMonth) Index() int {
	return ym.Year*12 + ym.Month - 1
}

// MonthsUntil returns how many months lie between ym and other (negative if other is earlier).
func (ym YearMonth) MonthsUntil(other YearMonth) int {
	return other.Index() - ym.Index()
}

// Compare returns -1, 0 or +1 depending on whether ym is before, equal to or after other.
func (ym YearMonth) Compare(other YearMonth) int {
	switch a, b := ym.Index(), other.Index(); {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (ym YearMonth) Before(other YearMonth) bool { return ym.Compare(other) < 0 }
func (ym YearMonth) After(other YearMonth) bool  { return ym.Compare(other) > 0 }

// DaysIn returns the length of the month, leap years included.
func (ym YearMonth) DaysIn() int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(ym.Year, time.Month(ym.Month)+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// FirstDay returns day 1 of the month.
func (ym YearMonth) FirstDay() Date {
	return Date{Year: ym.Year, Month: ym.Month, Day: 1}
}

// LastDay returns the last day of the month.
func (ym YearMonth) LastDay() Date {
	return Date{Year: ym.Year, Month: ym.Month, Day: ym.DaysIn()}
}

// Time returns local midnight on day 1 of the month.
func (ym YearMonth) Time() time.Time {
	return time.Date(ym.Year, time.Month(ym.Month), 1, 0, 0, 0, 0, time.Local)
}

// Format renders ym as "2025年1月".
func (ym YearMonth) Format() string {
	return fmt.Sprintf("%d年%d月", ym.Year, ym.Month)
}

func (ym YearMonth) String() string {
	return ym.Format()
}

// Key renders ym as "YYYY-MM", the form accepted by ParseYearMonth.
func (ym YearMonth) Key() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// UnmarshalJSON normalizes the decoded month so persisted values keep the invariant.
func (ym *YearMonth) UnmarshalJSON(data []byte) error {
	var raw struct {
		Year  int `json:"year"`
		Month int `json:"month"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("year-month: %w", ErrInvalidInput)
	}
	*ym = NewYearMonth(raw.Year, raw.Month)
	return nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
