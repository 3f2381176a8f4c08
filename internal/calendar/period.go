package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultFirstPeriodStart is when period 1 begins unless settings say otherwise.
var DefaultFirstPeriodStart = YearMonth{Year: 2001, Month: 1}

// PeriodRange is an inclusive range of months. End is never before Start.
type PeriodRange struct {
	Start YearMonth `json:"start"`
	End   YearMonth `json:"end"`
}

// PeriodRangeOf returns the twelve months of the given fiscal period.
// Period 0 and negative periods lie before first.
func PeriodRangeOf(period int, first YearMonth) PeriodRange {
	start := periodStart(period, first)
	return PeriodRange{Start: start, End: start.AddMonths(11)}
}

// FirstHalfPeriodRange returns the first six months of the period.
func FirstHalfPeriodRange(period int, first YearMonth) PeriodRange {
	start := periodStart(period, first)
	return PeriodRange{Start: start, End: start.AddMonths(5)}
}

// SecondHalfPeriodRange returns the six months following the first half.
func SecondHalfPeriodRange(period int, first YearMonth) PeriodRange {
	start := FirstHalfPeriodRange(period, first).End.AddMonths(1)
	return PeriodRange{Start: start, End: start.AddMonths(5)}
}

func periodStart(period int, first YearMonth) YearMonth {
	return NewYearMonth(first.Year+period-1, first.Month)
}

// PeriodFromDate returns the period d falls in. The boundary is month
// granular: any day of the start month belongs to the new period.
func PeriodFromDate(d Date, first YearMonth) int {
	if d.Month < first.Month {
		return d.Year - first.Year
	}
	return d.Year - first.Year + 1
}

// FirstPeriodStart derives when period 1 began, given that current falls in
// currentPeriod and periods start in periodStartMonth. It inverts PeriodFromDate.
func FirstPeriodStart(periodStartMonth, currentPeriod int, current Date) YearMonth {
	offset := currentPeriod - 1
	if current.Month < periodStartMonth {
		offset = currentPeriod
	}
	return YearMonth{Year: current.Year - offset, Month: periodStartMonth}
}

// ParsePeriod parses a period number.
func ParsePeriod(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("period %q: %w", s, ErrInvalidInput)
	}
	return n, nil
}

// Contains reports whether ym lies inside the range.
func (r PeriodRange) Contains(ym YearMonth) bool {
	return !ym.Before(r.Start) && !ym.After(r.End)
}

// ContainsDate reports whether d falls in one of the range's months.
func (r PeriodRange) ContainsDate(d Date) bool {
	return r.Contains(d.YearMonth())
}

// Len is the number of months in the range.
func (r PeriodRange) Len() int {
	return r.Start.MonthsUntil(r.End) + 1
}

// Months lists every month of the range in order.
func (r PeriodRange) Months() []YearMonth {
	months := make([]YearMonth, 0, r.Len())
	for ym := r.Start; !ym.After(r.End); ym = ym.AddMonths(1) {
		months = append(months, ym)
	}
	return months
}

// FirstDay and LastDay bound the range in days.
func (r PeriodRange) FirstDay() Date { return r.Start.FirstDay() }
func (r PeriodRange) LastDay() Date  { return r.End.LastDay() }

// Dates expands the range into its days.
func (r PeriodRange) Dates() []Date {
	return GenerateDates(r.Start, r.End)
}

func (r PeriodRange) String() string {
	return r.Start.Format() + "〜" + r.End.Format()
}
