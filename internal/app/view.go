package app

import (
	"fmt"

	"github.com/klabast/wb-services/period-calendar/internal/calendar"
)

// Half selects which part of a period to render
type Half string

const (
	HalfAuto   Half = ""
	HalfFull   Half = "full"
	HalfFirst  Half = "first"
	HalfSecond Half = "second"
)

// ParseHalf accepts "", "full", "first" or "second"
func ParseHalf(s string) (Half, error) {
	switch h := Half(s); h {
	case HalfAuto, HalfFull, HalfFirst, HalfSecond:
		return h, nil
	}
	return "", fmt.Errorf("half %q: %w", s, calendar.ErrInvalidInput)
}

// PeriodLabel renders a period number as "第25期"
func PeriodLabel(period int) string {
	return fmt.Sprintf("第%d期", period)
}

// PeriodInWindow reports whether every year of the period lies in the
// supported year window. Periods far from the first period start would
// otherwise wrap the year arithmetic.
func PeriodInWindow(s calendar.Settings, period int) bool {
	r := s.PeriodRange(period)
	return InYearWindow(r.Start.Year) && InYearWindow(r.End.Year) && !r.End.Before(r.Start)
}

// RangesFor returns the labelled ranges to render. HalfAuto follows the
// split mode of the settings.
func RangesFor(s calendar.Settings, period int, half Half) ([]string, []calendar.PeriodRange) {
	switch half {
	case HalfFull:
		return []string{"通期"}, []calendar.PeriodRange{s.PeriodRange(period)}
	case HalfFirst:
		return []string{"上期"}, []calendar.PeriodRange{s.FirstHalf(period)}
	case HalfSecond:
		return []string{"下期"}, []calendar.PeriodRange{s.SecondHalf(period)}
	}
	ranges := s.Ranges(period)
	if len(ranges) == 2 {
		return []string{"上期", "下期"}, ranges
	}
	return []string{"通期"}, ranges
}

// BuildCalendarView renders a period into rows of day cells. today and
// holidays are passed in so one request sees a single consistent snapshot.
func BuildCalendarView(s calendar.Settings, period int, half Half, layout calendar.LayoutMode, today calendar.Date, holidays calendar.HolidayMap) CalendarView {
	view := CalendarView{
		Period:   period,
		Label:    PeriodLabel(period),
		Today:    today,
		Layout:   layout,
		Weekdays: WeekdayLabels,
		Ranges:   []RangeView{},
	}

	labels, ranges := RangesFor(s, period, half)
	for i, r := range ranges {
		rv := RangeView{Label: labels[i], Range: r}
		dates := r.Dates()
		if layout == calendar.LayoutContinuous {
			rv.Weeks = buildWeeks(calendar.GroupDatesByWeek(dates), today, holidays)
		} else {
			for _, block := range calendar.GroupDatesByMonth(dates) {
				rv.Months = append(rv.Months, MonthView{
					Month: block.Month,
					Label: block.Month.Format(),
					Weeks: buildWeeks(block.Weeks, today, holidays),
				})
			}
		}
		view.Ranges = append(view.Ranges, rv)
	}
	return view
}

func buildWeeks(weeks []calendar.Week, today calendar.Date, holidays calendar.HolidayMap) []WeekView {
	out := make([]WeekView, 0, len(weeks))
	for _, week := range weeks {
		var wv WeekView
		for i, d := range week {
			if d != nil {
				wv[i] = buildDay(*d, today, holidays)
			}
		}
		out = append(out, wv)
	}
	return out
}

func buildDay(d calendar.Date, today calendar.Date, holidays calendar.HolidayMap) *DayView {
	day := &DayView{
		Date:              d,
		Day:               d.Day,
		Weekday:           int(d.Weekday()),
		IsToday:           d.IsSameDay(today),
		IsPast:            d.Before(today),
		IsFirstDayOfMonth: d.IsFirstDayOfMonth(),
	}
	if h, ok := calendar.GetHoliday(d, holidays); ok {
		day.IsHoliday = true
		day.Holiday = h.Name
	}
	return day
}

// BuildPeriodInfo describes the period containing d
func BuildPeriodInfo(s calendar.Settings, d calendar.Date) PeriodInfo {
	period := s.PeriodOf(d)
	return PeriodInfo{
		Date:       d,
		Period:     period,
		Label:      PeriodLabel(period),
		Range:      s.PeriodRange(period),
		FirstHalf:  s.FirstHalf(period),
		SecondHalf: s.SecondHalf(period),
	}
}

// SettingsFromRequest turns a settings request into validated settings
func SettingsFromRequest(req SettingsRequest, base calendar.Settings, today calendar.Date) (calendar.Settings, error) {
	s := base
	if req.Settings != nil {
		s = *req.Settings
	}
	if req.PeriodStartMonth != 0 || req.CurrentPeriod != 0 {
		if req.PeriodStartMonth < 1 || req.PeriodStartMonth > 12 {
			return s, fmt.Errorf("period start month %d: %w", req.PeriodStartMonth, calendar.ErrInvalidInput)
		}
		s.FirstPeriodStart = calendar.FirstPeriodStart(req.PeriodStartMonth, req.CurrentPeriod, today)
	}
	if req.MonthLayout != "" {
		mode, err := calendar.ParseLayoutMode(req.MonthLayout)
		if err != nil {
			return s, err
		}
		s.MonthLayout = mode
	}
	if req.PeriodSplit != "" {
		mode, err := calendar.ParseSplitMode(req.PeriodSplit)
		if err != nil {
			return s, err
		}
		s.PeriodSplit = mode
	}
	return s, s.Validate()
}
