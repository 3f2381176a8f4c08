package calendar

import "time"

// Week is one Monday-first row of seven slots. A nil slot is padding.
type Week [7]*Date

// MonthBlock is a month header together with the rows that belong to it.
type MonthBlock struct {
	Month YearMonth `json:"month"`
	Weeks []Week    `json:"weeks"`
}

// GenerateDates lists every day from the 1st of start through the last day
// of end. The result is empty when end is before start.
func GenerateDates(start, end YearMonth) []Date {
	if end.Before(start) {
		return []Date{}
	}
	n := 0
	for ym := start; !ym.After(end); ym = ym.AddMonths(1) {
		n += ym.DaysIn()
	}
	dates := make([]Date, 0, n)
	for ym := start; !ym.After(end); ym = ym.AddMonths(1) {
		days := ym.DaysIn()
		for day := 1; day <= days; day++ {
			dates = append(dates, Date{Year: ym.Year, Month: ym.Month, Day: day})
		}
	}
	return dates
}

// GroupDatesByWeek lays dates into one continuous Monday-first grid. The
// first and last rows are padded with nil so every date sits in its
// weekday column. Slots point into dates. Empty input yields no rows.
func GroupDatesByWeek(dates []Date) []Week {
	if len(dates) == 0 {
		return []Week{}
	}

	startPadding := mondayColumn(dates[0].Weekday())
	endPadding := 6 - mondayColumn(dates[len(dates)-1].Weekday())

	slots := make([]*Date, 0, startPadding+len(dates)+endPadding)
	for i := 0; i < startPadding; i++ {
		slots = append(slots, nil)
	}
	for i := range dates {
		slots = append(slots, &dates[i])
	}
	for i := 0; i < endPadding; i++ {
		slots = append(slots, nil)
	}

	weeks := make([]Week, 0, len(slots)/7)
	for i := 0; i+7 <= len(slots); i += 7 {
		var w Week
		copy(w[:], slots[i:i+7])
		weeks = append(weeks, w)
	}
	return weeks
}

// GroupDatesByWeekMonthly is the monthly layout: rows break at every month
// boundary, even mid-week, so no row mixes two months.
func GroupDatesByWeekMonthly(dates []Date) []Week {
	weeks := []Week{}
	for _, block := range GroupDatesByMonth(dates) {
		weeks = append(weeks, block.Weeks...)
	}
	return weeks
}

// GroupDatesByMonth splits dates into runs of the same month and grids each
// run on its own.
func GroupDatesByMonth(dates []Date) []MonthBlock {
	blocks := []MonthBlock{}
	for start := 0; start < len(dates); {
		ym := dates[start].YearMonth()
		end := start + 1
		for end < len(dates) && dates[end].YearMonth() == ym {
			end++
		}
		blocks = append(blocks, MonthBlock{Month: ym, Weeks: GroupDatesByWeek(dates[start:end])})
		start = end
	}
	return blocks
}

// Layout groups dates with the algorithm selected by mode.
func Layout(dates []Date, mode LayoutMode) []Week {
	if mode == LayoutContinuous {
		return GroupDatesByWeek(dates)
	}
	return GroupDatesByWeekMonthly(dates)
}

// Dates returns the non-padding slots of w in order.
func (w Week) Dates() []Date {
	out := make([]Date, 0, 7)
	for _, d := range w {
		if d != nil {
			out = append(out, *d)
		}
	}
	return out
}

// mondayColumn maps a weekday to its column in a Monday-first row.
func mondayColumn(wd time.Weekday) int {
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}
